// Package config loads solving sessions from YAML.
//
// A session file names the puzzle variant, the vocabulary to load, and the
// guesses played so far:
//
//	variant: wordle
//	wordlist: words.txt
//	guesses:
//	  - word: tares
//	    feedback: gyGgg
//	top: 25
//	bottom: 25
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bent101/go-puzzle-entropy/filter"
	"github.com/bent101/go-puzzle-entropy/hint"
	"github.com/bent101/go-puzzle-entropy/logging"
	"github.com/bent101/go-puzzle-entropy/puzzle"
)

var ErrInvalid = errors.New("invalid config")

type Guess struct {
	Word     string `yaml:"word"`
	Feedback string `yaml:"feedback"`
}

type Config struct {
	Variant  string  `yaml:"variant"`
	Wordlist string  `yaml:"wordlist"`
	Guesses  []Guess `yaml:"guesses"`

	// Workers <= 0 uses every CPU.
	Workers int `yaml:"workers"`

	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`

	// Cache is the ranking cache file; empty disables caching.
	Cache string `yaml:"cache"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`
}

func Default() Config {
	return Config{
		Variant:  puzzle.Wordle.Name,
		Top:      25,
		Bottom:   25,
		LogLevel: "info",
	}
}

// Parse decodes data over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load reads a session file. Relative wordlist and cache paths are resolved
// against the file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if cfg.Wordlist != "" && !filepath.IsAbs(cfg.Wordlist) {
		cfg.Wordlist = filepath.Join(dir, cfg.Wordlist)
	}
	if cfg.Cache != "" && !filepath.IsAbs(cfg.Cache) {
		cfg.Cache = filepath.Join(dir, cfg.Cache)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := puzzle.Lookup(c.Variant); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Top < 0 || c.Bottom < 0 {
		return fmt.Errorf("%w: top and bottom must not be negative", ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for i, g := range c.Guesses {
		if g.Word == "" || g.Feedback == "" {
			return fmt.Errorf("%w: guess %d needs both word and feedback", ErrInvalid, i+1)
		}
	}
	return nil
}

func (c Config) PuzzleVariant() (puzzle.Variant, error) {
	return puzzle.Lookup(c.Variant)
}

func (c Config) Logging() logging.Config {
	level, _ := logging.ParseLevel(c.LogLevel)
	return logging.Config{Level: level, JSON: c.LogJSON}
}

// Rounds parses the configured guesses for variant v.
func (c Config) Rounds(v puzzle.Variant) ([]filter.Round, error) {
	rounds := make([]filter.Round, 0, len(c.Guesses))
	for i, g := range c.Guesses {
		word, err := v.ParseWord(g.Word)
		if err != nil {
			return nil, fmt.Errorf("guess %d: %w", i+1, err)
		}
		p, err := hint.ParseFor(word, g.Feedback)
		if err != nil {
			return nil, fmt.Errorf("guess %d: %w", i+1, err)
		}
		rounds = append(rounds, filter.Round{Guess: word, Pattern: p})
	}
	return rounds, nil
}
