package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/go-puzzle-entropy/hint"
	"github.com/bent101/go-puzzle-entropy/logging"
	"github.com/bent101/go-puzzle-entropy/puzzle"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseSession(t *testing.T) {
	cfg, err := Parse([]byte(`
variant: nerdle
wordlist: nerdle.csv
workers: 4
top: 10
log_level: debug
guesses:
  - word: 2*4+5=13
    feedback: GggyggyG
`))
	require.NoError(t, err)

	assert.Equal(t, "nerdle", cfg.Variant)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 10, cfg.Top)
	assert.Equal(t, 25, cfg.Bottom)
	assert.Equal(t, logging.LevelDebug, cfg.Logging().Level)

	v, err := cfg.PuzzleVariant()
	require.NoError(t, err)
	rounds, err := cfg.Rounds(v)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, puzzle.Word("2*4+5=13"), rounds[0].Guess)
	assert.Equal(t, hint.Exact, rounds[0].Pattern[7])
	assert.Equal(t, hint.Present, rounds[0].Pattern[3])
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"unknown variant": "variant: quordle\n",
		"negative top":    "top: -1\n",
		"bad level":       "log_level: loud\n",
		"missing pattern": "guesses:\n  - word: tares\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Parse([]byte("colour: green\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestRoundsRejectsMalformedGuess(t *testing.T) {
	cfg := Default()
	cfg.Guesses = []Guess{{Word: "tare", Feedback: "gggg"}}
	_, err := cfg.Rounds(puzzle.Wordle)
	assert.ErrorIs(t, err, puzzle.ErrMalformedWord)

	cfg.Guesses = []Guess{{Word: "tares", Feedback: "ggg"}}
	_, err = cfg.Rounds(puzzle.Wordle)
	assert.ErrorIs(t, err, hint.ErrPatternLength)
}

func TestLoadResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wordlist: words.txt\ncache: rank.gob\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "words.txt"), cfg.Wordlist)
	assert.Equal(t, filepath.Join(dir, "rank.gob"), cfg.Cache)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
