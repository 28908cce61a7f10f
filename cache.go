package main

import (
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/bent101/go-puzzle-entropy/entropy"
	"github.com/bent101/go-puzzle-entropy/puzzle"
)

// rankCache maps a candidate set fingerprint to its ranking. A cache with an
// empty path never touches the disk.
type rankCache struct {
	path    string
	logger  *slog.Logger
	entries map[string]*entropy.Ranking
	dirty   bool
}

func loadRankCache(path string, logger *slog.Logger) *rankCache {
	c := &rankCache{path: path, logger: logger, entries: map[string]*entropy.Ranking{}}
	if path == "" {
		return c
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("ranking cache not found, will calculate from scratch", "path", path)
		} else {
			logger.Warn("could not open ranking cache", "path", path, "error", err)
		}
		return c
	}
	defer file.Close()

	start := time.Now()

	var entries map[string]*entropy.Ranking
	if err := gob.NewDecoder(file).Decode(&entries); err != nil {
		logger.Warn("error decoding ranking cache, will recalculate", "path", path, "error", err)
		return c
	}
	if entries != nil {
		c.entries = entries
	}

	logger.Info("loaded ranking cache", "path", path, "entries", len(c.entries), "elapsed", time.Since(start))
	return c
}

func (c *rankCache) get(key string) (*entropy.Ranking, bool) {
	r, ok := c.entries[key]
	return r, ok
}

func (c *rankCache) put(key string, r *entropy.Ranking) {
	c.entries[key] = r
	c.dirty = true
}

func (c *rankCache) save() error {
	if c.path == "" || !c.dirty {
		return nil
	}

	file, err := os.Create(c.path)
	if err != nil {
		return err
	}
	defer file.Close()

	start := time.Now()

	if err := gob.NewEncoder(file).Encode(c.entries); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	c.dirty = false

	c.logger.Info("saved ranking cache", "path", c.path, "entries", len(c.entries), "elapsed", time.Since(start))
	return nil
}

// fingerprint identifies a candidate sequence of a variant. Order matters
// because it decides how ties are ranked.
func fingerprint(v puzzle.Variant, words []puzzle.Word) string {
	h := sha256.New()
	h.Write([]byte(v.Name))
	for _, w := range words {
		h.Write([]byte{0})
		h.Write([]byte(w))
	}
	return hex.EncodeToString(h.Sum(nil))
}
