package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bent101/go-puzzle-entropy/entropy"
)

const defaultCachePath = "rank_cache.gob"

// runPrecompute ranks every word of the vocabulary as an opening guess and
// stores the result, so a solve with no guesses yet is answered from the
// cache.
func runPrecompute(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if s.cfg.Cache == "" {
		s.cfg.Cache = defaultCachePath
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "=== %s OPENING PRECOMPUTATION ===\n", s.variant.Name)
	fmt.Fprintf(out, "Ranking %d words with %d workers\n", len(s.vocab), entropy.NewRanker(entropy.WithWorkers(s.cfg.Workers)).Workers())

	start := time.Now()
	ranking, err := s.rank(cmd.Context(), s.vocab)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	cache := loadRankCache(s.cfg.Cache, s.logger)
	cache.put(fingerprint(s.variant, s.vocab), ranking)
	if err := cache.save(); err != nil {
		return fmt.Errorf("saving ranking cache: %w", err)
	}
	fmt.Fprintf(out, "✓ Stored ranking of %d words in %s\n", len(ranking.Entries), s.cfg.Cache)

	fmt.Fprintln(out, "\n=== STATISTICS ===")
	fmt.Fprintf(out, "  Elapsed: %v\n", elapsed.Round(time.Millisecond))
	if best, ok := MaxBy(ranking.Entries, func(e entropy.Entry) float64 { return e.Entropy }); ok {
		fmt.Fprintf(out, "  Best opener: %s (%.3f bits, %d outcomes)\n", best.Word, best.Entropy, best.Outcomes)
	}
	if worst, ok := MinBy(ranking.Entries, func(e entropy.Entry) float64 { return e.Entropy }); ok {
		fmt.Fprintf(out, "  Worst opener: %s (%.3f bits, %d outcomes)\n", worst.Word, worst.Entropy, worst.Outcomes)
	}
	if most, ok := MaxBy(ranking.Entries, func(e entropy.Entry) int { return e.Outcomes }); ok {
		fmt.Fprintf(out, "  Most outcomes: %s (%d)\n", most.Word, most.Outcomes)
	}
	impossible := 0
	for _, e := range ranking.Entries {
		impossible += e.Impossible
	}
	fmt.Fprintf(out, "  Impossible feedback patterns seen: %d\n", impossible)
	fmt.Fprintf(out, "  Diagnostics: %d\n", len(ranking.Diagnostics))
	return nil
}
