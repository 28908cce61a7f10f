package entropy

import (
	"cmp"
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/bent101/go-puzzle-entropy/puzzle"
)

// Entry is one ranked guess. Index is its position in the ranked candidate
// sequence and breaks entropy ties.
type Entry struct {
	Score
	Index int
}

// Ranking lists every candidate from most to least informative.
type Ranking struct {
	Candidates  int
	Entries     []Entry
	Diagnostics []Diagnostic
}

// Top returns at most n of the most informative entries.
func (r *Ranking) Top(n int) []Entry {
	return r.Entries[:min(max(n, 0), len(r.Entries))]
}

// Bottom returns at most n of the least informative entries, in ranked order.
func (r *Ranking) Bottom(n int) []Entry {
	return r.Entries[len(r.Entries)-min(max(n, 0), len(r.Entries)):]
}

type Ranker struct {
	workers  int
	logger   *slog.Logger
	progress func()
}

type Option func(*Ranker)

// WithWorkers sets the number of words scored concurrently. Values below one
// select runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.workers = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithProgress registers fn to be called once per scored word. It is called
// from worker goroutines.
func WithProgress(fn func()) Option {
	return func(r *Ranker) {
		r.progress = fn
	}
}

func NewRanker(opts ...Option) *Ranker {
	r := &Ranker{
		workers: runtime.NumCPU(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Ranker) Workers() int {
	return r.workers
}

// Rank scores every candidate as the next guess against the candidate set.
// The candidates slice is shared read-only between workers. Cancelling ctx
// abandons the pass between words and returns ctx.Err().
func (r *Ranker) Rank(ctx context.Context, candidates []puzzle.Word) (*Ranking, error) {
	start := time.Now()
	entries := make([]Entry, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, guess := range candidates {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[i] = Entry{Score: Evaluate(candidates, guess), Index: i}
			if r.progress != nil {
				r.progress()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Entropy, a.Entropy)
	})

	ranking := &Ranking{Candidates: len(candidates), Entries: entries}
	for _, e := range entries {
		for _, d := range e.Diagnostics {
			r.logger.Warn("untrusted score",
				"kind", d.Kind.String(),
				"word", string(d.Word),
				"value", d.Value,
				"limit", d.Limit)
			ranking.Diagnostics = append(ranking.Diagnostics, d)
		}
	}

	r.logger.Debug("ranked candidates",
		"candidates", len(candidates),
		"workers", r.workers,
		"diagnostics", len(ranking.Diagnostics),
		"elapsed", time.Since(start))

	return ranking, nil
}
