// Package filter narrows a candidate vocabulary to the words consistent with
// guess feedback.
//
// A guess/pattern pair is applied in three passes, each narrowing the survivors
// of the previous one:
//
//  1. positional: exact marks must match the guess symbol, every other position
//     must differ from it;
//  2. minimum count: every symbol must occur at least as often as the running
//     minimum, which absorbs this guess's exact+present marks;
//  3. exact count: a symbol marked absent anywhere must occur exactly as often as
//     it was marked exact or present in this guess.
package filter

import (
	"errors"
	"fmt"

	"github.com/bent101/go-puzzle-entropy/hint"
	"github.com/bent101/go-puzzle-entropy/puzzle"
)

var ErrLengthMismatch = errors.New("guess and pattern lengths differ")

// MinCounts is the minimum number of copies of each symbol known to be in the
// answer. It is a value: updating it yields a new MinCounts.
type MinCounts [256]uint8

func (m MinCounts) At(sym byte) int {
	return int(m[sym])
}

// Merge returns the element-wise maximum of m and the confirmed counts in t.
func (m MinCounts) Merge(t *hint.Tally) MinCounts {
	for _, sym := range t.Symbols {
		m[sym] = max(m[sym], t.Confirmed[sym])
	}
	return m
}

// MatchPosition is the positional predicate for one position.
func MatchPosition(word, guess puzzle.Word, i int, f hint.Feedback) bool {
	if f == hint.Exact {
		return word[i] == guess[i]
	}
	return word[i] != guess[i]
}

// Constraint is one guess/pattern pair compiled for filtering.
type Constraint struct {
	guess   puzzle.Word
	pattern hint.Pattern
	tally   hint.Tally
}

func NewConstraint(guess puzzle.Word, pattern hint.Pattern) (*Constraint, error) {
	if len(guess) != len(pattern) {
		return nil, fmt.Errorf("%w: guess %q has %d symbols, pattern has %d",
			ErrLengthMismatch, guess, len(guess), len(pattern))
	}
	return &Constraint{
		guess:   guess,
		pattern: pattern,
		tally:   hint.NewTally(guess, pattern),
	}, nil
}

func (c *Constraint) Guess() puzzle.Word { return c.guess }
func (c *Constraint) Pattern() hint.Pattern { return c.pattern }
func (c *Constraint) Tally() *hint.Tally { return &c.tally }

// Update returns prior with this guess's confirmed counts folded in.
func (c *Constraint) Update(prior MinCounts) MinCounts {
	return prior.Merge(&c.tally)
}

func (c *Constraint) matchPositions(w puzzle.Word) bool {
	if len(w) != len(c.guess) {
		return false
	}
	for i, f := range c.pattern {
		if !MatchPosition(w, c.guess, i, f) {
			return false
		}
	}
	return true
}

type symCount struct {
	sym byte
	n   int
}

// bounds lists the symbols whose occurrence count is constrained.
type bounds struct {
	atLeast []symCount
	exactly []symCount
}

func (c *Constraint) bounds(mins MinCounts) bounds {
	var b bounds
	for sym, n := range mins {
		if n > 0 {
			b.atLeast = append(b.atLeast, symCount{byte(sym), int(n)})
		}
	}
	for _, sym := range c.tally.Symbols {
		if n, ok := c.tally.ExactCount(sym); ok {
			b.exactly = append(b.exactly, symCount{sym, n})
		}
	}
	return b
}

func (b *bounds) matchMin(w puzzle.Word) bool {
	for _, sc := range b.atLeast {
		if w.Count(sc.sym) < sc.n {
			return false
		}
	}
	return true
}

func (b *bounds) matchExact(w puzzle.Word) bool {
	for _, sc := range b.exactly {
		if w.Count(sc.sym) != sc.n {
			return false
		}
	}
	return true
}

// Positional applies pass 1.
func (c *Constraint) Positional(words []puzzle.Word) []puzzle.Word {
	var out []puzzle.Word
	for _, w := range words {
		if c.matchPositions(w) {
			out = append(out, w)
		}
	}
	return out
}

// MinCount applies pass 2 against the already updated mins.
func (c *Constraint) MinCount(words []puzzle.Word, mins MinCounts) []puzzle.Word {
	b := c.bounds(mins)
	var out []puzzle.Word
	for _, w := range words {
		if b.matchMin(w) {
			out = append(out, w)
		}
	}
	return out
}

// ExactCount applies pass 3.
func (c *Constraint) ExactCount(words []puzzle.Word) []puzzle.Word {
	b := c.bounds(MinCounts{})
	var out []puzzle.Word
	for _, w := range words {
		if b.matchExact(w) {
			out = append(out, w)
		}
	}
	return out
}

// Filter runs the three passes over candidates and returns the survivors in
// their original order together with the updated minimum counts.
func (c *Constraint) Filter(candidates []puzzle.Word, prior MinCounts) ([]puzzle.Word, MinCounts) {
	mins := c.Update(prior)
	survivors := c.Positional(candidates)
	survivors = c.MinCount(survivors, mins)
	survivors = c.ExactCount(survivors)
	if survivors == nil {
		survivors = []puzzle.Word{}
	}
	return survivors, mins
}

// Matcher tests single words against all three passes.
type Matcher struct {
	c *Constraint
	b bounds
}

// Matcher compiles the count passes against prior updated by this guess.
func (c *Constraint) Matcher(prior MinCounts) Matcher {
	return Matcher{c: c, b: c.bounds(c.Update(prior))}
}

func (m Matcher) Match(w puzzle.Word) bool {
	return m.c.matchPositions(w) && m.b.matchMin(w) && m.b.matchExact(w)
}

// MatchCounts checks passes 2 and 3 only, for words already known to pass the
// positional pass.
func (m Matcher) MatchCounts(w puzzle.Word) bool {
	return m.b.matchMin(w) && m.b.matchExact(w)
}

// Apply filters candidates by one guess/pattern pair.
func Apply(candidates []puzzle.Word, guess puzzle.Word, pattern hint.Pattern, prior MinCounts) ([]puzzle.Word, MinCounts, error) {
	c, err := NewConstraint(guess, pattern)
	if err != nil {
		return nil, prior, err
	}
	survivors, mins := c.Filter(candidates, prior)
	return survivors, mins, nil
}
