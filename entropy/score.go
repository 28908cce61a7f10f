// Package entropy ranks candidate guesses by the Shannon entropy of the
// candidate-set partition their feedback would induce.
package entropy

import (
	"fmt"
	"math"

	"github.com/bent101/go-puzzle-entropy/filter"
	"github.com/bent101/go-puzzle-entropy/hint"
	"github.com/bent101/go-puzzle-entropy/puzzle"
)

// Tolerance bounds the floating point error accepted by the probability and
// entropy checks.
const Tolerance = 1e-6

type DiagnosticKind uint8

const (
	// ProbabilityMismatch: outcome probabilities do not sum to 1.
	ProbabilityMismatch DiagnosticKind = iota + 1
	// EntropyBoundViolation: entropy exceeds log2 of the candidate count.
	EntropyBoundViolation
)

func (k DiagnosticKind) String() string {
	switch k {
	case ProbabilityMismatch:
		return "probability mismatch"
	case EntropyBoundViolation:
		return "entropy bound violation"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", uint8(k))
	}
}

// Diagnostic flags a score that should not be trusted. Computation continues
// regardless.
type Diagnostic struct {
	Kind  DiagnosticKind
	Word  puzzle.Word
	Value float64
	Limit float64
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s for %s: got %.9f, limit %.9f", d.Kind, d.Word, d.Value, d.Limit)
}

// Score is the expected information of guessing Word next.
type Score struct {
	Word    puzzle.Word
	Entropy float64

	// Mass is the summed probability of all possible outcomes.
	Mass float64

	// Outcomes counts the patterns that leave at least one candidate.
	Outcomes int

	// Impossible counts patterns that matched candidates but can never be
	// produced by this guess; they are left out of the sum.
	Impossible int

	Diagnostics []Diagnostic
}

// Evaluate sweeps every feedback pattern for guess against candidates. Patterns
// are enumerated position by position so that the positional pass prunes whole
// subtrees before the count passes run at the leaves.
func Evaluate(candidates []puzzle.Word, guess puzzle.Word) Score {
	s := Score{Word: guess}
	total := len(candidates)
	if total == 0 {
		return s
	}

	length := len(guess)
	levels := make([][]puzzle.Word, length+1)
	levels[0] = make([]puzzle.Word, 0, total)
	for _, w := range candidates {
		if len(w) == length {
			levels[0] = append(levels[0], w)
		}
	}
	for i := 1; i <= length; i++ {
		levels[i] = make([]puzzle.Word, 0, len(levels[0]))
	}

	pattern := make(hint.Pattern, length)

	leaf := func(survivors []puzzle.Word) {
		c, err := filter.NewConstraint(guess, pattern)
		if err != nil {
			return
		}
		m := c.Matcher(filter.MinCounts{})
		n := 0
		for _, w := range survivors {
			if m.MatchCounts(w) {
				n++
			}
		}
		if n == 0 {
			return
		}
		if !hint.Possible(guess, pattern) {
			s.Impossible++
			return
		}
		p := float64(n) / float64(total)
		s.Mass += p
		s.Entropy += p * math.Log2(1/p)
		s.Outcomes++
	}

	var walk func(depth int)
	walk = func(depth int) {
		if depth == length {
			leaf(levels[depth])
			return
		}
		for _, f := range [...]hint.Feedback{hint.Absent, hint.Present, hint.Exact} {
			next := levels[depth+1][:0]
			for _, w := range levels[depth] {
				if filter.MatchPosition(w, guess, depth, f) {
					next = append(next, w)
				}
			}
			levels[depth+1] = next
			if len(next) == 0 {
				continue
			}
			pattern[depth] = f
			walk(depth + 1)
		}
	}
	walk(0)

	if math.Abs(s.Mass-1) > Tolerance {
		s.Diagnostics = append(s.Diagnostics, Diagnostic{
			Kind:  ProbabilityMismatch,
			Word:  guess,
			Value: s.Mass,
			Limit: 1,
		})
	}
	if bound := math.Log2(float64(total)); s.Entropy > bound+Tolerance {
		s.Diagnostics = append(s.Diagnostics, Diagnostic{
			Kind:  EntropyBoundViolation,
			Word:  guess,
			Value: s.Entropy,
			Limit: bound,
		})
	}

	return s
}
