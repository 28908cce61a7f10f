package hint

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/bent101/go-puzzle-entropy/puzzle"
)

var (
	ErrPatternLength  = errors.New("pattern length does not match guess")
	ErrFeedbackSymbol = errors.New("unknown feedback symbol")
)

type Feedback uint8

const (
	Absent  Feedback = iota // gray
	Present                 // yellow
	Exact                   // green
)

func (f Feedback) String() string {
	switch f {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("Feedback(%d)", uint8(f))
	}
}

// Pattern is the per-position feedback for one guess.
type Pattern []Feedback

// Count returns the number of syntactically possible patterns of the given length.
func Count(length int) int {
	n := 1
	for range length {
		n *= 3
	}
	return n
}

// Rank returns the pattern as a base 3 number, first position most significant.
func (p Pattern) Rank() int {
	ret := 0
	for _, d := range p {
		ret = ret*3 + int(d)
	}
	return ret
}

// FromRank is the inverse of Rank.
func FromRank(rank, length int) Pattern {
	p := make(Pattern, length)
	for i := length - 1; i >= 0; i-- {
		p[i] = Feedback(rank % 3)
		rank /= 3
	}
	return p
}

func AllExact(length int) Pattern {
	p := make(Pattern, length)
	for i := range p {
		p[i] = Exact
	}
	return p
}

func (p Pattern) Solved() bool {
	for _, f := range p {
		if f != Exact {
			return false
		}
	}
	return len(p) > 0
}

func (p Pattern) Equal(other Pattern) bool {
	return slices.Equal(p, other)
}

func (p Pattern) String() string {
	var b strings.Builder
	for _, f := range p {
		switch f {
		case Exact:
			b.WriteString("🟩")
		case Present:
			b.WriteString("🟨")
		default:
			b.WriteString("⬜")
		}
	}
	return b.String()
}

// Letters renders the pattern in G/y/g notation, the same notation Parse accepts.
func (p Pattern) Letters() string {
	b := make([]byte, len(p))
	for i, f := range p {
		switch f {
		case Exact:
			b[i] = 'G'
		case Present:
			b[i] = 'y'
		default:
			b[i] = 'g'
		}
	}
	return string(b)
}

// ColoredWord displays a word with colored backgrounds based on the pattern.
func (p Pattern) ColoredWord(word puzzle.Word) string {
	if len(word) != len(p) {
		return string(word)
	}

	const (
		reset    = "\033[0m"
		grayBg   = "\033[48;5;236m\033[38;5;255m"
		yellowBg = "\033[43m\033[30m"
		greenBg  = "\033[42m\033[30m"
	)

	var result strings.Builder
	for i := 0; i < len(word); i++ {
		switch p[i] {
		case Absent:
			result.WriteString(grayBg)
		case Present:
			result.WriteString(yellowBg)
		case Exact:
			result.WriteString(greenBg)
		}
		result.WriteByte(word[i])
		result.WriteString(" ")
		result.WriteString(reset)
	}

	return result.String()
}

// Parse reads a pattern written as G/y/g (exact/present/absent), 2/1/0, or
// colored squares. G and g are case sensitive.
func Parse(s string) (Pattern, error) {
	s = strings.TrimSpace(s)
	p := make(Pattern, 0, len(s))
	for i, r := range s {
		switch r {
		case 'G', '2', '🟩':
			p = append(p, Exact)
		case 'y', 'Y', '1', '🟨':
			p = append(p, Present)
		case 'g', 'b', 'B', '0', '⬜', '⬛':
			p = append(p, Absent)
		default:
			return nil, fmt.Errorf("%w: %q at offset %d of %q", ErrFeedbackSymbol, r, i, s)
		}
	}
	return p, nil
}

// ParseFor parses s and checks that it pairs positionally with guess.
func ParseFor(guess puzzle.Word, s string) (Pattern, error) {
	p, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if len(p) != len(guess) {
		return nil, fmt.Errorf("%w: %q has %d marks, guess %q has %d symbols",
			ErrPatternLength, s, len(p), guess, len(guess))
	}
	return p, nil
}

// New returns the feedback guess receives against answer. Exact matches are
// assigned first; remaining guess symbols are marked present left to right while
// unmatched copies remain in the answer.
func New(guess, answer puzzle.Word) Pattern {
	p := make(Pattern, len(guess))

	for i := 0; i < len(guess) && i < len(answer); i++ {
		if guess[i] == answer[i] {
			p[i] = Exact
		}
	}

	unmatched := make([]byte, 0, len(answer))
	for i := 0; i < len(answer); i++ {
		if i >= len(guess) || p[i] != Exact {
			unmatched = append(unmatched, answer[i])
		}
	}

	for i := 0; i < len(guess); i++ {
		if p[i] == Exact {
			continue
		}
		if j := slices.Index(unmatched, guess[i]); j >= 0 {
			p[i] = Present
			unmatched = slices.Delete(unmatched, j, j+1)
		}
	}

	return p
}

// Possible reports whether some answer could produce p for guess. Present marks
// are handed out left to right, so an absent copy of a symbol can never precede
// a present copy of the same symbol.
func Possible(guess puzzle.Word, p Pattern) bool {
	if len(p) != len(guess) {
		return false
	}
	for i, f := range p {
		if f != Absent {
			continue
		}
		for j := i + 1; j < len(p); j++ {
			if p[j] == Present && guess[j] == guess[i] {
				return false
			}
		}
	}
	return true
}
