// Package puzzle describes the symbol alphabets and fixed word lengths of the
// supported puzzle variants.
package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedWord  = errors.New("malformed word")
	ErrWordLength     = fmt.Errorf("%w: wrong length", ErrMalformedWord)
	ErrWordSymbol     = fmt.Errorf("%w: unknown symbol", ErrMalformedWord)
	ErrUnknownVariant = errors.New("unknown puzzle variant")
)

// Word is a fixed-length sequence of single-byte symbols.
type Word string

// Count returns the number of occurrences of sym in w.
func (w Word) Count(sym byte) int {
	n := 0
	for i := 0; i < len(w); i++ {
		if w[i] == sym {
			n++
		}
	}
	return n
}

// Alphabet is the fixed symbol set of a variant.
type Alphabet string

func (a Alphabet) Contains(sym byte) bool {
	return strings.IndexByte(string(a), sym) >= 0
}

type Variant struct {
	Name     string
	Alphabet Alphabet
	Length   int

	// FoldCase lowercases input before validation.
	FoldCase bool
}

var (
	Wordle = Variant{
		Name:     "wordle",
		Alphabet: "abcdefghijklmnopqrstuvwxyz",
		Length:   5,
		FoldCase: true,
	}

	// Nerdle treats operators and '=' as ordinary symbols.
	Nerdle = Variant{
		Name:     "nerdle",
		Alphabet: "0123456789+-*/=",
		Length:   8,
	}
)

var variants = map[string]Variant{
	Wordle.Name: Wordle,
	Nerdle.Name: Nerdle,
}

// Lookup returns the variant registered under name.
func Lookup(name string) (Variant, error) {
	v, ok := variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v, nil
}

// ParseWord validates s against the variant's length and alphabet.
func (v Variant) ParseWord(s string) (Word, error) {
	s = strings.TrimSpace(s)
	if v.FoldCase {
		s = strings.ToLower(s)
	}
	if len(s) != v.Length {
		return "", fmt.Errorf("%w: %q has %d symbols, want %d", ErrWordLength, s, len(s), v.Length)
	}
	for i := 0; i < len(s); i++ {
		if !v.Alphabet.Contains(s[i]) {
			return "", fmt.Errorf("%w: %q at position %d of %q", ErrWordSymbol, s[i], i, s)
		}
	}
	return Word(s), nil
}

// ParseWords parses every entry of ss, stopping at the first malformed one.
func (v Variant) ParseWords(ss []string) ([]Word, error) {
	words := make([]Word, 0, len(ss))
	for _, s := range ss {
		w, err := v.ParseWord(s)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}
