package equation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/bent101/go-puzzle-entropy/puzzle"
)

func TestCheck(t *testing.T) {
	valid := []puzzle.Word{"2*4+5=13", "12+35=47", "9*9-1=80", "40/8+3=8", "3+4*5=23", "10-8/4=8", "1-5+9=5"}
	for _, w := range valid {
		assert.NoError(t, Check(w), w)
	}

	invalid := []puzzle.Word{
		"2*4+5=14", // wrong result
		"02+35=37", // leading zero
		"12+35=047",
		"7/2+1=4", // inexact division
		"5/0+1=1", // division by zero
		"1234=1234",
		"1+2=3=3",
		"+12+3=15",
		"12++3=15",
	}
	for _, w := range invalid {
		assert.ErrorIs(t, Check(w), ErrNotEquation, w)
	}
}

func TestGenerate(t *testing.T) {
	words := Generate(Options{})
	require.Greater(t, len(words), 1000)
	assert.True(t, slices.IsSorted(words))

	for _, w := range words {
		_, err := puzzle.Nerdle.ParseWord(string(w))
		require.NoError(t, err, w)
		require.NoError(t, Check(w), w)
	}

	for _, w := range []puzzle.Word{"2*4+5=13", "12+35=47", "10+37=47", "9*9-1=80", "40/8+3=8"} {
		_, found := slices.BinarySearch(words, w)
		assert.True(t, found, w)
	}
	_, found := slices.BinarySearch(words, puzzle.Word("9-10+1=0"))
	assert.True(t, found, "negative intermediate results are allowed")
}

func TestGenerateSingleOperator(t *testing.T) {
	words := Generate(Options{Length: 6, MaxOperators: 1})
	require.NotEmpty(t, words)
	for _, w := range words {
		assert.Len(t, w, 6)
		assert.NoError(t, Check(w), w)
	}
	assert.Contains(t, words, puzzle.Word("9+3=12"))
	for _, w := range words {
		ops := 0
		for _, op := range Operators {
			ops += strings.Count(string(w), string(op))
		}
		assert.Equal(t, 1, ops, w)
	}
}
