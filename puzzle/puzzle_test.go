package puzzle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWord(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		in      string
		want    Word
		err     error
	}{
		{"lower", Wordle, "tares", "tares", nil},
		{"folds case", Wordle, "SPEED", "speed", nil},
		{"trims", Wordle, "  eagle\r", "eagle", nil},
		{"short", Wordle, "tare", "", ErrWordLength},
		{"digit in word", Wordle, "tar3s", "", ErrWordSymbol},
		{"equation", Nerdle, "2*4+5=13", "2*4+5=13", nil},
		{"equation too long", Nerdle, "12*4+5=13", "", ErrWordLength},
		{"letter in equation", Nerdle, "2*x+5=13", "", ErrWordSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.variant.ParseWord(tt.in)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.True(t, errors.Is(err, ErrMalformedWord))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWords(t *testing.T) {
	words, err := Wordle.ParseWords([]string{"speed", "abide", "eagle"})
	require.NoError(t, err)
	assert.Equal(t, []Word{"speed", "abide", "eagle"}, words)

	_, err = Wordle.ParseWords([]string{"speed", "abides"})
	assert.ErrorIs(t, err, ErrWordLength)
}

func TestLookup(t *testing.T) {
	v, err := Lookup("Nerdle")
	require.NoError(t, err)
	assert.Equal(t, 8, v.Length)

	_, err = Lookup("quordle")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 2, Word("speed").Count('e'))
	assert.Equal(t, 0, Word("speed").Count('z'))
	assert.Equal(t, 1, Word("2*4+5=13").Count('='))
}
