package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/go-puzzle-entropy/hint"
	"github.com/bent101/go-puzzle-entropy/puzzle"
)

func TestStateStartsWithVocabulary(t *testing.T) {
	s := NewState(vocab)
	assert.Equal(t, len(vocab), s.Len())
	assert.Equal(t, 0, s.Rounds())
	if diff := cmp.Diff(vocab, s.Candidates()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStateApplyDoesNotModifyReceiver(t *testing.T) {
	s := NewState(vocab)
	next, step, err := s.Apply(Round{Guess: "speed", Pattern: hint.New("speed", "eagle")})
	require.NoError(t, err)

	assert.Equal(t, len(vocab), s.Len())
	assert.Equal(t, MinCounts{}, s.MinCounts())
	assert.Equal(t, 1, next.Rounds())
	assert.Equal(t, 2, next.MinCounts().At('e'))
	assert.Equal(t, len(vocab), step.Before)
	assert.Equal(t, next.Len(), step.After)
	assert.False(t, step.Inconsistent)
	assert.Contains(t, next.Candidates(), puzzle.Word("eagle"))
}

func TestStateMatchesApply(t *testing.T) {
	for _, answer := range vocab {
		rounds := []Round{
			{Guess: "tares", Pattern: hint.New("tares", answer)},
			{Guess: "clout", Pattern: hint.New("clout", answer)},
		}

		words := vocab
		var mins MinCounts
		for _, r := range rounds {
			var err error
			words, mins, err = Apply(words, r.Guess, r.Pattern, mins)
			require.NoError(t, err)
		}

		s, steps, err := Replay(vocab, rounds)
		require.NoError(t, err)
		require.Len(t, steps, 2)
		if diff := cmp.Diff(words, s.Candidates()); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", answer, diff)
		}
		assert.Equal(t, mins, s.MinCounts())
	}
}

func TestReplayMonotone(t *testing.T) {
	guesses := []puzzle.Word{"crane", "pious", "dumpy", "level", "hello"}
	for _, answer := range vocab {
		var rounds []Round
		for _, g := range guesses {
			rounds = append(rounds, Round{Guess: g, Pattern: hint.New(g, answer)})
		}
		_, steps, err := Replay(vocab, rounds)
		require.NoError(t, err)

		prev := len(vocab)
		for _, step := range steps {
			assert.Equal(t, prev, step.Before)
			assert.LessOrEqual(t, step.After, step.Before)
			assert.False(t, step.Inconsistent)
			prev = step.After
		}
	}
}

func TestReplaySolved(t *testing.T) {
	words := []puzzle.Word{"crane", "pious", "dumpy", "clout", "shelf"}
	s, _, err := Replay(words, []Round{{Guess: "dumpy", Pattern: hint.AllExact(5)}})
	require.NoError(t, err)
	if diff := cmp.Diff([]puzzle.Word{"dumpy"}, s.Candidates()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReplayInconsistentFeedbackYieldsEmptySet(t *testing.T) {
	words := []puzzle.Word{"clout", "crane", "slate", "pious", "dumpy"}
	rounds := []Round{
		{Guess: "crane", Pattern: mustPattern(t, "Ggggg")},
		{Guess: "crane", Pattern: mustPattern(t, "ggggg")},
	}

	s, steps, err := Replay(words, rounds)
	require.NoError(t, err)
	require.Len(t, steps, 2)

	assert.Equal(t, 1, steps[0].After)
	assert.False(t, steps[0].Inconsistent)
	assert.Equal(t, 0, steps[1].After)
	assert.True(t, steps[1].Inconsistent)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Candidates())

	// Once empty, further rounds are no longer reported as inconsistent.
	_, step, err := s.Apply(rounds[0])
	require.NoError(t, err)
	assert.False(t, step.Inconsistent)
}

func TestReplayStopsOnLengthMismatch(t *testing.T) {
	_, steps, err := Replay(vocab, []Round{
		{Guess: "crane", Pattern: hint.New("crane", "slate")},
		{Guess: "crane", Pattern: mustPattern(t, "GG")},
	})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Len(t, steps, 1)
}
