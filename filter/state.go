package filter

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/bent101/go-puzzle-entropy/hint"
	"github.com/bent101/go-puzzle-entropy/puzzle"
)

// Round is one guess and the feedback it received.
type Round struct {
	Guess   puzzle.Word
	Pattern hint.Pattern
}

// Step reports the effect of applying one round.
type Step struct {
	Round  Round
	Before int
	After  int

	// Inconsistent is set when the round emptied a non-empty candidate set: no
	// word in the vocabulary agrees with the feedback history.
	Inconsistent bool
}

// State is the solving session after some number of rounds: the candidate set,
// kept as a membership set over vocabulary indices, and the running minimum
// counts. Apply never modifies the receiver.
type State struct {
	vocab   []puzzle.Word
	members *bitset.BitSet
	mins    MinCounts
	rounds  int
}

// NewState starts a session with every vocabulary word as a candidate. The
// vocabulary is shared, not copied, and must not be modified afterwards.
func NewState(vocab []puzzle.Word) State {
	members := bitset.New(uint(len(vocab)))
	members.FlipRange(0, uint(len(vocab)))
	return State{vocab: vocab, members: members}
}

func (s State) Len() int {
	if s.members == nil {
		return 0
	}
	return int(s.members.Count())
}

func (s State) Rounds() int {
	return s.rounds
}

func (s State) MinCounts() MinCounts {
	return s.mins
}

// Candidates returns the surviving words in vocabulary order.
func (s State) Candidates() []puzzle.Word {
	out := make([]puzzle.Word, 0, s.Len())
	if s.members == nil {
		return out
	}
	for i, ok := s.members.NextSet(0); ok; i, ok = s.members.NextSet(i + 1) {
		out = append(out, s.vocab[i])
	}
	return out
}

// Apply narrows the candidate set by one round.
func (s State) Apply(r Round) (State, Step, error) {
	c, err := NewConstraint(r.Guess, r.Pattern)
	if err != nil {
		return s, Step{}, err
	}

	next := State{
		vocab:  s.vocab,
		mins:   c.Update(s.mins),
		rounds: s.rounds + 1,
	}
	if s.members == nil {
		next.members = bitset.New(0)
	} else {
		next.members = s.members.Clone()
	}

	m := c.Matcher(s.mins)
	for i, ok := next.members.NextSet(0); ok; i, ok = next.members.NextSet(i + 1) {
		if !m.Match(s.vocab[i]) {
			next.members.Clear(i)
		}
	}

	step := Step{Round: r, Before: s.Len(), After: next.Len()}
	step.Inconsistent = step.Before > 0 && step.After == 0
	return next, step, nil
}

// Replay applies rounds in order, starting from the full vocabulary.
func Replay(vocab []puzzle.Word, rounds []Round) (State, []Step, error) {
	s := NewState(vocab)
	steps := make([]Step, 0, len(rounds))
	for _, r := range rounds {
		next, step, err := s.Apply(r)
		if err != nil {
			return s, steps, err
		}
		s = next
		steps = append(steps, step)
	}
	return s, steps, nil
}
