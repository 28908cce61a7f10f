package hint

import "github.com/bent101/go-puzzle-entropy/puzzle"

// Tally is the per-symbol accounting of one guess/pattern pair: how many copies
// of each symbol were confirmed (exact or present) and whether any copy was
// marked absent.
type Tally struct {
	Confirmed [256]uint8
	Absent    [256]bool

	// Symbols lists each distinct guess symbol once, in order of first appearance.
	Symbols []byte
}

func NewTally(guess puzzle.Word, p Pattern) Tally {
	var t Tally
	var seen [256]bool
	for i := 0; i < len(guess) && i < len(p); i++ {
		sym := guess[i]
		if !seen[sym] {
			seen[sym] = true
			t.Symbols = append(t.Symbols, sym)
		}
		switch p[i] {
		case Exact, Present:
			t.Confirmed[sym]++
		case Absent:
			t.Absent[sym] = true
		}
	}
	return t
}

// ExactCount reports the exact number of copies of sym the answer must hold, if
// the pattern pins it down. An absent mark means no copies beyond the confirmed ones.
func (t *Tally) ExactCount(sym byte) (int, bool) {
	if !t.Absent[sym] {
		return 0, false
	}
	return int(t.Confirmed[sym]), true
}
