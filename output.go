package main

import (
	"fmt"
	"io"

	"github.com/bent101/go-puzzle-entropy/entropy"
	"github.com/bent101/go-puzzle-entropy/hint"
	"github.com/bent101/go-puzzle-entropy/puzzle"
)

func printRemaining(w io.Writer, n int) {
	if n == 0 {
		fmt.Fprintln(w, "No consistent words remain")
		return
	}
	fmt.Fprintln(w, n, "Possible Words Remaining")
}

// printRanking prints the most useful words, and the least useful ones only
// when the two lists cannot overlap.
func printRanking(w io.Writer, r *entropy.Ranking, top, bottom int) {
	if top > 0 {
		fmt.Fprintln(w, "Most Useful Words:")
		printEntries(w, r.Top(top))
		fmt.Fprintln(w)
	}

	if bottom > 0 && len(r.Entries) >= top+bottom {
		fmt.Fprintln(w, "Least Useful Words:")
		printEntries(w, r.Bottom(bottom))
		fmt.Fprintln(w)
	}

	if n := len(r.Diagnostics); n > 0 {
		fmt.Fprintf(w, "%d scores failed sanity checks; see log warnings\n", n)
	}
}

func printEntries(w io.Writer, entries []entropy.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s %.3f\n", e.Word, e.Entropy)
	}
}

func printFeedback(w io.Writer, guess puzzle.Word, p hint.Pattern) {
	fmt.Fprintln(w, p.ColoredWord(guess))
	fmt.Fprintf(w, "%s %s\n", p.Letters(), p)
}
