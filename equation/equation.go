// Package equation generates the vocabulary of the equation puzzle: every
// "lhs=rhs" of a fixed length where lhs combines numbers with + - * / under the
// usual precedence and rhs is the non-negative integer it evaluates to.
package equation

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/bent101/go-puzzle-entropy/puzzle"
)

var ErrNotEquation = errors.New("not a valid equation")

const Operators = "+-*/"

// rat is an exact fraction with a positive denominator.
type rat struct {
	num, den int64
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func newRat(num, den int64) rat {
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(num, den)
	if g == 0 {
		g = 1
	}
	return rat{num / g, den / g}
}

func (a rat) apply(op byte, b rat) (rat, bool) {
	switch op {
	case '+':
		return newRat(a.num*b.den+b.num*a.den, a.den*b.den), true
	case '-':
		return newRat(a.num*b.den-b.num*a.den, a.den*b.den), true
	case '*':
		return newRat(a.num*b.num, a.den*b.den), true
	case '/':
		if b.num == 0 {
			return rat{}, false
		}
		return newRat(a.num*b.den, a.den*b.num), true
	}
	return rat{}, false
}

// eval folds * and / first, then + and -, each left to right.
func eval(nums []int64, ops []byte) (rat, bool) {
	terms := []rat{{nums[0], 1}}
	var termOps []byte
	for i, op := range ops {
		next := rat{nums[i+1], 1}
		if op == '*' || op == '/' {
			last := len(terms) - 1
			v, ok := terms[last].apply(op, next)
			if !ok {
				return rat{}, false
			}
			terms[last] = v
			continue
		}
		terms = append(terms, next)
		termOps = append(termOps, op)
	}
	acc := terms[0]
	for i, op := range termOps {
		acc, _ = acc.apply(op, terms[i+1])
	}
	return acc, true
}

func validNumber(s string) bool {
	if s == "" || len(s) > 1 && s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Check reports whether w is a true equation in the accepted form.
func Check(w puzzle.Word) error {
	lhs, rhs, ok := strings.Cut(string(w), "=")
	if !ok || strings.Contains(rhs, "=") || !validNumber(rhs) {
		return ErrNotEquation
	}

	var nums []int64
	var ops []byte
	start := 0
	for i := 0; i <= len(lhs); i++ {
		if i < len(lhs) && !strings.ContainsRune(Operators, rune(lhs[i])) {
			continue
		}
		part := lhs[start:i]
		if !validNumber(part) {
			return ErrNotEquation
		}
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return ErrNotEquation
		}
		nums = append(nums, n)
		if i < len(lhs) {
			ops = append(ops, lhs[i])
		}
		start = i + 1
	}
	if len(ops) == 0 {
		return ErrNotEquation
	}

	v, ok := eval(nums, ops)
	want, err := strconv.ParseInt(rhs, 10, 64)
	if !ok || err != nil || v.den != 1 || v.num != want {
		return ErrNotEquation
	}
	return nil
}

type Options struct {
	// Length is the full equation length including '='. Zero means the
	// nerdle length.
	Length int

	// MaxOperators bounds the operators on the left side. Zero means two.
	MaxOperators int
}

type generator struct {
	lhsLen int
	rhsLen int
	maxOps int

	nums []int64
	ops  []byte
	out  []puzzle.Word
}

// Generate returns every valid equation, sorted.
func Generate(opts Options) []puzzle.Word {
	length := opts.Length
	if length == 0 {
		length = puzzle.Nerdle.Length
	}
	maxOps := opts.MaxOperators
	if maxOps == 0 {
		maxOps = 2
	}

	var out []puzzle.Word
	for rhsLen := 1; length-1-rhsLen >= 3; rhsLen++ {
		g := &generator{
			lhsLen: length - 1 - rhsLen,
			rhsLen: rhsLen,
			maxOps: maxOps,
		}
		g.number(0)
		out = append(out, g.out...)
	}
	slices.Sort(out)
	return out
}

// number places the next operand at offset used of the left side.
func (g *generator) number(used int) {
	remaining := g.lhsLen - used
	for size := 1; size <= remaining; size++ {
		lo, hi := int64(1), int64(9)
		for range size - 1 {
			lo *= 10
			hi = hi*10 + 9
		}
		if size == 1 {
			lo = 0
		}
		end := used + size
		more := len(g.ops) < g.maxOps && end+2 <= g.lhsLen
		if end == g.lhsLen && len(g.ops) == 0 || end < g.lhsLen && !more {
			continue
		}
		for n := lo; n <= hi; n++ {
			g.nums = append(g.nums, n)
			if end == g.lhsLen {
				g.finish()
			} else {
				for i := 0; i < len(Operators); i++ {
					g.ops = append(g.ops, Operators[i])
					g.number(end + 1)
					g.ops = g.ops[:len(g.ops)-1]
				}
			}
			g.nums = g.nums[:len(g.nums)-1]
		}
	}
}

func (g *generator) finish() {
	if len(g.ops) == 0 {
		return
	}
	v, ok := eval(g.nums, g.ops)
	if !ok || v.den != 1 || v.num < 0 {
		return
	}
	rhs := strconv.FormatInt(v.num, 10)
	if len(rhs) != g.rhsLen {
		return
	}

	var b strings.Builder
	b.Grow(g.lhsLen + 1 + g.rhsLen)
	for i, n := range g.nums {
		if i > 0 {
			b.WriteByte(g.ops[i-1])
		}
		b.WriteString(strconv.FormatInt(n, 10))
	}
	b.WriteByte('=')
	b.WriteString(rhs)
	g.out = append(g.out, puzzle.Word(b.String()))
}
