// Package args holds the ordered token sequence consumed during option recognition.
package args

import (
	"github.com/napalu/optrec/errs"
)

// List is an ordered sequence of raw argument tokens. Removing a token marks its position
// as consumed; the remaining tokens keep their relative order and their positions never shift,
// so a position obtained before a removal stays valid after it.
type List struct {
	tokens  []string
	removed []bool
	live    int
}

// New creates a List over a copy of tokens
func New(tokens []string) *List {
	l := &List{
		tokens:  make([]string, len(tokens)),
		removed: make([]bool, len(tokens)),
		live:    len(tokens),
	}
	copy(l.tokens, tokens)

	return l
}

// Len returns the number of tokens which have not been removed
func (l *List) Len() int {
	return l.live
}

// At returns the token at pos. Removed and out of range positions return errs.ErrInvalidPosition.
func (l *List) At(pos int) (string, error) {
	if !l.valid(pos) {
		return "", errs.ErrInvalidPosition
	}

	return l.tokens[pos], nil
}

// Head returns the position of the first token which has not been removed
func (l *List) Head() (int, bool) {
	return l.Next(-1)
}

// Next returns the first live position after pos
func (l *List) Next(pos int) (int, bool) {
	for i := pos + 1; i < len(l.tokens); i++ {
		if !l.removed[i] {
			return i, true
		}
	}

	return -1, false
}

// Remove removes the token at pos. It returns false when pos was already removed or out of range.
func (l *List) Remove(pos int) bool {
	if !l.valid(pos) {
		return false
	}
	l.removed[pos] = true
	l.live--

	return true
}

// IsRemoved reports whether the token at pos has been consumed
func (l *List) IsRemoved(pos int) bool {
	if pos < 0 || pos >= len(l.tokens) {
		return false
	}

	return l.removed[pos]
}

// Positions returns the live positions in order
func (l *List) Positions() []int {
	positions := make([]int, 0, l.live)
	for pos, ok := l.Head(); ok; pos, ok = l.Next(pos) {
		positions = append(positions, pos)
	}

	return positions
}

// Remaining returns the tokens which have not been removed, in their original order
func (l *List) Remaining() []string {
	remaining := make([]string, 0, l.live)
	for pos, ok := l.Head(); ok; pos, ok = l.Next(pos) {
		remaining = append(remaining, l.tokens[pos])
	}

	return remaining
}

func (l *List) valid(pos int) bool {
	return pos >= 0 && pos < len(l.tokens) && !l.removed[pos]
}
