// Package parse holds the token plumbing shared by the subcommand resolver and the
// matching engine.
package parse

import "github.com/ef-ds/deque"

// Tokens is a front-consumed stream of command-line tokens. Tokens are only ever taken
// from the front, so the stream has no notion of position or backtracking.
type Tokens struct {
	q *deque.Deque
}

// NewTokens copies args into a new stream; the caller's slice is never modified.
func NewTokens(args []string) *Tokens {
	q := deque.New()
	for _, a := range args {
		q.PushBack(a)
	}

	return &Tokens{q: q}
}

// Peek returns the next token without consuming it.
func (t *Tokens) Peek() (string, bool) {
	v, ok := t.q.Front()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Next consumes and returns the next token.
func (t *Tokens) Next() (string, bool) {
	v, ok := t.q.PopFront()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Len returns the number of tokens left.
func (t *Tokens) Len() int {
	return t.q.Len()
}

// Remaining drains the stream and returns what was left, in order.
func (t *Tokens) Remaining() []string {
	out := make([]string, 0, t.q.Len())
	for {
		s, ok := t.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}
