// Package cursor provides a forward-only cursor over a token slice with
// one-token lookahead.
package cursor

// Cursor walks a slice of tokens front to back. The underlying slice is
// never modified or copied; the position only ever advances.
type Cursor[T any] struct {
	tokens []T
	pos    int
}

// New returns a cursor positioned at the first token of tokens.
func New[T any](tokens []T) *Cursor[T] {
	return &Cursor[T]{tokens: tokens}
}

// Next returns the current token and advances. ok is false once the
// tokens are exhausted.
func (c *Cursor[T]) Next() (tok T, ok bool) {
	tok, ok = c.Peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

// NextOr is Next, but reports exhaustion as err so callers can attach
// their own diagnostics.
func (c *Cursor[T]) NextOr(err error) (T, error) {
	tok, ok := c.Next()
	if !ok {
		return tok, err
	}
	return tok, nil
}

// Peek returns the current token without advancing.
func (c *Cursor[T]) Peek() (tok T, ok bool) {
	if c.pos >= len(c.tokens) {
		return tok, false
	}
	return c.tokens[c.pos], true
}

// PeekOr is Peek, but reports exhaustion as err.
func (c *Cursor[T]) PeekOr(err error) (T, error) {
	tok, ok := c.Peek()
	if !ok {
		return tok, err
	}
	return tok, nil
}

// TokensLeft returns how many tokens have not been consumed yet.
func (c *Cursor[T]) TokensLeft() int {
	return len(c.tokens) - c.pos
}
