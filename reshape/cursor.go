package reshape

import "fmt"

// Cursor is a forward-only consumer over a flat sequence.
// A Cursor is owned by exactly one reconstruction; it is not safe for
// concurrent use and must not be reused once drained.
type Cursor[T any] struct {
	items []T
	next  int
}

// NewCursor returns a cursor over a private copy of flat, so later writes
// to flat by the caller cannot leak into the reconstruction.
func NewCursor[T any](flat []T) *Cursor[T] {
	return &Cursor[T]{items: append(make([]T, 0, len(flat)), flat...)}
}

// Take pops the next n values. It fails with ErrUnderflow, consuming
// nothing, when fewer than n remain.
// Complexity: O(1); the result aliases the cursor's private copy.
func (c *Cursor[T]) Take(n int) ([]T, error) {
	if n < 0 || n > c.Remaining() {
		return nil, fmt.Errorf("need %d, have %d: %w", n, c.Remaining(), ErrUnderflow)
	}
	out := c.items[c.next : c.next+n : c.next+n]
	c.next += n

	return out, nil
}

// Remaining returns how many values have not been taken yet.
func (c *Cursor[T]) Remaining() int {
	return len(c.items) - c.next
}

// Done reports ErrLeftover unless the cursor is exactly exhausted.
func (c *Cursor[T]) Done() error {
	if r := c.Remaining(); r != 0 {
		return fmt.Errorf("%d of %d values unused: %w", r, len(c.items), ErrLeftover)
	}
	return nil
}
