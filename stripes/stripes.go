package stripes

import "iter"

// Stripes iterates over the columns of a slice viewed as a table of width
// columns, yielding one [Stripe] per column starting at column 0.
//
// Compared with slices.Chunk, which splits a slice into width-sized rows,
// Stripes reads the same table column-wise.
type Stripes[T any] struct {
	view    []T // unvisited source, shrinks by one element per column
	width   int
	emitted int // columns handed out so far, never above width
}

// New returns the columns of s for the given stripe width.
// Any width is accepted: a width of zero or less yields no columns,
// and a width above len(s) yields len(s) single-element columns.
func New[T any](s []T, width int) *Stripes[T] {
	return &Stripes[T]{view: s, width: width}
}

// Next returns the next column.
// Each column starts one element after the previous one; the iterator is
// exhausted once width columns were returned or the source ran out.
func (s *Stripes[T]) Next() (Stripe[T], bool) {
	if s.Len() == 0 {
		return Stripe[T]{}, false
	}
	col := Stripe[T]{view: s.view, width: s.width}
	s.emitted++
	s.view = s.view[1:]
	return col, true
}

// Nth skips n columns and returns the one after them.
// A negative n returns false without moving the iterator.
func (s *Stripes[T]) Nth(n int) (Stripe[T], bool) {
	if n < 0 {
		return Stripe[T]{}, false
	}
	k := min(n, s.Len())
	s.emitted += k
	s.view = s.view[k:]
	return s.Next()
}

// Len returns the number of columns Next will still return.
func (s *Stripes[T]) Len() int {
	if s.emitted >= s.width {
		return 0
	}
	return min(s.width-s.emitted, len(s.view))
}

// Width returns the stripe width the iterator was built with.
func (s *Stripes[T]) Width() int {
	return s.width
}

// All returns the remaining columns as a sequence. Ranging over it consumes s.
func (s *Stripes[T]) All() iter.Seq[Stripe[T]] {
	return Seq[Stripe[T]](s)
}
