package stripes

import (
	"fmt"
	"iter"
)

// Stripe is a single column of a [Stripes] table: it yields every width-th
// element of the source starting from the column's offset.
//
// Stripe values are obtained from [Stripes.Next] or [Stripes.Nth]. The zero
// value is an empty column. Copying a Stripe copies the cursor, not the data.
type Stripe[T any] struct {
	view  []T // starts at the next element to return
	width int
}

// step is the distance between two elements of the column.
// Columns handed out by Stripes always have width >= 1; a zero width walks
// the view one element at a time.
func (s *Stripe[T]) step() int {
	return max(s.width, 1)
}

// Next returns the next element of the column.
func (s *Stripe[T]) Next() (v T, ok bool) {
	if len(s.view) == 0 {
		return v, false
	}
	v = s.view[0]
	s.view = s.view[min(s.step(), len(s.view)):]
	return v, true
}

// Nth skips n elements of the column and returns the one after them.
// A negative n returns false without moving the cursor.
func (s *Stripe[T]) Nth(n int) (v T, ok bool) {
	if n < 0 {
		return v, false
	}
	if n >= s.Len() {
		s.view = s.view[len(s.view):]
		return v, false
	}
	// n < Len, so n*step < len(view) and cannot overflow.
	s.view = s.view[n*s.step():]
	return s.Next()
}

// Len returns the number of elements left in the column.
func (s Stripe[T]) Len() int {
	if len(s.view) == 0 {
		return 0
	}
	return (len(s.view)-1)/s.step() + 1
}

// Values returns the remaining elements as a sequence.
// It walks a copy of the cursor, so s itself does not advance.
func (s Stripe[T]) Values() iter.Seq[T] {
	return Seq[T](&s)
}

// Collect copies the remaining elements into a new slice, or returns nil
// when the column is exhausted, matching the package-level Collect.
// It does not advance s.
func (s Stripe[T]) Collect() []T {
	if s.Len() == 0 {
		return nil
	}
	res := make([]T, 0, s.Len())
	for v := range s.Values() {
		res = append(res, v)
	}
	return res
}

// String returns a representation of the remaining elements, e.g. "Stripe[1 4 7]".
func (s Stripe[T]) String() string {
	return fmt.Sprintf("Stripe%v", s.Collect())
}
