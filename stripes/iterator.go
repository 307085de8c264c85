package stripes

import "iter"

// Iterator is a pull-style cursor over a sequence of T.
// Both *Stripes[E] (as Iterator[Stripe[E]]) and *Stripe[E] satisfy it.
type Iterator[T any] interface {
	// Next returns the next element and advances the cursor.
	// ok is false once the sequence is exhausted, and stays false.
	Next() (v T, ok bool)

	// Nth discards n elements and returns the one after them,
	// as if Next had been called n+1 times.
	Nth(n int) (v T, ok bool)
}

// Seq drains it as an iter.Seq. Breaking out of the range loop leaves it
// positioned after the last element handed out.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Collect drains it into a new slice. It returns nil when it yields nothing,
// like slices.Collect.
func Collect[T any](it Iterator[T]) []T {
	var res []T
	for {
		v, ok := it.Next()
		if !ok {
			return res
		}
		res = append(res, v)
	}
}
