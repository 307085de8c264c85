package stripes

// Striped is implemented by sequence types that can be read column-wise.
type Striped[T any] interface {
	Stripes(width int) *Stripes[T]
}

// Slice is a []T with a Stripes method, for callers that prefer
// s.Stripes(w) over New(s, w).
//
//	cols := stripes.Slice[int](data).Stripes(3)
type Slice[T any] []T

var _ Striped[int] = Slice[int](nil)

// Stripes is the method form of [New].
func (s Slice[T]) Stripes(width int) *Stripes[T] {
	return New([]T(s), width)
}

// From is [New] for named slice types, without an explicit conversion.
func From[S ~[]T, T any](s S, width int) *Stripes[T] {
	return New([]T(s), width)
}
