/*
Package stripes provides column-wise ("striped") views over Go slices.

A slice of length L read with stripe width W is treated as a table with W
columns. Where slices.Chunk walks that table row by row, [Stripes] walks it
column by column: column i yields the elements at i, i+W, i+2W, ...

	x := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	for col := range stripes.New(x, 3).All() {
		fmt.Println(col.Collect()) // [1 4 7], [2 5 8], [3 6 9]
	}

# Views

Nothing is copied. [Stripes] and every [Stripe] it returns hold sub-slices of
the caller's backing array and only read from it. A [Stripe] is a small value:
copying it forks an independent cursor, so columns may be consumed in any order
or side by side. The caller must not write to the source while views are in use.

# Boundaries

There are no errors and no panics. Exhaustion is reported through the comma-ok
result of Next and Nth:

  - an empty or nil slice has no columns;
  - a width of zero or less has no columns;
  - a width larger than the slice yields one single-element column per element;
  - when W does not divide L, the first L%W columns are one element longer.

# Extension

Any slice can produce a [Stripes] through [New], the generic [From] for named
slice types, or the [Slice] type which implements [Striped].
*/
package stripes
