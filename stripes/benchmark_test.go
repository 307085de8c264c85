package stripes_test

import (
	"colview/stripes"
	"fmt"
	"testing"
)

// BenchmarkColumnSum compares summing every column through Stripes with a
// hand-written strided index loop.
func BenchmarkColumnSum(b *testing.B) {
	size := 1_000_000
	input := make([]int, size)
	for i := 0; i < size; i++ {
		input[i] = i
	}

	for _, width := range []int{2, 16, 1024} {
		b.Run(fmt.Sprintf("Stripes/width=%d", width), func(b *testing.B) {
			for b.Loop() {
				total := 0
				for col := range stripes.New(input, width).All() {
					for v := range col.Values() {
						total += v
					}
				}
				_ = total
			}
		})

		b.Run(fmt.Sprintf("StripesNext/width=%d", width), func(b *testing.B) {
			for b.Loop() {
				total := 0
				cols := stripes.New(input, width)
				for {
					col, ok := cols.Next()
					if !ok {
						break
					}
					for {
						v, ok := col.Next()
						if !ok {
							break
						}
						total += v
					}
				}
				_ = total
			}
		})

		b.Run(fmt.Sprintf("IndexLoop/width=%d", width), func(b *testing.B) {
			for b.Loop() {
				total := 0
				for c := 0; c < width && c < len(input); c++ {
					for i := c; i < len(input); i += width {
						total += input[i]
					}
				}
				_ = total
			}
		})
	}
}
