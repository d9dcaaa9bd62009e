package subiso_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/subiso"
)

// BenchmarkContains measures containment of a small random pattern in random
// targets with a three-letter label alphabet.
func BenchmarkContains(b *testing.B) {
	pattern, err := builder.BuildRooted(builder.RandomTree(8), 0,
		builder.WithSeed(1), builder.WithLabelFn(builder.ModLabel(3)))
	if err != nil {
		b.Fatal(err)
	}
	for _, n := range []int{100, 1_000, 10_000} {
		target, err := builder.BuildRooted(builder.RandomTree(n), 0,
			builder.WithSeed(2), builder.WithLabelFn(builder.ModLabel(3)))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = subiso.Count(pattern, target)
			}
		})
	}
}

// BenchmarkContains_Star stresses the matching step with wide nodes.
func BenchmarkContains_Star(b *testing.B) {
	target, _ := builder.BuildRooted(builder.Star(1_000), 0, builder.WithLabelFn(builder.ConstLabel("a")))
	pattern, _ := builder.BuildRooted(builder.Star(500), 0, builder.WithLabelFn(builder.ConstLabel("a")))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = subiso.Contains(pattern, target)
	}
}
