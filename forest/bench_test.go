package forest_test

import (
	"testing"

	"github.com/katalvlaran/magicforest/forest"
)

// BenchmarkSuccessors measures successor expansion of a mixed forest.
func BenchmarkSuccessors(b *testing.B) {
	f := forest.Forest{Goats: 117, Wolves: 155, Lions: 106}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Successors()
	}
}

// BenchmarkIsStable measures the short-circuiting stability test on a stable forest,
// which must try every meal.
func BenchmarkIsStable(b *testing.B) {
	f := forest.Forest{Lions: 378}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.IsStable()
	}
}
