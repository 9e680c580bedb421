package generator_test

import (
	"testing"

	"github.com/katalvlaran/lvlgen/generator"
)

// BenchmarkGenerate measures the full pipeline on the default map with every
// stage switched on.
func BenchmarkGenerate(b *testing.B) {
	p := generator.DefaultParams()
	p.Elevation = true
	p.Obstacles = true
	gen := generator.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Seed = int64(i)
		if _, err := gen.Generate(p); err != nil {
			b.Fatal(err)
		}
	}
}
