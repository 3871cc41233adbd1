package naca_test

import (
	"testing"

	"github.com/katalvlaran/naca/naca"
)

// benchmarkGenerate runs Generate for designator with n stations.
func benchmarkGenerate(b *testing.B, designator string, n int) {
	opts := naca.Options{HalfCosineSpacing: true}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := naca.Generate(designator, n, &opts); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_FourDigit100 mirrors the interactive browser workload.
func BenchmarkGenerate_FourDigit100(b *testing.B) { benchmarkGenerate(b, "2412", 100) }

// BenchmarkGenerate_FiveDigit100 includes the spline table lookups.
func BenchmarkGenerate_FiveDigit100(b *testing.B) { benchmarkGenerate(b, "23012", 100) }

// BenchmarkGenerate_FourDigit10k is a dense export.
func BenchmarkGenerate_FourDigit10k(b *testing.B) { benchmarkGenerate(b, "4415", 10000) }
