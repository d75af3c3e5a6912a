package editdist_test

import (
	"testing"

	"github.com/katalvlaran/dnc/editdist"
)

// sequences returns two int sequences of lengths n and m that differ
// at every third position.
func sequences(n, m int) ([]int, []int) {
	x := make([]int, n)
	y := make([]int, m)
	for i := range x {
		x[i] = i
	}
	for j := range y {
		y[j] = j
		if j%3 == 0 {
			y[j] = -j
		}
	}

	return x, y
}

// benchmarkDistance runs DistanceWith on sequences of lengths n and m using opts.
func benchmarkDistance(b *testing.B, n, m int, opts editdist.Options) {
	x, y := sequences(n, m)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := editdist.DistanceWith(x, y, opts); err != nil {
			b.Fatalf("DistanceWith failed: %v", err)
		}
	}
}

// BenchmarkDistance_FullMatrixSmall benchmarks FullMatrix on 100×100 sequences.
func BenchmarkDistance_FullMatrixSmall(b *testing.B) {
	benchmarkDistance(b, 100, 100, editdist.DefaultOptions())
}

// BenchmarkDistance_FullMatrixMedium benchmarks FullMatrix on 500×500 sequences.
func BenchmarkDistance_FullMatrixMedium(b *testing.B) {
	benchmarkDistance(b, 500, 500, editdist.DefaultOptions())
}

// BenchmarkDistance_TwoRowsMedium benchmarks the rolling mode on 500×500 sequences.
func BenchmarkDistance_TwoRowsMedium(b *testing.B) {
	opts := editdist.DefaultOptions()
	opts.MemoryMode = editdist.TwoRows
	benchmarkDistance(b, 500, 500, opts)
}

// BenchmarkBacktrack_Medium benchmarks alignment recovery on a prebuilt 500×500 table.
func BenchmarkBacktrack_Medium(b *testing.B) {
	x, y := sequences(500, 500)
	t := editdist.BuildTable(x, y)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := editdist.Backtrack(t, x, y); err != nil {
			b.Fatalf("Backtrack failed: %v", err)
		}
	}
}
