package fit

import (
	"strconv"
	"testing"
)

func makeBenchLine(n int) (x, y, yerr []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	yerr = make([]float64, n)

	for i := range x {
		x[i] = float64(i)
		y[i] = 2*float64(i) + 1 + 0.1*float64(i%3-1)
		yerr[i] = 0.1 + 0.05*float64(i%4)
	}

	return x, y, yerr
}

func BenchmarkLeastSquares(b *testing.B) {
	for _, n := range []int{4, 64, 1024, 16384} {
		x, y, _ := makeBenchLine(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 16))

			for range b.N {
				_, _ = LeastSquares(x, y)
			}
		})
	}
}

func BenchmarkWeightedLeastSquares(b *testing.B) {
	for _, n := range []int{4, 64, 1024, 16384} {
		x, y, yerr := makeBenchLine(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 24))

			for range b.N {
				_, _ = WeightedLeastSquares(x, y, yerr)
			}
		})
	}
}
