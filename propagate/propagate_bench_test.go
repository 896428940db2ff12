package propagate

import (
	"strconv"
	"testing"
)

func makeBenchSeries(n int) Series {
	s := make(Series, n)
	for i := range s {
		s[i] = Measurement{Value: 1 + float64(i%7), Err: 0.01 * float64(1+i%3)}
	}

	return s
}

func BenchmarkSummation(b *testing.B) {
	for _, n := range []int{4, 64, 1024} {
		s := makeBenchSeries(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				_, _ = Summation(s)
			}
		})
	}
}

func BenchmarkProduct(b *testing.B) {
	for _, n := range []int{4, 64, 1024} {
		s := makeBenchSeries(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				_, _ = Product(s)
			}
		})
	}
}
