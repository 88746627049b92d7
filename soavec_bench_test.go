package soavec_test

import (
	"fmt"
	"testing"

	"github.com/edwinsyarief/soavec"
)

// Push Benchmarks
func BenchmarkPushBackPreallocated(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				v := soavec.NewVector3[int32, float64, float64]()
				v.Reserve(size)
				for j := range size {
					v.PushBack(int32(j), float64(j), float64(j))
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkPushBackGrowing(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				v := soavec.NewVector3[int32, float64, float64]()
				for j := range size {
					v.PushBack(int32(j), float64(j), float64(j))
				}
			}
			b.ReportAllocs()
		})
	}
}

// Iteration Benchmarks
func BenchmarkSpanIterate(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			v := soavec.NewVector3[int32, float64, float64]()
			v.Reserve(size)
			for j := range size {
				v.PushBack(int32(j), float64(j), float64(j)*0.5)
			}
			xs := soavec.Span[float64](v.Raw(), 1)
			ys := soavec.Span[float64](v.Raw(), 2)
			for b.Loop() {
				var sum float64
				for j := range xs {
					sum += xs[j] + ys[j]
				}
				_ = sum
			}
			b.ReportAllocs()
		})
	}
}

// Copy/Move Benchmarks
func BenchmarkClone(b *testing.B) {
	sizes := []int{1000, 10000, 100000}
	for _, size := range sizes {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			v := soavec.NewVector2[int64, float64]()
			for j := range size {
				v.PushBack(int64(j), float64(j))
			}
			for b.Loop() {
				_ = v.Clone()
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkPushBackStrings(b *testing.B) {
	sizes := []int{1000, 10000}
	words := []string{"alpha", "beta", "gamma", "delta"}
	for _, size := range sizes {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				v := soavec.NewVector2[int32, string]()
				v.Reserve(size)
				for j := range size {
					v.PushBack(int32(j), words[j&3])
				}
			}
			b.ReportAllocs()
		})
	}
}
