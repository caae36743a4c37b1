//go:build amd64 && !nosimd

package simd

import (
	"math"

	"golang.org/x/sys/cpu"
)

// x86/amd64 optimized implementations.
// Uses loop unrolling that the Go compiler can auto-vectorize with AVX2/SSE.

// hasAVX2 checks if the CPU supports AVX2+FMA at runtime
var hasAVX2 = cpu.X86.HasAVX2 && cpu.X86.HasFMA

func dot(a, b []float64) float64 {
	n := len(a)
	if n == 0 {
		return 0
	}

	// 8-way unrolling for better auto-vectorization (AVX2 = 4 float64s
	// per register, two registers in flight)
	sum0 := float64(0)
	sum1 := float64(0)
	sum2 := float64(0)
	sum3 := float64(0)
	sum4 := float64(0)
	sum5 := float64(0)
	sum6 := float64(0)
	sum7 := float64(0)

	i := 0
	for ; i <= n-8; i += 8 {
		sum0 += a[i] * b[i]
		sum1 += a[i+1] * b[i+1]
		sum2 += a[i+2] * b[i+2]
		sum3 += a[i+3] * b[i+3]
		sum4 += a[i+4] * b[i+4]
		sum5 += a[i+5] * b[i+5]
		sum6 += a[i+6] * b[i+6]
		sum7 += a[i+7] * b[i+7]
	}

	// Handle remaining elements
	for ; i < n; i++ {
		sum0 += a[i] * b[i]
	}

	return sum0 + sum1 + sum2 + sum3 + sum4 + sum5 + sum6 + sum7
}

func squaredNorm(v []float64) float64 {
	n := len(v)
	if n == 0 {
		return 0
	}

	sum0 := float64(0)
	sum1 := float64(0)
	sum2 := float64(0)
	sum3 := float64(0)
	sum4 := float64(0)
	sum5 := float64(0)
	sum6 := float64(0)
	sum7 := float64(0)

	i := 0
	for ; i <= n-8; i += 8 {
		sum0 += v[i] * v[i]
		sum1 += v[i+1] * v[i+1]
		sum2 += v[i+2] * v[i+2]
		sum3 += v[i+3] * v[i+3]
		sum4 += v[i+4] * v[i+4]
		sum5 += v[i+5] * v[i+5]
		sum6 += v[i+6] * v[i+6]
		sum7 += v[i+7] * v[i+7]
	}

	for ; i < n; i++ {
		sum0 += v[i] * v[i]
	}

	return sum0 + sum1 + sum2 + sum3 + sum4 + sum5 + sum6 + sum7
}

func norm(v []float64) float64 {
	return math.Sqrt(squaredNorm(v))
}

func runtimeInfo() RuntimeInfo {
	if hasAVX2 {
		return RuntimeInfo{
			Implementation: ImplAVX2,
			Features:       []string{"avx2", "fma", "auto-vectorized"},
			Accelerated:    true,
		}
	}
	return RuntimeInfo{
		Implementation: ImplGeneric,
		Features:       []string{"sse2"},
		Accelerated:    false,
	}
}
