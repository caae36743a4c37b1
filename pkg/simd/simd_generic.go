//go:build (!amd64 && !arm64) || nosimd

package simd

import (
	"github.com/viterin/vek"
)

// Generic fallback implementations using the viterin/vek library.
// On platforms without AVX2/NEON, vek uses optimized pure Go
// implementations that are still faster than naive loops due to better
// memory access patterns.

func dot(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return vek.Dot(a, b)
}

func squaredNorm(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return vek.Dot(v, v)
}

func norm(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return vek.Norm(v)
}

func runtimeInfo() RuntimeInfo {
	info := vek.Info()
	return RuntimeInfo{
		Implementation: ImplGeneric,
		Features:       info.CPUFeatures,
		Accelerated:    info.Acceleration,
	}
}
