//go:build arm64 && !nosimd

package simd

import (
	"github.com/viterin/vek"
)

// ARM64 implementations using the viterin/vek library. vek's float64
// routines use optimized pure Go on ARM64, with NEON acceleration where
// the library provides it.

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
	if info.Acceleration {
		return RuntimeInfo{
			Implementation: ImplNEON,
			Features:       info.CPUFeatures,
			Accelerated:    true,
		}
	}
	return RuntimeInfo{
		Implementation: ImplGeneric,
		Features:       info.CPUFeatures,
		Accelerated:    false,
	}
}
