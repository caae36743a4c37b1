package simd

// Implementation represents the active SIMD implementation
type Implementation string

const (
	// ImplGeneric indicates pure Go fallback (no SIMD)
	ImplGeneric Implementation = "generic"
	// ImplAVX2 indicates x86 AVX2+FMA SIMD
	ImplAVX2 Implementation = "avx2"
	// ImplNEON indicates ARM NEON SIMD
	ImplNEON Implementation = "neon"
)

// RuntimeInfo contains information about the active SIMD implementation
type RuntimeInfo struct {
	// Implementation is the active SIMD backend
	Implementation Implementation
	// Features lists specific CPU features being used
	Features []string
	// Accelerated indicates whether SIMD acceleration is active
	Accelerated bool
}

// Dot computes the dot product of two float64 vectors.
//
// Returns 0 if the vectors are empty or have different lengths.
//
// Example:
//
//	a := []float64{1, 2, 3}
//	b := []float64{4, 5, 6}
//	result := simd.Dot(a, b) // 1*4 + 2*5 + 3*6 = 32
func Dot(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	return dot(a, b)
}

// SquaredNorm computes the squared L2 norm of a float64 vector:
// sum(v[i]^2). For 0/1 bit vectors this equals the popcount.
//
// Example:
//
//	v := []float64{3, 4}
//	result := simd.SquaredNorm(v) // 25.0
func SquaredNorm(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return squaredNorm(v)
}

// Norm computes the L2 norm (magnitude) of a float64 vector.
//
// Example:
//
//	v := []float64{3, 4}
//	result := simd.Norm(v) // 5.0
func Norm(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return norm(v)
}

// ClampMinInPlace raises every entry of v below lo to lo, in place.
// NaN entries compare false against lo and are left untouched.
func ClampMinInPlace(v []float64, lo float64) {
	for i, x := range v {
		if x < lo {
			v[i] = lo
		}
	}
}

// Info returns information about the active SIMD implementation.
//
// Example:
//
//	info := simd.Info()
//	if info.Accelerated {
//	    fmt.Printf("Using %s SIMD\n", info.Implementation)
//	}
func Info() RuntimeInfo {
	return runtimeInfo()
}
