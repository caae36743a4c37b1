// Package simd provides SIMD-accelerated float64 reductions for bitkernel.
//
// The Tanimoto kernel is dominated by two reductions over fingerprint
// rows: dot products and squared L2 norms. This package implements them
// using platform-specific acceleration where available:
//
//   - x86/amd64: loop unrolling tuned for AVX2 auto-vectorization
//   - arm64: viterin/vek optimized implementations
//   - fallback: viterin/vek pure Go implementations
//
// The package detects CPU capabilities at runtime and selects the fastest
// available implementation. No configuration is required.
//
// # Supported Operations
//
//   - Dot: dot product of two vectors
//   - SquaredNorm: squared L2 norm of a vector
//   - Norm: L2 norm of a vector
//   - ClampMinInPlace: clamp vector entries to a lower bound in-place
//
// # Thread Safety
//
// All functions are safe for concurrent use; none modify global state.
//
// # Precision
//
// All operations use float64 throughout. Gaussian Process covariance
// matrices are Cholesky-factorized downstream, where float32 rounding is
// enough to break positive-definiteness, so the kernel stays in float64.
package simd
