// Package vector provides single-pair vector similarity operations for
// bitkernel.
//
// The kernel package computes full pairwise matrices; use these
// functions when only one pair of fingerprints needs comparing, for
// example in screening loops or diagonal-only covariance evaluation.
package vector

import (
	"github.com/molkit/bitkernel/pkg/simd"
)

// Tanimoto calculates the generalized Tanimoto (Jaccard) similarity
// between two float64 vectors: <a,b> / (||a||^2 + ||b||^2 - <a,b>).
// For 0/1 bit vectors this is |a AND b| / |a OR b|.
//
// Returns a value in [0, 1] for non-negative inputs. Two zero vectors
// produce NaN (0/0); returns 0 on length mismatch or empty input.
//
// Uses SIMD acceleration for the reductions.
//
// Example:
//
//	a := []float64{1, 1, 0, 0}
//	b := []float64{1, 0, 0, 0}
//	sim := vector.Tanimoto(a, b)  // Returns 0.5
func Tanimoto(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	cross := simd.Dot(a, b)
	return cross / (simd.SquaredNorm(a) + simd.SquaredNorm(b) - cross)
}

// TanimotoFloat32 calculates Tanimoto similarity for float32 vectors.
// Uses float64 accumulation for precision with float32 inputs.
func TanimotoFloat32(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var cross, normA, normB float64
	for i := range a {
		cross += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	return cross / (normA + normB - cross)
}

// TanimotoDistance calculates the Tanimoto distance, 1 - Tanimoto(a, b).
// A proper metric on bit vectors; used where a GP framework expects a
// distance rather than a similarity.
func TanimotoDistance(a, b []float64) float64 {
	return 1 - Tanimoto(a, b)
}
