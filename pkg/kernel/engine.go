package kernel

import (
	"fmt"

	"github.com/molkit/bitkernel/pkg/math/vector"
	"github.com/molkit/bitkernel/pkg/simd"
	"github.com/molkit/bitkernel/pkg/tensor"
)

// Options controls a single similarity computation.
type Options struct {
	// Metric selects the computation rule.
	Metric Metric

	// X1EqualsX2 hints that the two inputs are element-wise identical.
	// It is an optimization hint: when set (and Differentiable is not),
	// the engine reuses x1's norms for x2 and forces the diagonal to
	// exactly 1, which the raw formula cannot guarantee under
	// floating-point rounding. Leaving it unset for identical inputs
	// only costs the saved reduction; setting it for genuinely
	// different inputs corrupts the result.
	X1EqualsX2 bool

	// Differentiable disables the X1EqualsX2 fast path so the
	// computation stays expressible as plain array operations for
	// callers that differentiate through it.
	Differentiable bool

	// ApplyPostprocess applies the engine's postprocess to the raw
	// matrix before returning it.
	ApplyPostprocess bool

	// Diag computes only the pairwise diagonal, shape [..., N] instead
	// of [..., N, M]. Requires N == M.
	Diag bool
}

// Engine computes pairwise similarity matrices. It is purely functional
// apart from the postprocess captured at construction, and safe for
// concurrent use.
type Engine struct {
	postprocess Postprocess
}

// NewEngine creates an engine with the given postprocess. A Postprocess
// with a nil Fn falls back to Identity.
func NewEngine(pp Postprocess) *Engine {
	if pp.Fn == nil {
		pp = Identity
	}
	return &Engine{postprocess: pp}
}

// Postprocess returns the postprocess the engine was built with.
func (e *Engine) Postprocess() Postprocess { return e.postprocess }

// Similarity computes the pairwise similarity between x1 [..., N, D] and
// x2 [..., M, D] under opts.Metric. Leading batch dimensions broadcast.
// The result has shape [..., N, M], or [..., N] with opts.Diag, with
// values clamped to be non-negative.
//
// Rows of all zeros produce NaN entries (0/0 denominator); they
// propagate per IEEE 754 and are not treated as an error. Callers
// needing stricter behavior must pre-filter degenerate rows.
func (e *Engine) Similarity(x1, x2 *tensor.Dense, opts Options) (*tensor.Dense, error) {
	fn, ok := metrics[opts.Metric]
	if !ok {
		return nil, unsupportedMetric(opts.Metric)
	}
	res, err := fn(x1, x2, opts)
	if err != nil {
		return nil, err
	}
	if opts.ApplyPostprocess {
		res = e.postprocess.Fn(res)
	}
	return res, nil
}

// tanimoto computes cross / (norm1 + norm2 - cross) over every row pair,
// where cross is the dot product and the norms are squared L2 norms.
func tanimoto(x1, x2 *tensor.Dense, opts Options) (*tensor.Dense, error) {
	pair, err := tensor.Pairwise(x1, x2)
	if err != nil {
		return nil, err
	}
	n, m := pair.Rows()
	d := pair.FeatureDim()
	if opts.Diag && n != m {
		return nil, fmt.Errorf("%w: diagonal needs equal point counts, got %d and %d", tensor.ErrShape, n, m)
	}

	// The hint is only trusted when the caller is not differentiating
	// through the computation.
	fast := opts.X1EqualsX2 && !opts.Differentiable && n == m

	if opts.Diag {
		out := tensor.Zeros(append(pair.BatchShape(), n)...)
		res := out.Data()
		for t := 0; t < pair.NumBatches(); t++ {
			a := pair.Left(t)
			b := pair.Right(t)
			block := res[t*n : (t+1)*n]
			if fast {
				for i := range block {
					block[i] = 1
				}
				continue
			}
			for i := 0; i < n; i++ {
				block[i] = vector.Tanimoto(a[i*d:(i+1)*d], b[i*d:(i+1)*d])
			}
			simd.ClampMinInPlace(block, 0)
		}
		return out, nil
	}

	out := tensor.Zeros(append(pair.BatchShape(), n, m)...)
	res := out.Data()

	norms1 := make([]float64, n)
	norms2 := make([]float64, m)
	for t := 0; t < pair.NumBatches(); t++ {
		a := pair.Left(t)
		b := pair.Right(t)

		for i := 0; i < n; i++ {
			norms1[i] = simd.SquaredNorm(a[i*d : (i+1)*d])
		}
		if fast {
			// Identical inputs share norms; saves one reduction pass.
			copy(norms2, norms1)
		} else {
			for j := 0; j < m; j++ {
				norms2[j] = simd.SquaredNorm(b[j*d : (j+1)*d])
			}
		}

		block := res[t*n*m : (t+1)*n*m]
		for i := 0; i < n; i++ {
			ai := a[i*d : (i+1)*d]
			row := block[i*m : (i+1)*m]
			for j := 0; j < m; j++ {
				cross := simd.Dot(ai, b[j*d:(j+1)*d])
				row[j] = cross / (norms1[i] + norms2[j] - cross)
			}
		}
		if fast {
			// Self-similarity is exactly 1; the formula alone loses
			// that to catastrophic cancellation.
			for i := 0; i < n; i++ {
				block[i*m+i] = 1
			}
		}

		// Rounding near zero denominators can go slightly negative.
		// No upper clamp: valid Tanimoto inputs stay <= 1.
		simd.ClampMinInPlace(block, 0)
	}
	return out, nil
}
