package kernel

import (
	"sync"

	"github.com/molkit/bitkernel/pkg/tensor"
)

// ComputeOptions controls a Kernel.Compute call.
type ComputeOptions struct {
	// LastDimIsBatch reinterprets the final feature axis as a batch
	// axis: both inputs are transposed over their last two dims and
	// given a trailing singleton feature axis, so each original feature
	// becomes its own single-feature point set. For square [..., N, D]
	// inputs the output shape becomes [..., D, N, N].
	LastDimIsBatch bool

	// Postprocess overrides the identity postprocess. The cached engine
	// is rebuilt only when the Key differs from the cached one.
	Postprocess *Postprocess

	// SkipPostprocess returns the raw matrix without applying the
	// postprocess. The default is to apply it.
	SkipPostprocess bool

	// Differentiable disables the equal-inputs fast path; see
	// Options.Differentiable.
	Differentiable bool

	// Diag computes only the pairwise diagonal, shape [..., N].
	Diag bool
}

// Kernel exposes an Engine through the conventional kernel interface of
// a GP framework: two inputs in, one covariance matrix out. It caches
// one Engine keyed by the postprocess configuration and rebuilds it only
// when that configuration changes.
//
// The cache is guarded by a mutex, so a Kernel is safe to share across
// goroutines.
type Kernel struct {
	metric Metric

	mu     sync.Mutex
	engine *Engine
	builds int
}

// New creates a kernel for the given metric. The metric is validated at
// compute time, not here, so an unsupported tag surfaces as
// ErrUnsupportedMetric from the first call.
func New(metric Metric) *Kernel {
	return &Kernel{metric: metric}
}

// Metric returns the metric the kernel dispatches on.
func (k *Kernel) Metric() Metric { return k.metric }

// Forward computes the similarity matrix with default options. It is the
// entry point a GP framework composes with outer scaling wrappers.
func (k *Kernel) Forward(x1, x2 *tensor.Dense) (*tensor.Dense, error) {
	return k.Compute(x1, x2, ComputeOptions{})
}

// Compute computes the pairwise similarity between x1 [..., N, D] and
// x2 [..., M, D] under the kernel's metric.
//
// The equal-inputs fast path is gated on full element-wise equality of
// x1 and x2, an O(N*D) comparison, so it triggers only for genuinely
// identical inputs.
func (k *Kernel) Compute(x1, x2 *tensor.Dense, opts ComputeOptions) (*tensor.Dense, error) {
	if opts.LastDimIsBatch {
		t1, err := x1.TransposeLast2()
		if err != nil {
			return nil, err
		}
		t2, err := x2.TransposeLast2()
		if err != nil {
			return nil, err
		}
		x1 = t1.UnsqueezeLast()
		x2 = t2.UnsqueezeLast()
	}

	pp := Identity
	if opts.Postprocess != nil {
		pp = *opts.Postprocess
	}

	return k.engineFor(pp).Similarity(x1, x2, Options{
		Metric:           k.metric,
		X1EqualsX2:       x1.Equal(x2),
		Differentiable:   opts.Differentiable,
		ApplyPostprocess: !opts.SkipPostprocess,
		Diag:             opts.Diag,
	})
}

// engineFor returns the cached engine, rebuilding it when none exists or
// the postprocess configuration changed. The check-and-rebuild sequence
// holds the lock, so concurrent callers cannot race a stale engine in.
func (k *Kernel) engineFor(pp Postprocess) *Engine {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.engine == nil || k.engine.postprocess.Key != pp.Key {
		k.engine = NewEngine(pp)
		k.builds++
	}
	return k.engine
}
