// Package kernel implements fingerprint similarity kernels for Gaussian
// Process regression.
//
// A Kernel computes pairwise similarity matrices between batches of bit
// or count vectors (molecular fingerprints) under a named metric. The
// resulting matrix is a symmetric positive-semi-definite covariance
// suitable for GP models; outer scaling and hyperparameter wrappers are
// owned by the surrounding GP framework.
//
// Example:
//
//	x, _ := tensor.FromRows([][]float64{{1, 1, 0, 0}, {1, 0, 0, 0}})
//	k := kernel.New(kernel.MetricTanimoto)
//	cov, err := k.Forward(x, x)
package kernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/molkit/bitkernel/pkg/tensor"
)

// ErrUnsupportedMetric indicates a similarity metric outside the
// supported set.
var ErrUnsupportedMetric = errors.New("similarity metric not supported")

// Metric selects the similarity computation rule.
type Metric string

const (
	// MetricTanimoto is the generalized Jaccard coefficient for
	// real-valued vectors: <x,y> / (||x||^2 + ||y||^2 - <x,y>).
	MetricTanimoto Metric = "tanimoto"
)

// simFunc computes the raw (pre-postprocess) similarity under one metric.
type simFunc func(x1, x2 *tensor.Dense, opts Options) (*tensor.Dense, error)

// metrics is the closed dispatch table. Adding a metric means adding a
// constant and an entry here.
var metrics = map[Metric]simFunc{
	MetricTanimoto: tanimoto,
}

// SupportedMetrics returns the metrics this package implements.
func SupportedMetrics() []Metric {
	return []Metric{MetricTanimoto}
}

// Valid reports whether the metric is in the supported set.
func (m Metric) Valid() bool {
	_, ok := metrics[m]
	return ok
}

// unsupportedMetric builds the error surfaced for unknown metrics,
// enumerating the supported tags.
func unsupportedMetric(m Metric) error {
	names := make([]string, 0, len(metrics))
	for _, s := range SupportedMetrics() {
		names = append(names, string(s))
	}
	return fmt.Errorf("%w: %q (available: %s)", ErrUnsupportedMetric, m, strings.Join(names, ", "))
}
