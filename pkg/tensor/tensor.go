// Package tensor provides batched dense float64 arrays for bitkernel.
//
// A Dense holds row-major contiguous data with an arbitrary shape. The
// kernel packages treat the last two dimensions as [points, features] and
// every leading dimension as an independent batch, with numpy-style
// broadcasting across the leading dimensions of two operands.
//
// Main Functions:
//   - New / Zeros / FromRows: construction
//   - Pairwise: broadcast two [..., N, D] / [..., M, D] batches for
//     pairwise computation
//   - TransposeLast2 / UnsqueezeLast: reshaping for per-feature batching
//   - Equal: exact element-wise comparison
package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates incompatible or malformed tensor shapes.
	ErrShape = errors.New("incompatible tensor shapes")
	// ErrSize indicates data whose length does not match its shape.
	ErrSize = errors.New("data length does not match shape")
)

// Dense is a dense, row-major float64 tensor.
//
// The zero value is not usable; construct with New, Zeros or FromRows.
// Data is owned by the tensor; callers passing a slice to New must not
// mutate it afterwards.
type Dense struct {
	shape []int
	data  []float64
}

// New creates a tensor with the given shape backed by data.
// The data slice is retained, not copied.
func New(shape []int, data []float64) (*Dense, error) {
	n := 1
	for _, s := range shape {
		if s < 0 {
			return nil, fmt.Errorf("%w: negative dimension %d", ErrShape, s)
		}
		n *= s
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: shape %v needs %d values, got %d", ErrSize, shape, n, len(data))
	}
	return &Dense{shape: append([]int(nil), shape...), data: data}, nil
}

// Zeros creates a zero-filled tensor with the given shape.
func Zeros(shape ...int) *Dense {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return &Dense{shape: append([]int(nil), shape...), data: make([]float64, n)}
}

// FromRows creates a 2D [N, D] tensor from equal-length rows.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return Zeros(0, 0), nil
	}
	d := len(rows[0])
	data := make([]float64, 0, len(rows)*d)
	for i, r := range rows {
		if len(r) != d {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, i, len(r), d)
		}
		data = append(data, r...)
	}
	return &Dense{shape: []int{len(rows), d}, data: data}, nil
}

// Shape returns a copy of the tensor's shape.
func (t *Dense) Shape() []int { return append([]int(nil), t.shape...) }

// Dims returns the number of dimensions.
func (t *Dense) Dims() int { return len(t.shape) }

// Size returns the total number of elements.
func (t *Dense) Size() int { return len(t.data) }

// Data returns the backing slice. Mutating it mutates the tensor.
func (t *Dense) Data() []float64 { return t.data }

// Clone returns a deep copy.
func (t *Dense) Clone() *Dense {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Dense{shape: append([]int(nil), t.shape...), data: data}
}

// Equal reports exact shape and element-wise equality. Like the IEEE 754
// comparison it is built on, tensors containing NaN are never equal.
func (t *Dense) Equal(o *Dense) bool {
	if o == nil || len(t.shape) != len(o.shape) {
		return false
	}
	for i := range t.shape {
		if t.shape[i] != o.shape[i] {
			return false
		}
	}
	for i := range t.data {
		if t.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// TransposeLast2 returns a copy with the last two dimensions swapped.
func (t *Dense) TransposeLast2() (*Dense, error) {
	k := len(t.shape)
	if k < 2 {
		return nil, fmt.Errorf("%w: transpose needs at least 2 dims, got %v", ErrShape, t.shape)
	}
	n, m := t.shape[k-2], t.shape[k-1]
	shape := append([]int(nil), t.shape...)
	shape[k-2], shape[k-1] = m, n
	out := Zeros(shape...)
	block := n * m
	for off := 0; off < len(t.data); off += block {
		src := t.data[off : off+block]
		dst := out.data[off : off+block]
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				dst[j*n+i] = src[i*m+j]
			}
		}
	}
	return out, nil
}

// UnsqueezeLast returns a view of the tensor with a trailing singleton
// dimension appended. The backing data is shared.
func (t *Dense) UnsqueezeLast() *Dense {
	shape := append(append([]int(nil), t.shape...), 1)
	return &Dense{shape: shape, data: t.data}
}

// Diagonal returns the diagonal of the last two dimensions, which must be
// square. The result has shape [..., n].
func (t *Dense) Diagonal() (*Dense, error) {
	k := len(t.shape)
	if k < 2 || t.shape[k-2] != t.shape[k-1] {
		return nil, fmt.Errorf("%w: diagonal needs square last dims, got %v", ErrShape, t.shape)
	}
	n := t.shape[k-1]
	out := Zeros(append(append([]int(nil), t.shape[:k-2]...), n)...)
	block := n * n
	for b := 0; b*block < len(t.data); b++ {
		src := t.data[b*block : (b+1)*block]
		dst := out.data[b*n : (b+1)*n]
		for i := 0; i < n; i++ {
			dst[i] = src[i*n+i]
		}
	}
	return out, nil
}

// broadcastShapes applies numpy-style broadcasting to two shapes,
// aligned on the right.
func broadcastShapes(a, b []int) ([]int, error) {
	k := len(a)
	if len(b) > k {
		k = len(b)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		da, db := 1, 1
		if i >= k-len(a) {
			da = a[i-(k-len(a))]
		}
		if i >= k-len(b) {
			db = b[i-(k-len(b))]
		}
		switch {
		case da == db:
			out[i] = da
		case da == 1:
			out[i] = db
		case db == 1:
			out[i] = da
		default:
			return nil, fmt.Errorf("%w: cannot broadcast %v with %v", ErrShape, a, b)
		}
	}
	return out, nil
}
