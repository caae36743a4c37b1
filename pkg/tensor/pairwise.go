package tensor

import "fmt"

// Pair iterates two batched point sets in lockstep over their broadcast
// leading dimensions. Left blocks are [N, D], right blocks are [M, D].
type Pair struct {
	left, right *Dense
	batch       []int
	n, m, d     int
	offL, offR  []int
}

// Pairwise validates x1 [..., N, D] and x2 [..., M, D], broadcasts their
// leading dimensions, and returns an iterator over the matched batches.
func Pairwise(x1, x2 *Dense) (*Pair, error) {
	if x1.Dims() < 2 || x2.Dims() < 2 {
		return nil, fmt.Errorf("%w: need at least [N, D], got %v and %v", ErrShape, x1.shape, x2.shape)
	}
	k1, k2 := len(x1.shape), len(x2.shape)
	d1, d2 := x1.shape[k1-1], x2.shape[k2-1]
	if d1 != d2 {
		return nil, fmt.Errorf("%w: feature dims differ, %d vs %d", ErrShape, d1, d2)
	}
	batch, err := broadcastShapes(x1.shape[:k1-2], x2.shape[:k2-2])
	if err != nil {
		return nil, err
	}
	p := &Pair{
		left:  x1,
		right: x2,
		batch: batch,
		n:     x1.shape[k1-2],
		m:     x2.shape[k2-2],
		d:     d1,
	}
	p.offL = batchOffsets(batch, x1.shape[:k1-2], p.n*p.d)
	p.offR = batchOffsets(batch, x2.shape[:k2-2], p.m*p.d)
	return p, nil
}

// BatchShape returns the broadcast leading dimensions.
func (p *Pair) BatchShape() []int { return append([]int(nil), p.batch...) }

// NumBatches returns the number of flat broadcast batches.
func (p *Pair) NumBatches() int { return len(p.offL) }

// Rows returns the point counts (N, M) of the two sides.
func (p *Pair) Rows() (n, m int) { return p.n, p.m }

// FeatureDim returns D.
func (p *Pair) FeatureDim() int { return p.d }

// Left returns the [N, D] block of x1 for flat batch index t.
func (p *Pair) Left(t int) []float64 {
	off := p.offL[t]
	return p.left.data[off : off+p.n*p.d]
}

// Right returns the [M, D] block of x2 for flat batch index t.
func (p *Pair) Right(t int) []float64 {
	off := p.offR[t]
	return p.right.data[off : off+p.m*p.d]
}

// batchOffsets computes, for every flat index of the broadcast batch
// shape, the element offset of the corresponding block in an input with
// the given leading shape. Broadcast (size-1 or missing) dimensions
// contribute stride 0.
func batchOffsets(batch, in []int, block int) []int {
	total := 1
	for _, s := range batch {
		total *= s
	}
	// Row-major strides of the input, in block units.
	strides := make([]int, len(batch))
	stride := block
	for i := len(in) - 1; i >= 0; i-- {
		j := i + len(batch) - len(in)
		if in[i] == 1 {
			strides[j] = 0
		} else {
			strides[j] = stride
		}
		stride *= in[i]
	}
	offs := make([]int, total)
	idx := make([]int, len(batch))
	for t := 0; t < total; t++ {
		off := 0
		for j := range batch {
			off += idx[j] * strides[j]
		}
		offs[t] = off
		for j := len(batch) - 1; j >= 0; j-- {
			idx[j]++
			if idx[j] < batch[j] {
				break
			}
			idx[j] = 0
		}
	}
	return offs
}
