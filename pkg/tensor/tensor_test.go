package tensor

import (
	"errors"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	d, err := New([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if d.Size() != 6 || d.Dims() != 2 {
		t.Errorf("Size() = %d, Dims() = %d, want 6, 2", d.Size(), d.Dims())
	}

	if _, err := New([]int{2, 3}, []float64{1, 2}); !errors.Is(err, ErrSize) {
		t.Errorf("New() with short data error = %v, want ErrSize", err)
	}
}

func TestFromRows(t *testing.T) {
	d, err := FromRows([][]float64{{1, 0}, {0, 1}, {1, 1}})
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}
	if got := d.Shape(); got[0] != 3 || got[1] != 2 {
		t.Errorf("Shape() = %v, want [3 2]", got)
	}

	if _, err := FromRows([][]float64{{1, 0}, {1}}); !errors.Is(err, ErrShape) {
		t.Errorf("FromRows() with ragged rows error = %v, want ErrShape", err)
	}
}

func TestEqual(t *testing.T) {
	a, _ := FromRows([][]float64{{1, 0}, {0, 1}})
	b, _ := FromRows([][]float64{{1, 0}, {0, 1}})
	c, _ := FromRows([][]float64{{1, 0}, {1, 1}})

	if !a.Equal(b) {
		t.Error("identical tensors should be equal")
	}
	if a.Equal(c) {
		t.Error("different tensors should not be equal")
	}
	if a.Equal(a.UnsqueezeLast()) {
		t.Error("tensors with different shapes should not be equal")
	}

	// NaN never compares equal, matching IEEE semantics.
	n, _ := FromRows([][]float64{{math.NaN()}})
	if n.Equal(n) {
		t.Error("NaN tensor should not equal itself")
	}
}

func TestTransposeLast2(t *testing.T) {
	d, _ := New([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	got, err := d.TransposeLast2()
	if err != nil {
		t.Fatalf("TransposeLast2() error = %v", err)
	}
	if s := got.Shape(); s[0] != 3 || s[1] != 2 {
		t.Errorf("Shape() = %v, want [3 2]", s)
	}
	want := []float64{1, 4, 2, 5, 3, 6}
	for i, v := range got.Data() {
		if v != want[i] {
			t.Errorf("Data()[%d] = %v, want %v", i, v, want[i])
		}
	}

	// Batched transpose operates per block.
	b, _ := New([]int{2, 1, 2}, []float64{1, 2, 3, 4})
	bt, err := b.TransposeLast2()
	if err != nil {
		t.Fatalf("TransposeLast2() error = %v", err)
	}
	if s := bt.Shape(); s[0] != 2 || s[1] != 2 || s[2] != 1 {
		t.Errorf("Shape() = %v, want [2 2 1]", s)
	}

	v := Zeros(4)
	if _, err := v.TransposeLast2(); !errors.Is(err, ErrShape) {
		t.Errorf("TransposeLast2() on 1D error = %v, want ErrShape", err)
	}
}

func TestUnsqueezeLast(t *testing.T) {
	d, _ := New([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	got := d.UnsqueezeLast()
	if s := got.Shape(); len(s) != 3 || s[2] != 1 {
		t.Errorf("Shape() = %v, want [2 3 1]", s)
	}
	if got.Data()[4] != 5 {
		t.Error("UnsqueezeLast should share backing data")
	}
}

func TestDiagonal(t *testing.T) {
	d, _ := New([]int{2, 2, 2}, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	got, err := d.Diagonal()
	if err != nil {
		t.Fatalf("Diagonal() error = %v", err)
	}
	if s := got.Shape(); len(s) != 2 || s[0] != 2 || s[1] != 2 {
		t.Errorf("Shape() = %v, want [2 2]", s)
	}
	want := []float64{1, 4, 5, 8}
	for i, v := range got.Data() {
		if v != want[i] {
			t.Errorf("Data()[%d] = %v, want %v", i, v, want[i])
		}
	}

	r, _ := New([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	if _, err := r.Diagonal(); !errors.Is(err, ErrShape) {
		t.Errorf("Diagonal() on non-square error = %v, want ErrShape", err)
	}
}

func TestPairwise(t *testing.T) {
	// x1: [2, 1, 3, 4] broadcast against x2: [5, 2, 4] -> batch [2, 5]
	x1 := Zeros(2, 1, 3, 4)
	x2 := Zeros(5, 2, 4)
	p, err := Pairwise(x1, x2)
	if err != nil {
		t.Fatalf("Pairwise() error = %v", err)
	}
	if s := p.BatchShape(); len(s) != 2 || s[0] != 2 || s[1] != 5 {
		t.Errorf("BatchShape() = %v, want [2 5]", s)
	}
	if p.NumBatches() != 10 {
		t.Errorf("NumBatches() = %d, want 10", p.NumBatches())
	}
	n, m := p.Rows()
	if n != 3 || m != 2 || p.FeatureDim() != 4 {
		t.Errorf("Rows() = (%d, %d), FeatureDim() = %d, want (3, 2), 4", n, m, p.FeatureDim())
	}

	// Mark distinct blocks and verify broadcast resolution.
	x1.Data()[1*3*4] = 7 // first element of x1 batch index [1, 0]
	x2.Data()[3*2*4] = 9 // first element of x2 batch index [3]
	// Flat batch t = i*5 + j; x1 repeats over j, x2 repeats over i.
	if p.Left(1*5+2)[0] != 7 {
		t.Error("Left block should broadcast over the second batch dim")
	}
	if p.Right(1*5+3)[0] != 9 {
		t.Error("Right block should broadcast over the first batch dim")
	}
}

func TestPairwiseErrors(t *testing.T) {
	tests := []struct {
		name   string
		x1, x2 *Dense
	}{
		{"feature dim mismatch", Zeros(3, 4), Zeros(3, 5)},
		{"non-broadcastable batch", Zeros(2, 3, 4), Zeros(3, 3, 4)},
		{"too few dims", Zeros(4), Zeros(3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Pairwise(tt.x1, tt.x2); !errors.Is(err, ErrShape) {
				t.Errorf("Pairwise() error = %v, want ErrShape", err)
			}
		})
	}
}
