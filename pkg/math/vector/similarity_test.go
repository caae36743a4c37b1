package vector

import (
	"math"
	"testing"
)

func TestTanimoto(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected float64
	}{
		{
			name:     "identical bits",
			a:        []float64{1, 0, 1, 0},
			b:        []float64{1, 0, 1, 0},
			expected: 1.0,
		},
		{
			name:     "disjoint bits",
			a:        []float64{1, 1, 0, 0},
			b:        []float64{0, 0, 1, 1},
			expected: 0.0,
		},
		{
			name:     "half overlap",
			a:        []float64{1, 1, 0, 0},
			b:        []float64{1, 0, 0, 0},
			expected: 0.5,
		},
		{
			name:     "count vectors",
			a:        []float64{2, 1},
			b:        []float64{1, 1},
			expected: 3.0 / (5 + 2 - 3),
		},
		{
			name:     "length mismatch",
			a:        []float64{1, 0},
			b:        []float64{1},
			expected: 0,
		},
		{
			name:     "empty",
			a:        []float64{},
			b:        []float64{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tanimoto(tt.a, tt.b); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Tanimoto() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTanimotoZeroVectors(t *testing.T) {
	if got := Tanimoto([]float64{0, 0}, []float64{0, 0}); !math.IsNaN(got) {
		t.Errorf("Tanimoto() of zero vectors = %v, want NaN", got)
	}
}

func TestTanimotoFloat32(t *testing.T) {
	a := []float32{1, 1, 0, 0}
	b := []float32{1, 0, 0, 0}
	if got := TanimotoFloat32(a, b); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("TanimotoFloat32() = %v, want 0.5", got)
	}
}

func TestTanimotoDistance(t *testing.T) {
	a := []float64{1, 1, 0, 0}
	b := []float64{1, 0, 0, 0}
	if got := TanimotoDistance(a, b); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("TanimotoDistance() = %v, want 0.5", got)
	}
}
