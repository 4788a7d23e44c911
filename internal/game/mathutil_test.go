package game

import (
	"math"
	"testing"
)

func TestAngDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"zero", 0, 0, 0},
		{"quarter turn", 0, math.Pi / 2, math.Pi / 2},
		{"negative quarter", math.Pi / 2, 0, -math.Pi / 2},
		{"wraps short way", -3, 3, 6 - 2*math.Pi},
		{"half turn", -math.Pi / 2, math.Pi / 2, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := angDiff(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("angDiff(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAngDiffRange(t *testing.T) {
	for a := -10.0; a < 10; a += 0.7 {
		for b := -10.0; b < 10; b += 0.9 {
			d := angDiff(a, b)
			if d <= -math.Pi || d > math.Pi {
				t.Fatalf("angDiff(%v, %v) = %v outside (-pi, pi]", a, b, d)
			}
		}
	}
}

func TestClampF(t *testing.T) {
	if got := clampF(5, 0, 10); got != 5 {
		t.Errorf("clampF(5,0,10) = %v", got)
	}
	if got := clampF(-1, 0, 10); got != 0 {
		t.Errorf("clampF(-1,0,10) = %v", got)
	}
	if got := clampF(11, 0, 10); got != 10 {
		t.Errorf("clampF(11,0,10) = %v", got)
	}
}

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(9), NewRand(9)
	for i := 0; i < 100; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestRandRangeF(t *testing.T) {
	r := NewRand(3)
	for i := 0; i < 1000; i++ {
		v := r.RangeF(2, 5)
		if v < 2 || v >= 5 {
			t.Fatalf("RangeF(2,5) = %v out of range", v)
		}
	}
	if got := r.RangeF(4, 4); got != 4 {
		t.Errorf("degenerate range = %v, want 4", got)
	}
}

func TestRandZeroSeed(t *testing.T) {
	r := NewRand(0)
	if r.NextU64() == 0 {
		t.Error("zero seed must still produce a nonzero stream")
	}
}
