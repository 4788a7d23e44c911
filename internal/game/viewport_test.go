package game

import "testing"

func TestViewportScaling(t *testing.T) {
	tests := []struct {
		name       string
		w, h       float64
		x, y       float64
		wantX      float64
		wantY      float64
		wantMinScl float64
	}{
		{"native size", 1024, 768, 512, 384, 512, 384, 1.0},
		{"double size", 2048, 1536, 512, 384, 1024, 768, 2.0},
		{"half size", 512, 384, 100, 200, 50, 100, 0.5},
		{"wide window", 2048, 768, 512, 384, 1024, 384, 1.0},
		{"tall window", 1024, 1536, 512, 384, 512, 768, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := NewViewport(tt.w, tt.h)
			gotX, gotY := vp.Point(tt.x, tt.y)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("Point(%v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, gotX, gotY, tt.wantX, tt.wantY)
			}
			if got := vp.Min(); got != tt.wantMinScl {
				t.Errorf("Min() = %v, want %v", got, tt.wantMinScl)
			}
		})
	}
}

func TestViewportSize(t *testing.T) {
	vp := NewViewport(2048, 384)
	w, h := vp.Size(50, 60)
	if w != 100 {
		t.Errorf("width scaled to %v, want 100", w)
	}
	if h != 30 {
		t.Errorf("height scaled to %v, want 30", h)
	}
}
