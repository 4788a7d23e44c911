package game

// Viewport converts logical playfield coordinates to physical window
// pixels. It is rebuilt from the framebuffer size every frame, so a
// window resize takes effect on the next update.
type Viewport struct {
	W, H           float64 // physical framebuffer size
	ScaleX, ScaleY float64
}

func NewViewport(w, h float64) Viewport {
	return Viewport{
		W:      w,
		H:      h,
		ScaleX: w / BaseWidth,
		ScaleY: h / BaseHeight,
	}
}

// Point scales a logical position to physical pixels.
func (v Viewport) Point(x, y float64) (float64, float64) {
	return x * v.ScaleX, y * v.ScaleY
}

// Size scales a logical extent to physical pixels.
func (v Viewport) Size(w, h float64) (float64, float64) {
	return w * v.ScaleX, h * v.ScaleY
}

// Min returns the smaller axis scale. Radii and particle sizes use it
// so circles stay circular under non-uniform window aspect ratios.
func (v Viewport) Min() float64 {
	if v.ScaleX < v.ScaleY {
		return v.ScaleX
	}
	return v.ScaleY
}
