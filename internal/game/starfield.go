package game

// Star is one background dot in logical coordinates.
type Star struct {
	X, Y float64
	Size float64
}

// Starfield is the scrolling background decoration. It keeps scrolling
// through pause and game over.
type Starfield struct {
	Stars []Star
}

func NewStarfield(rng *Rand) *Starfield {
	s := &Starfield{Stars: make([]Star, StarCount)}
	for i := range s.Stars {
		s.Stars[i] = Star{
			X:    rng.RangeF(0, BaseWidth),
			Y:    rng.RangeF(0, BaseHeight),
			Size: rng.RangeF(1, 3),
		}
	}
	return s
}

func (s *Starfield) Update(dt float64) {
	for i := range s.Stars {
		s.Stars[i].Y += StarScrollSpeed * dt
		if s.Stars[i].Y > BaseHeight {
			s.Stars[i].Y = 0
		}
	}
}

// RenderData appends the stars as white point sprites.
func (s *Starfield) RenderData(buf []float32, vp Viewport) []float32 {
	m := vp.Min()
	for i := range s.Stars {
		sx, sy := vp.Point(s.Stars[i].X, s.Stars[i].Y)
		buf = append(buf,
			float32(sx), float32(sy), float32(s.Stars[i].Size*m),
			1, 1, 1, 1, 0)
	}
	return buf
}
