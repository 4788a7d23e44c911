package game

import "testing"

func TestStarfieldScrollsAndWraps(t *testing.T) {
	s := NewStarfield(NewRand(5))
	if len(s.Stars) != StarCount {
		t.Fatalf("star count = %d, want %d", len(s.Stars), StarCount)
	}

	s.Stars[0].Y = BaseHeight - 1
	s.Update(1.0)
	if s.Stars[0].Y != 0 {
		t.Errorf("star did not wrap: Y = %v", s.Stars[0].Y)
	}
	for i, st := range s.Stars {
		if st.Y < 0 || st.Y > BaseHeight {
			t.Errorf("star %d left the playfield: Y = %v", i, st.Y)
		}
	}
}

func TestStarfieldRenderData(t *testing.T) {
	s := NewStarfield(NewRand(5))
	buf := s.RenderData(nil, NewViewport(1024, 768))
	if len(buf) != StarCount*8 {
		t.Errorf("buffer length = %d, want %d", len(buf), StarCount*8)
	}
}
