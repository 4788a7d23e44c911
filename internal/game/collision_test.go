package game

import "testing"

func TestIntersects(t *testing.T) {
	vp := NewViewport(1024, 768)
	// bullet radius 4, enemy radius 18: overlap under distance 22
	tests := []struct {
		name string
		dist float64
		want bool
	}{
		{"well inside", 10, true},
		{"just inside", 21.9, true},
		{"exactly touching", 22, false},
		{"apart", 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewEntity(KindBullet, 500, 400)
			e := NewEntity(KindEnemy, 500+tt.dist, 400)
			if got := Intersects(&b, &e, vp); got != tt.want {
				t.Errorf("Intersects at distance %v = %v, want %v", tt.dist, got, tt.want)
			}
			if got := Intersects(&e, &b, vp); got != tt.want {
				t.Errorf("Intersects not symmetric at distance %v", tt.dist)
			}
		})
	}
}

func TestIntersectsScalesWithViewport(t *testing.T) {
	// Logical distance 21 overlaps at native scale. At half scale both
	// the centre distance and the radii halve, so it still overlaps.
	b := NewEntity(KindBullet, 500, 400)
	e := NewEntity(KindEnemy, 521, 400)
	for _, vp := range []Viewport{NewViewport(1024, 768), NewViewport(512, 384)} {
		if !Intersects(&b, &e, vp) {
			t.Errorf("expected overlap at viewport %vx%v", vp.W, vp.H)
		}
	}
}

func TestResolveBulletHits(t *testing.T) {
	vp := NewViewport(1024, 768)

	t.Run("bullet kills one enemy", func(t *testing.T) {
		g := NewGame(1)
		g.Bullets = append(g.Bullets, NewEntity(KindBullet, 500, 400))
		g.Enemies = append(g.Enemies, NewEntity(KindEnemy, 500, 400))

		var explosions int
		g.Events.Subscribe(EventExplosion, func(Event) { explosions++ })

		g.resolveBulletHits(vp)
		if len(g.Bullets) != 0 {
			t.Errorf("bullets left = %d, want 0", len(g.Bullets))
		}
		if len(g.Enemies) != 0 {
			t.Errorf("enemies left = %d, want 0", len(g.Enemies))
		}
		if g.Score != ScoreBulletHit {
			t.Errorf("score = %d, want %d", g.Score, ScoreBulletHit)
		}
		if explosions != 1 {
			t.Errorf("explosion events = %d, want 1", explosions)
		}
		if len(g.Particles.P) == 0 {
			t.Error("expected an explosion burst")
		}
	})

	t.Run("one bullet cannot kill two enemies", func(t *testing.T) {
		g := NewGame(1)
		g.Bullets = append(g.Bullets, NewEntity(KindBullet, 500, 400))
		g.Enemies = append(g.Enemies,
			NewEntity(KindEnemy, 500, 400),
			NewEntity(KindEnemy, 505, 400))

		g.resolveBulletHits(vp)
		if len(g.Enemies) != 1 {
			t.Errorf("enemies left = %d, want 1", len(g.Enemies))
		}
		if g.Score != ScoreBulletHit {
			t.Errorf("score = %d, want %d", g.Score, ScoreBulletHit)
		}
	})

	t.Run("one enemy cannot die to two bullets", func(t *testing.T) {
		g := NewGame(1)
		g.Bullets = append(g.Bullets,
			NewEntity(KindBullet, 500, 400),
			NewEntity(KindBullet, 502, 400))
		g.Enemies = append(g.Enemies, NewEntity(KindEnemy, 500, 400))

		g.resolveBulletHits(vp)
		if len(g.Bullets) != 1 {
			t.Errorf("bullets left = %d, want 1", len(g.Bullets))
		}
		if g.Score != ScoreBulletHit {
			t.Errorf("score = %d, want %d", g.Score, ScoreBulletHit)
		}
	})

	t.Run("missile scores more", func(t *testing.T) {
		g := NewGame(1)
		g.Bullets = append(g.Bullets, NewEntity(KindGuidedMissile, 500, 400))
		g.Enemies = append(g.Enemies, NewEntity(KindEnemy, 500, 400))

		g.resolveBulletHits(vp)
		if g.Score != ScoreMissileHit {
			t.Errorf("score = %d, want %d", g.Score, ScoreMissileHit)
		}
	})

	t.Run("no pairs no change", func(t *testing.T) {
		g := NewGame(1)
		g.Bullets = append(g.Bullets, NewEntity(KindBullet, 100, 100))
		g.Enemies = append(g.Enemies, NewEntity(KindEnemy, 900, 700))

		g.resolveBulletHits(vp)
		if len(g.Bullets) != 1 || len(g.Enemies) != 1 || g.Score != 0 {
			t.Errorf("state changed without any overlap")
		}
	})
}

func TestRemoveIndices(t *testing.T) {
	mk := func(n int) []Entity {
		es := make([]Entity, n)
		for i := range es {
			es[i] = NewEntity(KindEnemy, float64(i), 0)
		}
		return es
	}

	t.Run("nil set is a no-op", func(t *testing.T) {
		es := mk(3)
		if got := removeIndices(es, nil); len(got) != 3 {
			t.Errorf("len = %d, want 3", len(got))
		}
	})

	t.Run("removes highest first", func(t *testing.T) {
		es := mk(5)
		dead := map[int]struct{}{1: {}, 3: {}}
		got := removeIndices(es, dead)
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		want := []float64{0, 2, 4}
		for i, x := range want {
			if got[i].X != x {
				t.Errorf("survivor %d has X = %v, want %v", i, got[i].X, x)
			}
		}
	})
}
