package game

import "math"

// Particle is a short-lived visual decoration. Velocity is in physical
// px/s (scaled at spawn time); positions are logical like everything
// else.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Col     RGB
	Alpha   float64 // base alpha, faded by the remaining-life fraction
}

// LifeFraction returns remaining life as a 0..1 fraction.
func (p *Particle) LifeFraction() float64 {
	return clampF(p.Life/p.MaxLife, 0, 1)
}

// ParticleSystem is a bounded pool. Bursts that would exceed Max are
// silently truncated; existing particles are never evicted.
type ParticleSystem struct {
	Max int
	P   []Particle
	rng *Rand
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
}

// Burst spawns up to BurstParticles particles at a logical position.
// Speed and size bands scale with the current display scale factor.
func (ps *ParticleSystem) Burst(x, y float64, col RGB, alpha, scale float64) {
	free := ps.Max - len(ps.P)
	n := BurstParticles
	if n > free {
		n = free
	}
	baseSpeed := ParticleSpeed * scale
	baseSize := ParticleSize * scale
	for i := 0; i < n; i++ {
		ang := ps.rng.RangeF(0, 2*math.Pi)
		spd := ps.rng.RangeF(baseSpeed*0.5, baseSpeed)
		ps.P = append(ps.P, Particle{
			X: x, Y: y,
			VX:      math.Cos(ang) * spd,
			VY:      math.Sin(ang) * spd,
			Life:    ParticleLifetime,
			MaxLife: ParticleLifetime,
			Size:    ps.rng.RangeF(baseSize*0.5, baseSize*1.5),
			Col:     col,
			Alpha:   alpha,
		})
	}
}

// Update integrates positions, decrements lifetimes, and filters out
// expired particles in place.
func (ps *ParticleSystem) Update(dt float64) {
	live := ps.P[:0]
	for i := range ps.P {
		p := ps.P[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Life -= dt
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	ps.P = live
}

// RenderData appends point sprites to buf in the renderer's
// [x, y, size, r, g, b, a, rotation] layout. Alpha fades and size
// shrinks with the remaining-life fraction.
func (ps *ParticleSystem) RenderData(buf []float32, vp Viewport) []float32 {
	for i := range ps.P {
		p := &ps.P[i]
		frac := p.LifeFraction()
		a := p.Alpha * math.Min(1, frac)
		if a <= 0 {
			continue
		}
		sx, sy := vp.Point(p.X, p.Y)
		size := p.Size * math.Max(frac, 0.1)
		buf = append(buf,
			float32(sx), float32(sy), float32(size),
			float32(p.Col.R)/255, float32(p.Col.G)/255, float32(p.Col.B)/255,
			float32(a), 0)
	}
	return buf
}
