package game

import "math"

// Kind tags every game object. Behaviour and per-kind constants hang
// off this tag rather than off subtypes so the radius/colour/sprite
// mapping stays centralized and exhaustive.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemy
	KindGuidedMissile
	KindMissileAmmo
	KindSpreadShot
	KindSpreadAmmo

	kindCount
)

// SpriteID selects which loaded texture a kind is drawn with.
type SpriteID uint8

const (
	SpritePlayer SpriteID = iota
	SpriteBullet

	spriteCount
)

// KindStats holds the per-kind constants. RadiusFrac is the hit-circle
// radius as a fraction of the entity width, tuned to match the sprite
// silhouettes tighter than the bounding box.
type KindStats struct {
	W, H       float64 // logical size
	RadiusFrac float64
	Score      int // points awarded when this kind destroys an enemy
	Sprite     SpriteID
	Circle     RGB // collision debug overlay colour
}

var kindStats = [kindCount]KindStats{
	KindPlayer:        {W: 50, H: 60, RadiusFrac: 0.4, Sprite: SpritePlayer, Circle: Palette.Green},
	KindBullet:        {W: 5, H: 20, RadiusFrac: 0.8, Score: ScoreBulletHit, Sprite: SpriteBullet, Circle: Palette.Yellow},
	KindEnemy:         {W: 40, H: 40, RadiusFrac: 0.45, Sprite: SpritePlayer, Circle: Palette.Red},
	KindGuidedMissile: {W: 8, H: 24, RadiusFrac: 1.0, Score: ScoreMissileHit, Sprite: SpriteBullet, Circle: Palette.Purple},
	KindMissileAmmo:   {W: 20, H: 20, RadiusFrac: 0.6, Sprite: SpriteBullet, Circle: Palette.Cyan},
	KindSpreadShot:    {W: 5, H: 20, RadiusFrac: 0.8, Score: ScoreBulletHit, Sprite: SpriteBullet, Circle: Palette.Orange},
	KindSpreadAmmo:    {W: 25, H: 25, RadiusFrac: 0.6, Sprite: SpriteBullet, Circle: Palette.Orange},
}

// Stats returns the constant table entry for a kind.
func (k Kind) Stats() KindStats { return kindStats[k] }

// Entity is one game object. X,Y is the centre in logical coordinates.
// Velocity is in logical px/s, already scaled by the viewport at the
// time it was set so speeds track the window size.
type Entity struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	Rotation float64
	Kind     Kind

	// ID is assigned to enemies only; it is a stable identifier so a
	// guided missile's back-reference cannot dangle across removals.
	ID uint64

	// TargetID is the locked enemy ID for guided missiles. Zero means
	// no target: the missile flies straight on its current heading.
	TargetID uint64
}

// NewEntity creates an entity of the given kind centred at x, y with
// the kind's default size. Enemies face downward.
func NewEntity(kind Kind, x, y float64) Entity {
	st := kindStats[kind]
	e := Entity{X: x, Y: y, W: st.W, H: st.H, Kind: kind}
	if kind == KindEnemy {
		e.Rotation = math.Pi
	}
	return e
}

// Radius returns the logical hit-circle radius.
func (e *Entity) Radius() float64 {
	return e.W * kindStats[e.Kind].RadiusFrac
}

// SteerToward turns a guided missile toward (tx, ty). The turn applied
// is a fraction of the remaining angle error rather than a fixed
// angular speed, then velocity is realigned with the new heading.
func (e *Entity) SteerToward(tx, ty, dt float64, vp Viewport) {
	dx := tx - e.X
	dy := ty - e.Y
	if dx == 0 && dy == 0 {
		return
	}
	err := angDiff(e.Rotation, math.Atan2(dy, dx))
	e.Rotation += err * math.Min(1, MissileTurnRate*dt)
	e.VX = math.Cos(e.Rotation) * MissileSpeed * vp.ScaleX
	e.VY = math.Sin(e.Rotation) * MissileSpeed * vp.ScaleY
}

// onPlayfield reports whether any part of the entity is still within
// the logical playfield. Entities that leave are dropped on the next
// retain pass.
func (e *Entity) onPlayfield() bool {
	return e.X > -e.W && e.X < BaseWidth+e.W &&
		e.Y > -e.H && e.Y < BaseHeight+e.H
}
