package game

// Logical playfield dimensions (in logical pixels). All simulation runs
// in this fixed coordinate space; the Viewport scales it to the physical
// framebuffer at the collision and draw boundaries.
const (
	BaseWidth  = 1024.0
	BaseHeight = 768.0
)

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
	MinWindowW   = 400
	MinWindowH   = 300
)

// Movement speeds in logical px/s, expressed relative to the window
// dimension they scale with.
const (
	PlayerSpeedRatio = 300.0 / BaseWidth
	BulletSpeedRatio = 480.0 / BaseHeight
	EnemySpeedRatio  = 120.0 / BaseHeight

	MissileSpeed    = 240.0
	MissileTurnRate = 6.0 // fraction of remaining angle error per second
)

// Cooldowns and spawn intervals (seconds).
const (
	FireCooldownTime    = 0.25
	MissileCooldownTime = 1.0
	EnemySpawnInterval  = 1.0
	PickupSpawnInterval = 15.0
)

// Missile ammo.
const (
	StartMissileAmmo = 5
	AmmoPerPickup    = 3
)

// Particles.
const (
	MaxParticles     = 1000
	BurstParticles   = 10
	ParticleLifetime = 0.5
	ParticleSpeed    = 50.0
	ParticleSize     = 2.0
)

// Background starfield.
const (
	StarCount       = 100
	StarScrollSpeed = 30.0
)

// Scoring.
const (
	ScoreBulletHit  = 10
	ScoreMissileHit = 20
)

// ResourceDir is the fixed asset directory, relative to the working
// directory the game is launched from.
const ResourceDir = "resources"

// Font atlas layout (font_alt.png: 32 cols x 4 rows, ASCII 0-127).
const (
	FontCellW  = 18
	FontCellH  = 32
	FontCols   = 32
	FontRows   = 4
	FontAtlasW = FontCellW * FontCols // 576
	FontAtlasH = FontCellH * FontRows // 128
)
