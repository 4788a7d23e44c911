package game

import "math"

// Keys is one frame's polled keyboard state. Edge detection (pause,
// restart, debug toggle) is derived inside Update by comparing against
// the previous frame's set.
type Keys struct {
	Left, Right, Up, Down bool
	Fire                  bool // space; doubles as restart in game over
	Missile               bool
	Pause                 bool
	Debug                 bool
}

// Game owns all session state: entity collections, timers, score, and
// flags. It is mutated only by its own Update pass and never touches
// the window, GL, or audio, so it can be driven headless in tests.
type Game struct {
	Player  Entity
	Bullets []Entity
	Enemies []Entity
	Pickups []Entity

	Score       int
	GameOver    bool
	Paused      bool
	SpreadShot  bool
	MissileAmmo int

	FireCooldown    float64
	MissileCooldown float64

	DebugCollision bool

	Particles *ParticleSystem
	Stars     *Starfield
	Events    *EventBus

	enemySpawnTimer  float64
	pickupSpawnTimer float64
	nextEnemyID      uint64
	rng              *Rand
	prev             Keys
}

func NewGame(seed uint64) *Game {
	g := &Game{
		Particles: NewParticleSystem(MaxParticles, seed^0xBEAD),
		Events:    NewEventBus(),
		rng:       NewRand(seed),
	}
	g.Stars = NewStarfield(g.rng)
	g.resetSession()
	return g
}

// resetSession restores all per-run state to its initial values. The
// starfield, RNG, and event subscriptions survive across restarts.
func (g *Game) resetSession() {
	g.Player = NewEntity(KindPlayer, BaseWidth/2, BaseHeight-30)
	g.Bullets = g.Bullets[:0]
	g.Enemies = g.Enemies[:0]
	g.Pickups = g.Pickups[:0]
	g.Score = 0
	g.GameOver = false
	g.Paused = false
	g.SpreadShot = false
	g.MissileAmmo = StartMissileAmmo
	g.FireCooldown = 0
	g.MissileCooldown = 0
	g.enemySpawnTimer = 0
	g.pickupSpawnTimer = 0
	g.Particles.Clear()
}

// Update advances the simulation by dt seconds. The pass order is:
// input edges, player movement, cooldowns and firing, bullet
// integration, spawn timers, enemy and pickup integration, the
// bullet×enemy collision scan, deferred removal, and particle decay.
func (g *Game) Update(dt float64, keys Keys, vp Viewport) {
	prev := g.prev
	g.prev = keys

	if keys.Debug && !prev.Debug {
		g.DebugCollision = !g.DebugCollision
	}
	if keys.Pause && !prev.Pause && !g.GameOver {
		g.Paused = !g.Paused
	}

	if g.GameOver {
		if keys.Fire && !prev.Fire {
			g.resetSession()
		}
		return
	}
	if g.Paused {
		return
	}

	g.movePlayer(dt, keys, vp)

	g.FireCooldown = math.Max(0, g.FireCooldown-dt)
	g.MissileCooldown = math.Max(0, g.MissileCooldown-dt)
	if keys.Fire && g.FireCooldown == 0 {
		g.shoot(vp)
		g.FireCooldown = FireCooldownTime
	}
	if keys.Missile && g.MissileCooldown == 0 {
		g.launchMissile(vp)
		g.MissileCooldown = MissileCooldownTime
	}

	g.updateBullets(dt, vp)

	g.pickupSpawnTimer += dt
	if g.pickupSpawnTimer >= PickupSpawnInterval {
		g.spawnPickup()
		g.pickupSpawnTimer = 0
	}
	g.enemySpawnTimer += dt
	if g.enemySpawnTimer >= EnemySpawnInterval {
		g.spawnEnemy()
		g.enemySpawnTimer = 0
	}

	g.updateEnemies(dt, vp)
	g.Stars.Update(dt)
	g.resolveBulletHits(vp)
	g.Particles.Update(dt)
	g.updatePickups(dt, vp)
}

func (g *Game) movePlayer(dt float64, keys Keys, vp Viewport) {
	speed := PlayerSpeedRatio * vp.W
	var dx, dy float64
	if keys.Left {
		dx -= speed
	}
	if keys.Right {
		dx += speed
	}
	if keys.Up {
		dy -= speed
	}
	if keys.Down {
		dy += speed
	}
	// Clamp so the full sprite stays inside the playfield.
	g.Player.X = clampF(g.Player.X+dx*dt, g.Player.W/2, BaseWidth-g.Player.W/2)
	g.Player.Y = clampF(g.Player.Y+dy*dt, g.Player.H/2, BaseHeight-g.Player.H/2)
}

// shoot fires the primary weapon from the player's nose: one straight
// bullet, or five spread bullets at fixed angular offsets once the
// spread pickup has been collected.
func (g *Game) shoot(vp Viewport) {
	x := g.Player.X
	y := g.Player.Y - g.Player.H/2

	muzzle := Palette.Yellow
	if g.SpreadShot {
		muzzle = Palette.Orange
	}
	g.Particles.Burst(x, y, muzzle, 0.5, vp.Min())
	g.Events.Emit(Event{Type: EventShot, X: x, Y: y})

	speed := BulletSpeedRatio * vp.H
	if g.SpreadShot {
		for _, deg := range [5]float64{-30, -15, 0, 15, 30} {
			rad := deg * math.Pi / 180
			b := NewEntity(KindSpreadShot, x, y)
			b.VX = math.Sin(rad) * speed
			b.VY = -math.Cos(rad) * speed
			b.Rotation = rad
			g.Bullets = append(g.Bullets, b)
		}
	} else {
		b := NewEntity(KindBullet, x, y)
		b.VY = -speed
		g.Bullets = append(g.Bullets, b)
	}
}

// launchMissile fires a guided missile at the enemy currently nearest
// the player. The lock is chosen once at launch and never re-evaluated.
// No enemies or no ammo makes this a no-op.
func (g *Game) launchMissile(vp Viewport) {
	if len(g.Enemies) == 0 || g.MissileAmmo <= 0 {
		return
	}

	best := 0
	bestDist := math.MaxFloat64
	for i := range g.Enemies {
		d := math.Hypot(g.Enemies[i].X-g.Player.X, g.Enemies[i].Y-g.Player.Y)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}

	m := NewEntity(KindGuidedMissile, g.Player.X, g.Player.Y-g.Player.H/2)
	m.TargetID = g.Enemies[best].ID
	m.Rotation = -math.Pi / 2 // straight up until the first steer
	m.VX = math.Cos(m.Rotation) * MissileSpeed * vp.ScaleX
	m.VY = math.Sin(m.Rotation) * MissileSpeed * vp.ScaleY
	g.Bullets = append(g.Bullets, m)
	g.Events.Emit(Event{Type: EventShot, X: m.X, Y: m.Y})
	g.MissileAmmo--
}

func (g *Game) updateBullets(dt float64, vp Viewport) {
	for i := range g.Bullets {
		b := &g.Bullets[i]
		if b.Kind == KindGuidedMissile {
			if t := g.findEnemy(b.TargetID); t != nil {
				b.SteerToward(t.X, t.Y, dt, vp)
			}
			// A lost target means fly straight on the last heading.
		}
		b.X += b.VX * dt
		b.Y += b.VY * dt
	}
	g.Bullets = retainOnPlayfield(g.Bullets)
}

// findEnemy resolves an enemy ID to the live entity, or nil if the
// enemy has been removed.
func (g *Game) findEnemy(id uint64) *Entity {
	if id == 0 {
		return nil
	}
	for i := range g.Enemies {
		if g.Enemies[i].ID == id {
			return &g.Enemies[i]
		}
	}
	return nil
}

func (g *Game) spawnEnemy() {
	st := KindEnemy.Stats()
	e := NewEntity(KindEnemy, g.rng.RangeF(st.W/2, BaseWidth-st.W/2), -50)
	g.nextEnemyID++
	e.ID = g.nextEnemyID
	g.Enemies = append(g.Enemies, e)
}

// spawnPickup drops either missile ammo or the spread-shot powerup,
// chosen by a coin flip.
func (g *Game) spawnPickup() {
	kind := KindMissileAmmo
	if g.rng.Coin() {
		kind = KindSpreadAmmo
	}
	st := kind.Stats()
	g.Pickups = append(g.Pickups, NewEntity(kind, g.rng.RangeF(st.W/2, BaseWidth-st.W/2), -30))
}

func (g *Game) updateEnemies(dt float64, vp Viewport) {
	speed := EnemySpeedRatio * vp.H
	for i := range g.Enemies {
		e := &g.Enemies[i]
		e.Y += speed * dt
		if !g.GameOver && Intersects(e, &g.Player, vp) {
			g.GameOver = true
			g.Events.Emit(Event{Type: EventGameOver, X: g.Player.X, Y: g.Player.Y})
		}
	}
	live := g.Enemies[:0]
	for i := range g.Enemies {
		if g.Enemies[i].Y < BaseHeight {
			live = append(live, g.Enemies[i])
		}
	}
	g.Enemies = live
}

func (g *Game) updatePickups(dt float64, vp Viewport) {
	speed := EnemySpeedRatio * vp.H
	for i := range g.Pickups {
		g.Pickups[i].Y += speed * dt
	}
	live := g.Pickups[:0]
	for i := range g.Pickups {
		if g.Pickups[i].Y < BaseHeight {
			live = append(live, g.Pickups[i])
		}
	}
	g.Pickups = live

	var collected map[int]struct{}
	for i := range g.Pickups {
		p := &g.Pickups[i]
		if !Intersects(p, &g.Player, vp) {
			continue
		}
		if collected == nil {
			collected = make(map[int]struct{})
		}
		collected[i] = struct{}{}

		switch p.Kind {
		case KindMissileAmmo:
			g.MissileAmmo += AmmoPerPickup
			g.Particles.Burst(p.X, p.Y, Palette.Cyan, 1.0, vp.Min())
			g.Events.Emit(Event{Type: EventPickup, X: p.X, Y: p.Y, Data: AmmoPerPickup})
		case KindSpreadAmmo:
			g.SpreadShot = true
			g.Particles.Burst(p.X, p.Y, Palette.Orange, 1.0, vp.Min())
			g.Events.Emit(Event{Type: EventPickup, X: p.X, Y: p.Y})
		}
	}
	g.Pickups = removeIndices(g.Pickups, collected)
}

func retainOnPlayfield(entities []Entity) []Entity {
	live := entities[:0]
	for i := range entities {
		if entities[i].onPlayfield() {
			live = append(live, entities[i])
		}
	}
	return live
}
