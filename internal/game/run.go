package game

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// RunDesktop opens the window and runs the game until the window
// closes. Resource loading failures panic; a missing audio device only
// mutes the game.
func RunDesktop() {
	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	bank, err := LoadSounds(ResourceDir)
	if err != nil {
		panic(err)
	}
	if err := InitAudio(bank); err != nil {
		fmt.Fprintf(os.Stderr, "audio disabled: %v\n", err)
	}

	renderer, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	defer renderer.Destroy()
	if err := renderer.LoadSprites(ResourceDir); err != nil {
		panic(err)
	}

	game := NewGame(gameSeed())
	game.Events.Subscribe(EventShot, func(Event) { PlayShoot() })
	game.Events.Subscribe(EventExplosion, func(Event) { PlayExplosion() })
	game.Events.Subscribe(EventGameOver, func(Event) { PlayExplosion() })

	last := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		dt := math.Min(now.Sub(last).Seconds(), 0.1)
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		fw, fh := window.GetFramebufferSize()
		vp := NewViewport(float64(fw), float64(fh))

		game.Update(dt, ReadKeys(window), vp)
		drawFrame(renderer, game, vp)
		window.SwapBuffers()
	}
}

func drawFrame(r *Renderer, g *Game, vp Viewport) {
	r.BeginFrame(vp)

	r.pointBuf = g.Stars.RenderData(r.pointBuf[:0], vp)
	r.DrawPoints(r.pointBuf)

	for i := range g.Pickups {
		r.DrawSprite(&g.Pickups[i])
	}
	for i := range g.Bullets {
		r.DrawSprite(&g.Bullets[i])
	}
	for i := range g.Enemies {
		r.DrawSprite(&g.Enemies[i])
	}
	if !g.GameOver {
		r.DrawSprite(&g.Player)
	}

	r.pointBuf = g.Particles.RenderData(r.pointBuf[:0], vp)
	r.DrawPoints(r.pointBuf)

	if g.DebugCollision {
		buf := r.pointBuf[:0]
		buf = RingData(buf, &g.Player, vp)
		for i := range g.Bullets {
			buf = RingData(buf, &g.Bullets[i], vp)
		}
		for i := range g.Enemies {
			buf = RingData(buf, &g.Enemies[i], vp)
		}
		for i := range g.Pickups {
			buf = RingData(buf, &g.Pickups[i], vp)
		}
		r.pointBuf = buf
		r.DrawRings(buf)
	}

	r.RenderHUD(g, vp)
	r.FlushText()
}

// gameSeed reads SHOOTER_SEED for reproducible runs, falling back to
// the clock.
func gameSeed() uint64 {
	if v := os.Getenv("SHOOTER_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			return seed
		}
		fmt.Fprintf(os.Stderr, "ignoring invalid SHOOTER_SEED %q\n", v)
	}
	return uint64(time.Now().UnixNano())
}
