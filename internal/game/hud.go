package game

import "fmt"

// RenderHUD queues the text overlay: score, missile count, spread-shot
// status, and the state banners. Coordinates are physical pixels; the
// font scales with the smaller viewport axis so it stays readable on
// small windows.
func (r *Renderer) RenderHUD(g *Game, vp Viewport) {
	scale := float32(vp.Min())
	if scale < 0.5 {
		scale = 0.5
	}
	lineH := float32(FontCellH) * scale
	margin := 10 * scale

	r.DrawString(fmt.Sprintf("SCORE: %d", g.Score), margin, margin, scale, Palette.White, 1)
	r.DrawString(fmt.Sprintf("MISSILES: %d", g.MissileAmmo), margin, margin+lineH, scale, Palette.Cyan, 1)
	if g.SpreadShot {
		r.DrawString("SPREAD SHOT", margin, margin+2*lineH, scale, Palette.Orange, 1)
	}

	cx := float32(vp.W) / 2
	cy := float32(vp.H) / 2
	center := func(s string, y float32, col RGB) {
		r.DrawString(s, cx-TextWidth(s, scale)/2, y, scale, col, 1)
	}

	switch {
	case g.GameOver:
		center("GAME OVER!", cy-lineH, Palette.Red)
		center("Press SPACE to restart", cy+lineH/2, Palette.White)
	case g.Paused:
		center("PAUSED", cy-lineH, Palette.Yellow)
		center("Press P to continue", cy+lineH/2, Palette.White)
	}
}
