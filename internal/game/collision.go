package game

import (
	"math"
	"sort"
)

// Intersects performs the circle-overlap test between two entities in
// physical space: centres are scaled by the viewport and radii by the
// smaller axis scale. Symmetric by construction.
func Intersects(a, b *Entity, vp Viewport) bool {
	ax, ay := vp.Point(a.X, a.Y)
	bx, by := vp.Point(b.X, b.Y)
	s := vp.Min()
	return math.Hypot(ax-bx, ay-by) < (a.Radius()+b.Radius())*s
}

// resolveBulletHits scans every bullet×enemy pair. A bullet or enemy
// already marked destroyed this frame is skipped, so one bullet cannot
// score on two enemies and one enemy cannot die to two bullets in the
// same pass. Hits add score, emit an explosion event, and queue a
// burst at the enemy centre. Removal happens after the whole scan.
func (g *Game) resolveBulletHits(vp Viewport) {
	var deadBullets, deadEnemies map[int]struct{}

	for bi := range g.Bullets {
		if _, dead := deadBullets[bi]; dead {
			continue
		}
		for ei := range g.Enemies {
			if _, dead := deadEnemies[ei]; dead {
				continue
			}
			if !Intersects(&g.Bullets[bi], &g.Enemies[ei], vp) {
				continue
			}
			if deadBullets == nil {
				deadBullets = make(map[int]struct{})
				deadEnemies = make(map[int]struct{})
			}
			deadBullets[bi] = struct{}{}
			deadEnemies[ei] = struct{}{}

			points := g.Bullets[bi].Kind.Stats().Score
			g.Score += points
			e := &g.Enemies[ei]
			g.Particles.Burst(e.X, e.Y, Palette.Orange, 1.0, vp.Min())
			g.Events.Emit(Event{Type: EventExplosion, X: e.X, Y: e.Y, Data: points})
			break
		}
	}

	g.Bullets = removeIndices(g.Bullets, deadBullets)
	g.Enemies = removeIndices(g.Enemies, deadEnemies)
}

// removeIndices deletes the given indices from a slice, highest index
// first so the remaining indices stay valid during removal.
func removeIndices(entities []Entity, dead map[int]struct{}) []Entity {
	if len(dead) == 0 {
		return entities
	}
	idx := make([]int, 0, len(dead))
	for i := range dead {
		idx = append(idx, i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(idx)))
	for _, i := range idx {
		entities = append(entities[:i], entities[i+1:]...)
	}
	return entities
}
