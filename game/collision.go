package game

import (
	"math"
	"strconv"
)

// SweptTouch reports whether a bottom edge that moved down by travel this
// tick crossed top. Testing the previous position as well stops fast items
// from passing through the catcher between frames.
func SweptTouch(bottom, travel, top float64) bool {
	return bottom >= top && bottom-travel < top
}

// HorizontalOverlap returns the length of the intersection of [ax, ax+aw)
// and [bx, bx+bw), or 0 when they are disjoint.
func HorizontalOverlap(ax, aw, bx, bw float64) float64 {
	return math.Max(0, math.Min(ax+aw, bx+bw)-math.Max(ax, bx))
}

// touchesCatcher applies both collision tests: the swept vertical crossing
// and at least half of the item's width over the catcher.
func (g *Game) touchesCatcher(it *FallingEntity, dt float64) bool {
	travel := it.Speed * g.speed * dt
	if !SweptTouch(it.Bottom(), travel, g.Catcher.Top()) {
		return false
	}
	overlap := HorizontalOverlap(it.X, it.Width, g.Catcher.X, g.Catcher.Width)
	return overlap >= it.Width/2
}

// checkCollisions resolves catches, hazard hits and misses. Items are visited
// from the tail so Release never skips or revisits one. A hook that resets
// the run empties the store, so the rest of the pass is skipped.
func (g *Game) checkCollisions(dt float64) {
	gen := g.generation
	g.Items.ForEachReverse(func(it *FallingEntity, i int) {
		if g.generation != gen {
			return
		}
		if g.touchesCatcher(it, dt) {
			if it.Category == Hazard {
				g.hitHazard(it)
				return
			}
			g.catchItem(it)
			g.Items.Release(i)
			return
		}

		if it.Category == Collectible && it.Y > g.viewport.Height {
			g.missItem(it)
			g.Items.Release(i)
		}
	})
}

// hitHazard ends the run. The hazard stays in the store so it is drawn on
// the final frame. The run is already over when OnHazard runs, so the hook
// may reset it.
func (g *Game) hitHazard(it *FallingEntity) {
	if g.over {
		return
	}
	Debugf("Hazard hit at x=%.1f", it.X)
	hazard := *it
	g.GameOver()
	if g.hooks.OnHazard != nil {
		g.hooks.OnHazard(hazard)
	}
}

func (g *Game) catchItem(it *FallingEntity) {
	g.score += it.Value

	cx, cy := it.Center()
	p := g.Popups.Acquire()
	p.X = cx
	p.Y = cy
	p.Text = "+" + strconv.Itoa(it.Value)
	p.Alpha = 1
	p.Lifetime = g.Config.PopupLifetimeMs

	if g.Config.CatchFadeMs > 0 {
		f := g.Fades.Acquire()
		f.X = it.X
		f.Y = it.Y
		f.Width = it.Width
		f.Height = it.Height
		f.Image = it.Image
		f.Category = it.Category
		f.Kind = it.Kind
		f.Duration = g.Config.CatchFadeMs
	}

	if g.hooks.OnCatch != nil {
		g.hooks.OnCatch(*it)
	}
}

func (g *Game) missItem(it *FallingEntity) {
	penalty := g.Config.Item.DefaultDeduct
	if it.Penalty != nil {
		penalty = *it.Penalty
	}
	g.score -= penalty
	if g.score < 0 {
		g.score = 0
	}
	if g.hooks.OnMiss != nil {
		g.hooks.OnMiss(*it, penalty)
	}
}

// removeOffScreenItems is a safety net: checkCollisions already turns every
// collectible past the bottom edge into a miss, so this only drops strays
// without scoring them. Hazards keep falling until the run is reset.
func (g *Game) removeOffScreenItems() {
	limit := g.viewport.Height
	g.Items.ForEachReverse(func(it *FallingEntity, i int) {
		if it.Category != Hazard && it.Y > limit {
			g.Items.Release(i)
		}
	})
}
