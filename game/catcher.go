package game

import (
	"fmt"
	"math"
)

// HandleDrag maps a pointer x coordinate to a new catcher target. The catcher
// itself only moves in Update. It returns false when input is ignored.
func (g *Game) HandleDrag(x float64) bool {
	if g.over || (g.paused && !g.pausedInput) {
		return false
	}
	if math.IsNaN(x) {
		return false
	}
	g.Catcher.TargetX = g.clampCatcherX(x - g.Catcher.Width/2)
	return true
}

// SetupCanvas applies a new viewport. The catcher is recentred and every
// in-flight y coordinate is scaled by the height ratio so relative progress
// is kept.
func (g *Game) SetupCanvas(width, height, dpr float64) error {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("invalid viewport %vx%v", width, height)
	}
	if !(dpr > 0) || math.IsInf(dpr, 0) {
		dpr = 1
	}

	oldHeight := g.viewport.Height
	if oldHeight > 0 && oldHeight != height {
		ratio := height / oldHeight
		g.Items.ForEach(func(it *FallingEntity, _ int) { it.Y *= ratio })
		g.Popups.ForEach(func(p *ScorePopup, _ int) { p.Y *= ratio })
		g.Fades.ForEach(func(f *CatchFade, _ int) { f.Y *= ratio })
	}

	g.viewport = Viewport{Width: width, Height: height, DPR: dpr}
	g.layout(width, height)
	Debugf("Viewport set to %.0fx%.0f @%.2f", width, height, dpr)
	return nil
}

// layout puts the catcher at its resting position for the viewport.
func (g *Game) layout(width, height float64) {
	c := &g.Catcher
	c.X = math.Max(0, (width-c.Width)/2)
	c.Y = height - g.Config.Basket.InitialYOffset
	c.TargetX = c.X
}

func (g *Game) clampCatcherX(x float64) float64 {
	maxX := math.Max(0, g.viewport.Width-g.Catcher.Width)
	if x < 0 {
		return 0
	}
	if x > maxX {
		return maxX
	}
	return x
}

// smoothCatcher moves the catcher toward its target at SmoothingRate per
// second. The step fraction is capped at 1 so a long frame never overshoots.
func (g *Game) smoothCatcher(dt float64) {
	c := &g.Catcher
	gap := c.TargetX - c.X
	if math.Abs(gap) <= SnapDistance {
		c.X = c.TargetX
	} else {
		f := g.Config.SmoothingRate * dt
		if f > 1 {
			f = 1
		}
		c.X += gap * f
	}
	c.X = g.clampCatcherX(c.X)
}
