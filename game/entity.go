package game

// Catcher is the player-controlled basket.
type Catcher struct {
	X, Y          float64
	TargetX       float64
	Width, Height float64
	Image         string
}

// Top returns the y coordinate of the catcher's upper edge.
func (c *Catcher) Top() float64 {
	return c.Y
}

// FallingEntity is a spawned item descending toward the catcher.
type FallingEntity struct {
	X, Y          float64
	Width, Height float64
	Category      Category
	Value         int
	Speed         float64 // px/s at speed multiplier 1
	Penalty       *int    // overrides the catalog default when missed
	Image         string
	Kind          int // index into the catalog
}

// Bottom returns the y coordinate of the entity's lower edge.
func (e *FallingEntity) Bottom() float64 {
	return e.Y + e.Height
}

// Center returns the entity's midpoint.
func (e *FallingEntity) Center() (x, y float64) {
	return e.X + e.Width/2, e.Y + e.Height/2
}

// ScorePopup is the "+N" text shown where an item was caught.
type ScorePopup struct {
	X, Y     float64
	Text     string
	Alpha    float64
	Lifetime float64 // ms
}

// CatchFade is the short shrink-and-lift animation of a caught item.
type CatchFade struct {
	X, Y          float64
	Width, Height float64
	Image         string
	Category      Category
	Kind          int
	T             float64 // elapsed ms
	Duration      float64 // ms
}

// Progress returns how far through the animation the fade is, in [0, 1].
func (f *CatchFade) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	p := f.T / f.Duration
	if p > 1 {
		return 1
	}
	return p
}

func easeOutQuad(p float64) float64 {
	return 1 - (1-p)*(1-p)
}
