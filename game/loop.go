package game

import "math"

// FrameSource delivers host animation frames. Request schedules one call to
// fn with a millisecond timestamp; Cancel drops the pending request.
type FrameSource interface {
	Request(fn func(nowMs float64))
	Cancel()
}

// FrameClock turns frame timestamps into deltas and caps them at MaxDelta so
// a long suspension resumes with one bounded step.
type FrameClock struct {
	MaxDelta float64

	last   float64
	primed bool
}

// Restart forgets the previous timestamp. The next Tick returns 0.
func (c *FrameClock) Restart() {
	c.primed = false
}

// Tick returns the clamped delta since the previous timestamp, in ms.
func (c *FrameClock) Tick(now float64) float64 {
	if !c.primed {
		c.primed = true
		c.last = now
		return 0
	}
	delta := now - c.last
	c.last = now

	if delta < 0 || math.IsNaN(delta) {
		return 0
	}
	if c.MaxDelta > 0 && delta > c.MaxDelta {
		return c.MaxDelta
	}
	return delta
}

func (g *Game) startLoop() {
	if g.frames == nil || g.scheduled {
		return
	}
	g.clock.Restart()
	g.scheduled = true
	g.frames.Request(g.frame)
}

func (g *Game) stopLoop() {
	if g.frames != nil && g.scheduled {
		g.frames.Cancel()
	}
	g.scheduled = false
}

// frame runs one update/draw pair. The loop stops itself once the run is
// paused or over; Resume or Start schedule it again.
func (g *Game) frame(now float64) {
	g.scheduled = false
	if !g.running || g.paused || g.over {
		return
	}

	g.Stats.UpdateFPS(now)
	g.Update(g.clock.Tick(now))
	if g.surface != nil {
		g.Draw(g.surface)
	}

	if g.running && !g.paused && !g.over && !g.scheduled {
		g.scheduled = true
		g.frames.Request(g.frame)
	}
}
