package game

import "github.com/simukka/catch-it/common"

// RunState is the coarse state of a run as seen by a host.
type RunState int

const (
	Idle RunState = iota
	Running
	Paused
	Over
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// RunState reports where the run is in its lifecycle.
func (g *Game) RunState() RunState {
	switch {
	case g.over:
		return Over
	case !g.running:
		return Idle
	case g.paused:
		return Paused
	default:
		return Running
	}
}

// Start begins driving frames. It does nothing while running or once the
// run is over; a paused run is resumed where it stopped.
func (g *Game) Start() {
	if g.over {
		Debug("Start ignored: run is over")
		return
	}
	if g.running {
		g.Resume()
		return
	}
	g.running = true
	g.paused = false

	// Recompute layout for the current viewport
	g.layout(g.viewport.Width, g.viewport.Height)

	Debugf("Game started (score=%d, elapsed=%.2fs)", g.score, g.elapsed)
	g.startLoop()
}

// Stop cancels frame driving. Entities and score are kept.
func (g *Game) Stop() {
	g.stopLoop()
	g.running = false
	Debug("Game stopped")
}

// Pause freezes the simulation without clearing anything.
func (g *Game) Pause() {
	if g.paused {
		return
	}
	g.paused = true
	g.stopLoop()
	Debug("Game paused")
}

// Resume continues a paused run. It does nothing once the run is over.
func (g *Game) Resume() {
	if !g.paused || g.over {
		return
	}
	g.paused = false
	Debug("Game resumed")
	if g.running {
		g.startLoop()
	}
}

// GameOver ends the run. Only the first call has any effect.
func (g *Game) GameOver() {
	if g.over {
		return
	}
	g.over = true
	Debugf("Game over (score=%d, elapsed=%.2fs)", g.score, g.elapsed)

	// Inside Update the end-of-tick notification reports the game over.
	if g.inTick {
		return
	}
	g.notify()
	g.endRun()
}

// Reset clears the run back to a fresh idle state and reports the zeroed
// state. Start must be called again to resume ticking.
func (g *Game) Reset() {
	g.stopLoop()
	g.running = false
	g.resetRun()
	Debug("Game reset")
	g.notify()
}

func (g *Game) resetRun() {
	g.generation++
	g.inTick = false

	g.Items.Clear()
	g.Popups.Clear()
	g.Fades.Clear()

	g.score = 0
	g.elapsed = 0
	g.speed = g.Config.GameSpeed.Base
	g.spawnTimer = 0
	g.paused = false
	g.over = false
	g.clock.Restart()

	if g.seeded != nil {
		g.seeded.SetSeed(common.RunSeed(g.baseSeed, g.runs))
		g.runs++
	}

	g.layout(g.viewport.Width, g.viewport.Height)
}
