package game

// Command is a canonical control action shared by the browser and terminal
// front ends.
type Command int

const (
	CmdNone Command = iota
	CmdLeft
	CmdRight
	CmdPause
	CmdReset
	CmdStats
	CmdMute
	CmdQuit
)

// KeyNudge is how far one arrow key press moves the catcher target, in px.
const KeyNudge = 40.0

// KeyMap maps DOM key codes to commands.
var KeyMap = map[int]Command{
	27:  CmdPause, // Esc
	80:  CmdPause, // P
	32:  CmdPause, // Space
	37:  CmdLeft,  // Arrow Left
	65:  CmdLeft,  // A
	74:  CmdLeft,  // J
	39:  CmdRight, // Arrow Right
	68:  CmdRight, // D
	76:  CmdRight, // L
	82:  CmdReset, // R
	77:  CmdMute,  // M
	121: CmdStats, // F10
	81:  CmdQuit,  // Q
}

// TranslateKeyCode converts a DOM key code to a command.
func TranslateKeyCode(keyCode int) Command {
	if cmd, ok := KeyMap[keyCode]; ok {
		return cmd
	}
	return CmdNone
}

// Nudge shifts the catcher target by dx, as if the pointer had moved that
// far from the current target centre.
func (g *Game) Nudge(dx float64) bool {
	return g.HandleDrag(g.Catcher.TargetX + g.Catcher.Width/2 + dx)
}

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause() {
	if g.paused {
		g.Resume()
		return
	}
	g.Pause()
}

// Apply runs a movement or state command against the game. Commands that
// belong to the host (mute, quit) are ignored and reported as not handled.
func (g *Game) Apply(cmd Command) bool {
	switch cmd {
	case CmdLeft:
		return g.Nudge(-KeyNudge)
	case CmdRight:
		return g.Nudge(KeyNudge)
	case CmdPause:
		if g.over {
			return false
		}
		if !g.running {
			g.Start()
			return true
		}
		g.TogglePause()
		return true
	case CmdReset:
		g.Reset()
		g.Start()
		return true
	case CmdStats:
		g.Stats.Toggle()
		return true
	}
	return false
}
