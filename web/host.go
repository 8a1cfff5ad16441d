//go:build js

package web

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/catch-it/audio"
	"github.com/simukka/catch-it/game"
)

// Host binds a game to the page: canvas sizing, audio and the command
// object scripts on the page call into.
type Host struct {
	Game   *game.Game
	Canvas *Canvas
	Audio  *audio.AudioManager

	stateFns []*js.Object
	overFns  []*js.Object
}

// NewHost creates a host. Game is set once it has been built with Hooks.
func NewHost(canvas *Canvas, am *audio.AudioManager) *Host {
	return &Host{Canvas: canvas, Audio: am}
}

// Hooks forwards notifications to page subscribers.
func (h *Host) Hooks() game.Hooks {
	return game.Hooks{
		OnState: func(s game.State) {
			for _, fn := range h.stateFns {
				fn.Invoke(stateObject(s))
			}
		},
		OnGameOver: func(s game.State) {
			for _, fn := range h.overFns {
				fn.Invoke(stateObject(s))
			}
		},
	}
}

// stateObject is the JS view of a snapshot. Elapsed seconds go out under
// both "timer", which existing pages read, and "elapsedSeconds".
func stateObject(s game.State) map[string]interface{} {
	return map[string]interface{}{
		"score":          s.Score,
		"timer":          s.Elapsed,
		"elapsedSeconds": s.Elapsed,
		"speed":          s.SpeedMultiplier,
		"gameOver":       s.GameOver,
	}
}

// SetupCanvas resizes the game and the canvas backing store, then redraws
// so a paused or idle game is not left blank.
func (h *Host) SetupCanvas(width, height, dpr float64) error {
	if err := h.Game.SetupCanvas(width, height, dpr); err != nil {
		return err
	}
	vp := h.Game.Viewport()
	h.Canvas.Resize(vp.Width, vp.Height, vp.DPR)
	h.Game.Draw(h.Canvas)
	return nil
}

// Fit sizes the game to the canvas's parent element.
func (h *Host) Fit() error {
	parent := h.Canvas.Element.Get("parentElement")
	width := js.Global.Get("innerWidth").Float()
	height := js.Global.Get("innerHeight").Float()
	if parent != nil && parent != js.Undefined {
		if w := parent.Get("clientWidth").Float(); w > 0 {
			width = w
		}
		if ht := parent.Get("clientHeight").Float(); ht > 0 {
			height = ht
		}
	}
	dpr := js.Global.Get("devicePixelRatio").Float()
	return h.SetupCanvas(width, height, dpr)
}

// Command runs a key command, keeping the theme loop in step with the run.
func (h *Host) Command(cmd game.Command) {
	switch cmd {
	case game.CmdPause:
		switch h.Game.RunState() {
		case game.Idle:
			h.start()
		case game.Running:
			h.pause()
		case game.Paused:
			h.resume()
		}
	case game.CmdReset:
		h.reset()
		h.start()
	case game.CmdMute:
		muted := h.Audio.ToggleMute()
		if !muted && h.Game.RunState() == game.Running {
			h.Audio.StartTheme()
		}
		game.Debug("Muted:", muted)
	case game.CmdQuit:
		h.Game.Stop()
		h.Audio.StopTheme()
	default:
		h.Game.Apply(cmd)
	}
}

func (h *Host) start() {
	h.Game.Start()
	if h.Game.RunState() == game.Running {
		h.Audio.StartTheme()
	}
}

func (h *Host) pause() {
	h.Game.Pause()
	h.Audio.StopTheme()
}

func (h *Host) resume() {
	h.Game.Resume()
	if h.Game.RunState() == game.Running {
		h.Audio.StartTheme()
	}
}

func (h *Host) reset() {
	h.Audio.StopTheme()
	h.Game.Reset()
	h.Game.Draw(h.Canvas)
}

// Expose publishes the command object as window[name].
func (h *Host) Expose(name string) {
	js.Global.Set(name, map[string]interface{}{
		"start":  h.start,
		"stop":   func() { h.Command(game.CmdQuit) },
		"pause":  h.pause,
		"resume": h.resume,
		"reset":  h.reset,
		"setupCanvas": func(width, height, dpr float64) string {
			if err := h.SetupCanvas(width, height, dpr); err != nil {
				game.DebugError("setupCanvas:", err)
				return err.Error()
			}
			return ""
		},
		"mute": func() bool {
			h.Command(game.CmdMute)
			return h.Audio.Muted()
		},
		"toggleStats": func() { h.Game.Stats.Toggle() },
		"state": func() map[string]interface{} {
			return stateObject(h.Game.Snapshot())
		},
		"runState": func() string { return h.Game.RunState().String() },
		"onState": func(fn *js.Object) {
			h.stateFns = append(h.stateFns, fn)
		},
		"onGameOver": func(fn *js.Object) {
			h.overFns = append(h.overFns, fn)
		},
	})
}
