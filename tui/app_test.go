//go:build !js

package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/catch-it/game"
)

// newTestApp runs an 80x25 simulation screen: an 800x500 game with spawning
// turned off.
func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	cfg := game.DefaultConfig()
	cfg.Item.SpawnIntervalFactor = 0
	app, err := NewApp(screen, cfg, nil)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	return app, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func rowText(screen tcell.Screen, row, cols int) string {
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := screen.GetContent(x, row)
		b.WriteRune(r)
	}
	return b.String()
}

func TestNewApp_SizesViewport(t *testing.T) {
	app, _ := newTestApp(t)

	vp := app.Game.Viewport()
	if vp.Width != 800 || vp.Height != 500 {
		t.Errorf("Expected 800x500 viewport, got %vx%v", vp.Width, vp.Height)
	}
	if app.Game.RunState() != game.Idle {
		t.Errorf("Expected idle, got %v", app.Game.RunState())
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	if _, err := NewApp(screen, game.Config{}, nil); err == nil {
		t.Error("Expected an error for an empty config")
	}
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Command
	}{
		{"p", key('p'), game.CmdPause},
		{"space", key(' '), game.CmdPause},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.CmdPause},
		{"a", key('a'), game.CmdLeft},
		{"D", key('D'), game.CmdRight},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.CmdLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), game.CmdRight},
		{"r", key('r'), game.CmdReset},
		{"m", key('m'), game.CmdMute},
		{"q", key('q'), game.CmdQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), game.CmdQuit},
		{"f10", tcell.NewEventKey(tcell.KeyF10, 0, tcell.ModNone), game.CmdStats},
		{"unbound", key('z'), game.CmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyCommand(tt.ev); got != tt.want {
				t.Errorf("KeyCommand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApp_PauseCycle(t *testing.T) {
	app, _ := newTestApp(t)

	steps := []game.RunState{game.Running, game.Paused, game.Running}
	for i, want := range steps {
		if !app.HandleEvent(key('p')) {
			t.Fatalf("Step %d: unexpected quit", i)
		}
		if got := app.Game.RunState(); got != want {
			t.Fatalf("Step %d: expected %v, got %v", i, want, got)
		}
		if app.Frames.Pending() != (want == game.Running) {
			t.Errorf("Step %d: frame pending = %v in state %v", i, app.Frames.Pending(), want)
		}
	}
}

func TestApp_Quit(t *testing.T) {
	app, _ := newTestApp(t)

	if app.HandleEvent(key('q')) {
		t.Error("Expected q to quit")
	}
}

func TestApp_MouseDrag(t *testing.T) {
	app, _ := newTestApp(t)
	app.HandleEvent(key('p'))

	app.HandleEvent(tcell.NewEventMouse(40, 20, tcell.Button1, tcell.ModNone))

	// Column 40 centres at x=405, the catcher is 120 wide.
	if got := app.Game.Catcher.TargetX; got != 345 {
		t.Errorf("Expected target 345, got %v", got)
	}

	app.HandleEvent(tcell.NewEventMouse(0, 20, tcell.ButtonNone, tcell.ModNone))
	if got := app.Game.Catcher.TargetX; got != 345 {
		t.Errorf("Expected hover without a button to be ignored, got %v", got)
	}
}

func TestApp_TickAdvancesGame(t *testing.T) {
	app, _ := newTestApp(t)
	app.HandleEvent(key('p'))

	app.Tick(0)
	app.Tick(50 * time.Millisecond)

	if got := app.Game.Elapsed(); got < 0.049 || got > 0.051 {
		t.Errorf("Expected 0.05s elapsed, got %v", got)
	}
	if !app.Frames.Pending() {
		t.Error("Expected the next frame to be scheduled")
	}
}

func TestApp_TickWhilePausedDoesNothing(t *testing.T) {
	app, _ := newTestApp(t)
	app.HandleEvent(key('p'))
	app.HandleEvent(key('p'))

	app.Tick(time.Second)

	if app.Game.Elapsed() != 0 {
		t.Errorf("Expected no time to pass while paused, got %v", app.Game.Elapsed())
	}
}

func TestApp_ResetRestarts(t *testing.T) {
	app, _ := newTestApp(t)
	app.HandleEvent(key('p'))
	app.Tick(0)
	app.Tick(50 * time.Millisecond)

	app.HandleEvent(key('r'))

	if app.Game.Elapsed() != 0 {
		t.Errorf("Expected reset elapsed, got %v", app.Game.Elapsed())
	}
	if app.Game.RunState() != game.Running {
		t.Errorf("Expected running after reset, got %v", app.Game.RunState())
	}
}

func TestApp_HUD(t *testing.T) {
	app, screen := newTestApp(t)

	app.render()

	if top := rowText(screen, 0, 80); !strings.HasPrefix(top, "Score 0") {
		t.Errorf("Expected score in the top row, got %q", top)
	}
	if mid := rowText(screen, 12, 80); !strings.Contains(mid, "P to start") {
		t.Errorf("Expected idle banner, got %q", mid)
	}

	app.HandleEvent(key('m'))
	app.render()
	if top := rowText(screen, 0, 80); !strings.Contains(top, "[muted]") {
		t.Errorf("Expected muted marker, got %q", top)
	}
}

func TestApp_Resize(t *testing.T) {
	app, screen := newTestApp(t)

	screen.SetSize(40, 30)
	app.HandleEvent(tcell.NewEventResize(40, 30))

	vp := app.Game.Viewport()
	if vp.Width != 400 || vp.Height != 600 {
		t.Errorf("Expected 400x600 after resize, got %vx%v", vp.Width, vp.Height)
	}
	if cols, rows := app.Surface.Size(); cols != 40 || rows != 30 {
		t.Errorf("Expected 40x30 grid, got %dx%d", cols, rows)
	}
}
