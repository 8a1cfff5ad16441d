//go:build !js

// Package tui runs the game in a terminal with tcell.
package tui

import (
	"strconv"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/catch-it/audio"
	"github.com/simukka/catch-it/game"
)

// FrameInterval is the terminal tick, about 60 FPS.
const FrameInterval = 16 * time.Millisecond

// App owns the screen and drives one game from a single goroutine.
type App struct {
	Game    *game.Game
	Surface *Surface
	Frames  *TickerFrames
	Audio   *audio.AudioManager

	screen tcell.Screen
	start  time.Time
}

// NewApp builds a game sized to screen. A nil manager gives a silent app.
// opts are applied after the app's own options.
func NewApp(screen tcell.Screen, cfg game.Config, am *audio.AudioManager, opts ...game.Option) (*App, error) {
	if am == nil {
		am = audio.NewAudioManager(nil, audio.DefaultConfig())
	}
	cols, rows := screen.Size()
	a := &App{
		Surface: NewSurface(screen, cols, rows),
		Frames:  &TickerFrames{},
		Audio:   am,
		screen:  screen,
		start:   time.Now(),
	}

	width, height := a.Surface.Viewport()
	base := []game.Option{
		game.WithFrameSource(a.Frames),
		game.WithHooks(am.Hooks(game.Hooks{})),
	}
	if width > 0 && height > 0 {
		base = append(base, game.WithViewport(width, height, 1))
	}
	g, err := game.NewGame(cfg, append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	a.Game = g
	return a, nil
}

// Run polls events and ticks frames until the player quits.
func (a *App) Run() error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	a.render()
	for {
		select {
		case ev := <-events:
			if !a.HandleEvent(ev) {
				a.Audio.StopTheme()
				a.Game.Stop()
				return nil
			}
			a.render()

		case <-ticker.C:
			a.Tick(time.Since(a.start))
		}
	}
}

// Tick fires a pending frame and redraws.
func (a *App) Tick(sinceStart time.Duration) {
	a.Frames.Fire(float64(sinceStart.Microseconds()) / 1000)
	a.render()
}

// HandleEvent applies one terminal event. It returns false to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := KeyCommand(ev)
		if cmd == game.CmdQuit {
			return false
		}
		a.Command(cmd)

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, _ := ev.Position()
			a.Game.HandleDrag(a.Surface.CellToX(x))
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.Resize()
	}
	return true
}

// Resize fits the game to the current screen size.
func (a *App) Resize() {
	cols, rows := a.screen.Size()
	a.Surface.Resize(cols, rows)
	width, height := a.Surface.Viewport()
	if err := a.Game.SetupCanvas(width, height, 1); err != nil {
		game.DebugWarn("Resize ignored:", err)
	}
}

// Command runs a key command, keeping the theme loop in step with the run.
func (a *App) Command(cmd game.Command) {
	g := a.Game
	switch cmd {
	case game.CmdPause:
		switch g.RunState() {
		case game.Idle:
			g.Start()
			a.Audio.StartTheme()
		case game.Running:
			g.Pause()
			a.Audio.StopTheme()
		case game.Paused:
			g.Resume()
			a.Audio.StartTheme()
		}
	case game.CmdReset:
		a.Audio.StopTheme()
		g.Reset()
		g.Start()
		a.Audio.StartTheme()
	case game.CmdMute:
		if !a.Audio.ToggleMute() && g.RunState() == game.Running {
			a.Audio.StartTheme()
		}
	default:
		g.Apply(cmd)
	}
}

// KeyCommand maps a terminal key to a command. Letters go through the same
// key codes as the browser.
func KeyCommand(ev *tcell.EventKey) game.Command {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.CmdLeft
	case tcell.KeyRight:
		return game.CmdRight
	case tcell.KeyEscape:
		return game.CmdPause
	case tcell.KeyF10:
		return game.CmdStats
	case tcell.KeyCtrlC:
		return game.CmdQuit
	case tcell.KeyRune:
		return game.TranslateKeyCode(int(unicode.ToUpper(ev.Rune())))
	}
	return game.CmdNone
}

func (a *App) render() {
	a.Game.Draw(a.Surface)
	a.drawHUD()
	a.screen.Show()
}

func (a *App) drawHUD() {
	g := a.Game
	s := a.Surface
	width, height := s.Viewport()

	status := "Score " + strconv.Itoa(g.Score()) +
		"  Time " + strconv.FormatFloat(g.Elapsed(), 'f', 1, 64) + "s" +
		"  x" + strconv.FormatFloat(g.SpeedMultiplier(), 'f', 2, 64)
	if a.Audio.Muted() {
		status += "  [muted]"
	}
	s.DrawText(game.Label{
		Text:  status,
		X:     0,
		Y:     s.CellHeight,
		Alpha: 1,
		Color: game.Theme.HUDColor,
		Align: game.AlignLeft,
	})

	var banner string
	color := game.Theme.HUDColor
	switch g.RunState() {
	case game.Idle:
		banner = "P to start, arrows or mouse to move, Q to quit"
	case game.Paused:
		banner = "PAUSED"
	case game.Over:
		banner = "GAME OVER  score " + strconv.Itoa(g.Score()) + "  R to restart"
		color = game.Theme.OverColor
	}
	if banner != "" {
		s.DrawText(game.Label{
			Text:  banner,
			X:     width / 2,
			Y:     height / 2,
			Alpha: 1,
			Color: color,
			Align: game.AlignCenter,
		})
	}
}
