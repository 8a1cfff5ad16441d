//go:build !js

// Command terminal plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/catch-it/audio"
	"github.com/simukka/catch-it/config"
	"github.com/simukka/catch-it/game"
	"github.com/simukka/catch-it/tui"
)

func main() {
	env := config.LoadEnv()

	configPath := flag.String("config", "", "Game config file (.json or .toml)")
	gameID := flag.String("game", "", "Game id to load from the config directory")
	configDir := flag.String("configs", env.ConfigDir, "Directory of per-game configs")
	seed := flag.Uint("seed", 0, "Spawn seed (0 picks one from the clock)")
	logPath := flag.String("log", "catchit.log", "Log file; the terminal itself is taken by the game")
	debug := flag.Bool("debug", env.Debug, "Enable debug logging")
	mute := flag.Bool("mute", false, "Start with sound muted")
	flag.Parse()

	logFile, err := openLog(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()
	game.EnableDebug = *debug

	cfg, err := loadGameConfig(*configPath, *configDir, *gameID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	am := newAudio()
	defer am.Close()
	if *mute {
		am.ToggleMute()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	s := uint32(*seed)
	if s == 0 {
		s = uint32(time.Now().UnixNano())
	}
	game.Debugf("Spawn seed %d", s)

	app, err := tui.NewApp(screen, cfg, am, game.WithSeed(s))
	if err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		game.DebugError("Run failed:", err)
	}
}

// openLog sends log output to path. An empty path discards it.
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Write(p []byte) (int, error) { return len(p), nil }
func (nopCloser) Close() error                { return nil }

// loadGameConfig picks the explicit file, then the id in dir, then the
// built-in catalog.
func loadGameConfig(path, dir, id string) (game.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if id != "" {
		for _, ext := range []string{".json", ".toml"} {
			p := filepath.Join(dir, id+ext)
			if _, err := os.Stat(p); err == nil {
				return config.Load(p)
			}
		}
		return game.Config{}, fmt.Errorf("no config for game %q in %s", id, dir)
	}
	return game.DefaultConfig(), nil
}

// newAudio opens the speaker. Without one the game runs silent.
func newAudio() *audio.AudioManager {
	cfg := audio.LoadConfig()
	if !cfg.Enabled {
		return audio.NewAudioManager(nil, cfg)
	}
	player := audio.NewBeepPlayer(cfg.SampleRate)
	if err := player.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
		return audio.NewAudioManager(nil, cfg)
	}
	return audio.NewAudioManager(player, cfg)
}
