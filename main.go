//go:build js
// +build js

package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/catch-it/audio"
	"github.com/simukka/catch-it/game"
	"github.com/simukka/catch-it/web"
)

// fetchConfig loads the catalog for the page's ?game= id from the server.
func fetchConfig() (game.Config, error) {
	params := js.Global.Get("URLSearchParams").New(js.Global.Get("location").Get("search"))
	id := params.Call("get", "game")
	if id == nil || id == js.Undefined || id.String() == "" {
		return game.DefaultConfig(), nil
	}

	type result struct {
		body string
		err  error
	}
	done := make(chan result, 1)

	xhr := js.Global.Get("XMLHttpRequest").New()
	xhr.Call("open", "GET", "/api/config/"+js.Global.Call("encodeURIComponent", id).String())
	xhr.Set("onload", func() {
		if status := xhr.Get("status").Int(); status != 200 {
			done <- result{err: fmt.Errorf("config %s: HTTP %d", id.String(), status)}
			return
		}
		done <- result{body: xhr.Get("responseText").String()}
	})
	xhr.Set("onerror", func() {
		done <- result{err: errors.New("config request failed")}
	})
	xhr.Call("send")

	res := <-done
	if res.err != nil {
		return game.Config{}, res.err
	}
	var cfg game.Config
	if err := json.Unmarshal([]byte(res.body), &cfg); err != nil {
		return game.Config{}, fmt.Errorf("config %s: %w", id.String(), err)
	}
	return cfg, nil
}

func main() {
	// Get the canvas element
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "c")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}

	cfg, err := fetchConfig()
	if err != nil {
		game.DebugError("Using default config:", err)
		cfg = game.DefaultConfig()
	}

	images := web.NewImages("assets")
	images.Preload(cfg)
	surface := web.NewCanvas(canvas, images)
	surface.Background = cfg.BackgroundImage

	player := audio.NewWebAudioPlayer()
	am := audio.NewAudioManager(player, audio.DefaultConfig())
	host := web.NewHost(surface, am)

	g, err := game.NewGame(cfg,
		game.WithHooks(am.Hooks(host.Hooks())),
		game.WithFrameSource(&web.AnimationFrames{}),
		game.WithSurface(surface),
	)
	if err != nil {
		// A hosted config that fails validation falls back like a missing one.
		game.DebugError("Invalid config:", err)
		g, err = game.NewGame(game.DefaultConfig(),
			game.WithHooks(am.Hooks(host.Hooks())),
			game.WithFrameSource(&web.AnimationFrames{}),
			game.WithSurface(surface),
		)
		if err != nil {
			panic(err)
		}
	}
	host.Game = g

	if err := host.Fit(); err != nil {
		game.DebugError("Canvas setup failed:", err)
	}
	web.BindInput(g, canvas, host.Command, func() {
		player.Init()
		player.Resume()
	})
	js.Global.Call("addEventListener", "resize", func() {
		if err := host.Fit(); err != nil {
			game.DebugWarn("Resize ignored:", err)
		}
	})

	host.Expose("CatchIt")
	doc.Call("dispatchEvent", js.Global.Get("Event").New("catchit:ready"))

	// Release audio when the page goes away
	js.Global.Call("addEventListener", "beforeunload", func() {
		g.Stop()
		am.Close()
	})

	select {}
}
