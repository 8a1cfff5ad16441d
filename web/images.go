//go:build js

package web

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/catch-it/game"
)

// Images loads sprite images on first use and caches them by name.
type Images struct {
	BaseURL string
	cache   map[string]*js.Object
	failed  map[string]bool
}

// NewImages creates a cache resolving relative names against baseURL.
func NewImages(baseURL string) *Images {
	return &Images{
		BaseURL: baseURL,
		cache:   make(map[string]*js.Object),
		failed:  make(map[string]bool),
	}
}

func (im *Images) url(name string) string {
	if im.BaseURL == "" || strings.Contains(name, "://") || strings.HasPrefix(name, "/") {
		return name
	}
	return strings.TrimSuffix(im.BaseURL, "/") + "/" + name
}

// Preload starts loading every image named by cfg.
func (im *Images) Preload(cfg game.Config) {
	im.load(cfg.BackgroundImage)
	im.load(cfg.Basket.Image)
	for _, e := range cfg.Item.Items {
		im.load(e.Image)
	}
}

func (im *Images) load(name string) *js.Object {
	if name == "" || im.failed[name] {
		return nil
	}
	if img, ok := im.cache[name]; ok {
		return img
	}
	img := js.Global.Get("Image").New()
	img.Set("onerror", func() {
		game.DebugWarn("Image failed to load:", name)
		im.failed[name] = true
	})
	img.Set("src", im.url(name))
	im.cache[name] = img
	return img
}

// Get returns the image for name once it is fully decoded, else nil.
func (im *Images) Get(name string) *js.Object {
	img := im.load(name)
	if img == nil {
		return nil
	}
	if !img.Get("complete").Bool() || img.Get("naturalWidth").Int() == 0 {
		return nil
	}
	return img
}
