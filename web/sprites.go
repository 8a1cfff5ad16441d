//go:build js

package web

import (
	"math"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/catch-it/game"
)

// fallbackSize is the edge of the off-screen fallback sprites. They are
// scaled to the entity size when drawn.
const fallbackSize = 64

// RenderToCanvas creates an off-screen canvas and renders to it.
func RenderToCanvas(width, height int, renderFn func(canvas, ctx *js.Object)) *js.Object {
	document := js.Global.Get("document")
	canvas := document.Call("createElement", "canvas")
	canvas.Set("width", width)
	canvas.Set("height", height)
	ctx := canvas.Call("getContext", "2d")
	renderFn(canvas, ctx)
	return canvas
}

// Fallbacks holds pre-rendered sprites used while an image is missing or
// still loading, keyed by fill colour.
type Fallbacks struct {
	items   map[string]*js.Object
	hazards map[string]*js.Object
	catcher *js.Object
}

// NewFallbacks renders the fallback sprites for the current Theme.
func NewFallbacks() *Fallbacks {
	f := &Fallbacks{
		items:   make(map[string]*js.Object),
		hazards: make(map[string]*js.Object),
	}
	for _, color := range game.Theme.CollectibleColors {
		f.items[color] = renderGem(color)
	}
	f.hazards[game.Theme.HazardColor] = renderBomb(game.Theme.HazardColor)
	f.catcher = renderBasket(game.Theme.CatcherColor)
	return f
}

// For returns the fallback for s, or nil when only a plain rectangle fits.
func (f *Fallbacks) For(s game.Sprite) *js.Object {
	if s.Kind == game.SpriteCatcher {
		return f.catcher
	}
	if s.Category == game.Hazard {
		return f.hazards[s.Color]
	}
	return f.items[s.Color]
}

// renderGem draws a diamond.
func renderGem(color string) *js.Object {
	return RenderToCanvas(fallbackSize, fallbackSize, func(canvas, ctx *js.Object) {
		w := canvas.Get("width").Float()
		h := canvas.Get("height").Float()
		p := 4.0

		ctx.Call("beginPath")
		ctx.Call("moveTo", w/2, p)
		ctx.Call("lineTo", w-p, h/2)
		ctx.Call("lineTo", w/2, h-p)
		ctx.Call("lineTo", p, h/2)
		ctx.Call("closePath")
		ctx.Set("fillStyle", color)
		ctx.Call("fill")
		ctx.Set("lineWidth", 2)
		ctx.Set("strokeStyle", "rgba(255,255,255,.6)")
		ctx.Call("stroke")
	})
}

// renderBomb draws a round bomb with a fuse.
func renderBomb(color string) *js.Object {
	return RenderToCanvas(fallbackSize, fallbackSize, func(canvas, ctx *js.Object) {
		w := canvas.Get("width").Float()
		h := canvas.Get("height").Float()
		r := w * 0.38

		ctx.Call("beginPath")
		ctx.Call("arc", w/2, h*0.58, r, 0, math.Pi*2)
		ctx.Set("fillStyle", color)
		ctx.Call("fill")

		ctx.Call("beginPath")
		ctx.Call("moveTo", w/2, h*0.58-r)
		ctx.Call("quadraticCurveTo", w*0.62, h*0.05, w*0.8, h*0.1)
		ctx.Set("lineWidth", 3)
		ctx.Set("strokeStyle", "#FFF")
		ctx.Call("stroke")
	})
}

// renderBasket draws a trapezoid basket with a rim.
func renderBasket(color string) *js.Object {
	return RenderToCanvas(fallbackSize*2, fallbackSize, func(canvas, ctx *js.Object) {
		w := canvas.Get("width").Float()
		h := canvas.Get("height").Float()

		ctx.Call("beginPath")
		ctx.Call("moveTo", 0, h*0.2)
		ctx.Call("lineTo", w, h*0.2)
		ctx.Call("lineTo", w*0.85, h)
		ctx.Call("lineTo", w*0.15, h)
		ctx.Call("closePath")
		ctx.Set("fillStyle", color)
		ctx.Call("fill")

		ctx.Set("fillStyle", "rgba(0,0,0,.25)")
		for i := 1; i < 4; i++ {
			y := h*0.2 + h*0.8*float64(i)/4
			ctx.Call("fillRect", w*0.1, y, w*0.8, 2)
		}
		ctx.Set("fillStyle", "rgba(255,255,255,.35)")
		ctx.Call("fillRect", 0, h*0.2, w, 4)
	})
}
