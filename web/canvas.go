//go:build js

package web

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/catch-it/game"
)

// Canvas draws the game's draw list onto an HTML canvas 2D context.
type Canvas struct {
	Element    *js.Object
	Ctx        *js.Object
	Images     *Images
	Fallbacks  *Fallbacks
	Background string
}

// NewCanvas wraps a canvas element.
func NewCanvas(element *js.Object, images *Images) *Canvas {
	return &Canvas{
		Element:   element,
		Ctx:       element.Call("getContext", "2d"),
		Images:    images,
		Fallbacks: NewFallbacks(),
	}
}

// Resize sizes the backing store for dpr and maps CSS pixels onto it.
func (c *Canvas) Resize(width, height, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	c.Element.Set("width", int(math.Floor(width*dpr)))
	c.Element.Set("height", int(math.Floor(height*dpr)))
	style := c.Element.Get("style")
	style.Set("width", strconv.FormatFloat(width, 'f', -1, 64)+"px")
	style.Set("height", strconv.FormatFloat(height, 'f', -1, 64)+"px")
	c.Ctx.Call("setTransform", dpr, 0, 0, dpr, 0, 0)
	c.Ctx.Set("imageSmoothingEnabled", true)
}

// Clear paints the background.
func (c *Canvas) Clear(width, height float64) {
	ctx := c.Ctx
	ctx.Set("globalAlpha", 1)
	ctx.Set("fillStyle", game.Theme.BackgroundColor)
	ctx.Call("fillRect", 0, 0, width, height)
	if img := c.image(c.Background); img != nil {
		ctx.Call("drawImage", img, 0, 0, width, height)
	}
}

// DrawSprite draws the sprite image, its fallback, or a filled rectangle.
// Coordinates are snapped to whole pixels.
func (c *Canvas) DrawSprite(s game.Sprite) {
	if s.Alpha <= 0 || s.Width <= 0 || s.Height <= 0 {
		return
	}
	ctx := c.Ctx
	x, y := math.Round(s.X), math.Round(s.Y)
	w, h := math.Round(s.Width), math.Round(s.Height)

	ctx.Set("globalAlpha", math.Min(1, s.Alpha))
	if img := c.image(s.Image); img != nil {
		ctx.Call("drawImage", img, x, y, w, h)
	} else if fb := c.Fallbacks.For(s); fb != nil {
		ctx.Call("drawImage", fb, x, y, w, h)
	} else {
		ctx.Set("fillStyle", s.Color)
		ctx.Call("fillRect", x, y, w, h)
	}
	ctx.Set("globalAlpha", 1)
}

// DrawText draws a label.
func (c *Canvas) DrawText(l game.Label) {
	if l.Alpha <= 0 {
		return
	}
	ctx := c.Ctx
	ctx.Set("globalAlpha", math.Min(1, l.Alpha))
	ctx.Set("font", l.Font)
	ctx.Set("fillStyle", l.Color)
	ctx.Set("textBaseline", "alphabetic")
	if l.Align == game.AlignLeft {
		ctx.Set("textAlign", "left")
	} else {
		ctx.Set("textAlign", "center")
	}
	ctx.Call("fillText", l.Text, math.Round(l.X), math.Round(l.Y))
	ctx.Set("globalAlpha", 1)
}

func (c *Canvas) image(name string) *js.Object {
	if c.Images == nil || name == "" {
		return nil
	}
	return c.Images.Get(name)
}

var _ game.Surface = (*Canvas)(nil)
