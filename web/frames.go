//go:build js

package web

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/catch-it/game"
)

// AnimationFrames schedules frames with requestAnimationFrame.
type AnimationFrames struct {
	id      int
	pending bool
}

// Request schedules fn for the next animation frame.
func (a *AnimationFrames) Request(fn func(nowMs float64)) {
	a.id = js.Global.Call("requestAnimationFrame", func(now float64) {
		a.pending = false
		fn(now)
	}).Int()
	a.pending = true
}

// Cancel drops the pending frame, if any.
func (a *AnimationFrames) Cancel() {
	if !a.pending {
		return
	}
	js.Global.Call("cancelAnimationFrame", a.id)
	a.pending = false
}

var _ game.FrameSource = (*AnimationFrames)(nil)
