//go:build js

package web

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/catch-it/game"
)

// BindInput routes pointer and touch drags to g. Key commands go to onCommand,
// or straight to g.Apply when it is nil. onGesture runs on every user gesture
// so audio can be unlocked.
func BindInput(g *game.Game, canvas *js.Object, onCommand func(game.Command), onGesture func()) {
	gesture := func() {
		if onGesture != nil {
			onGesture()
		}
	}
	// clientX is relative to the page, the game wants canvas CSS pixels.
	drag := func(clientX float64) {
		rect := canvas.Call("getBoundingClientRect")
		g.HandleDrag(clientX - rect.Get("left").Float())
	}

	dragging := false
	canvas.Call("addEventListener", "mousedown", func(event *js.Object) {
		gesture()
		dragging = true
		drag(event.Get("clientX").Float())
	})
	canvas.Call("addEventListener", "mousemove", func(event *js.Object) {
		if dragging {
			drag(event.Get("clientX").Float())
		}
	})
	js.Global.Get("document").Call("addEventListener", "mouseup", func() {
		dragging = false
	})

	touch := func(event *js.Object) {
		touches := event.Get("touches")
		if touches == nil || touches == js.Undefined || touches.Length() == 0 {
			return
		}
		event.Call("preventDefault")
		drag(touches.Index(0).Get("clientX").Float())
	}
	canvas.Call("addEventListener", "touchstart", func(event *js.Object) {
		gesture()
		touch(event)
	}, map[string]interface{}{"passive": false})
	canvas.Call("addEventListener", "touchmove", touch, map[string]interface{}{"passive": false})

	js.Global.Get("document").Call("addEventListener", "keydown",
		func(event *js.Object) {
			gesture()
			cmd := game.TranslateKeyCode(event.Get("keyCode").Int())
			if cmd == game.CmdNone {
				return
			}
			event.Call("preventDefault")
			if onCommand == nil {
				g.Apply(cmd)
				return
			}
			onCommand(cmd)
		})
}
