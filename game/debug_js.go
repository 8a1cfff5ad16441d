//go:build js

package game

import "github.com/gopherjs/gopherjs/js"

func init() {
	SetLogSink(func(level LogLevel, msg string) {
		method := "log"
		switch level {
		case LevelWarn:
			method = "warn"
		case LevelError:
			method = "error"
		}
		js.Global.Get("console").Call(method, msg)
	})
}
