//go:build !js

package tui

import "github.com/simukka/catch-it/game"

// TickerFrames is a frame source fired by the terminal loop's ticker. It is
// only touched from that loop's goroutine.
type TickerFrames struct {
	pending func(nowMs float64)
}

// Request stores fn for the next Fire.
func (t *TickerFrames) Request(fn func(nowMs float64)) {
	t.pending = fn
}

// Cancel drops the pending frame.
func (t *TickerFrames) Cancel() {
	t.pending = nil
}

// Pending reports whether a frame is scheduled.
func (t *TickerFrames) Pending() bool {
	return t.pending != nil
}

// Fire runs the pending frame, if any.
func (t *TickerFrames) Fire(nowMs float64) bool {
	fn := t.pending
	if fn == nil {
		return false
	}
	t.pending = nil
	fn(nowMs)
	return true
}

var _ game.FrameSource = (*TickerFrames)(nil)
