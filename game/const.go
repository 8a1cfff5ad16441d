package game

// Tuning defaults. A Config may override the ones it exposes.
const (
	// DefaultSmoothingRate is how fast the catcher chases its target, per
	// second. Higher values = snappier movement.
	DefaultSmoothingRate = 15.0

	// DefaultPopupLifetimeMs is how long a score popup takes to fade out.
	DefaultPopupLifetimeMs = 1000.0

	// DefaultCatchFadeMs is the duration of the caught-item shrink animation.
	DefaultCatchFadeMs = 200.0

	// DefaultMaxFrameDeltaMs caps a single step so a suspended tab doesn't
	// come back with one huge jump.
	DefaultMaxFrameDeltaMs = 100.0

	// PopupRiseSpeed is how fast popups drift upwards, in px/s.
	PopupRiseSpeed = 30.0

	// SnapDistance is the gap under which the catcher lands exactly on its target.
	SnapDistance = 0.05

	// CatchFadeLift and CatchFadeShrink shape the caught-item animation.
	CatchFadeLift   = 25.0
	CatchFadeShrink = 0.4
)

// Viewport is the CSS-pixel drawing area plus its device pixel ratio.
type Viewport struct {
	Width  float64
	Height float64
	DPR    float64
}
