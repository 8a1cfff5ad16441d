package game

import (
	"strconv"
)

// StatsOverlay displays real-time game statistics
type StatsOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	// Position and styling
	PanelX     float64
	PanelY     float64
	LineHeight float64
}

// NewStatsOverlay creates a new stats overlay instance
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		PanelX:     12,
		PanelY:     48,
		LineHeight: 18,
	}
}

// Toggle toggles the stats overlay visibility
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS updates the FPS counter
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	s.FrameCount++

	// Update FPS every second
	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

// Lines returns the label/value rows shown by the overlay.
func (s *StatsOverlay) Lines(g *Game) [][2]string {
	return [][2]string{
		{"FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64)},
		{"State", g.RunState().String()},
		{"Score", strconv.Itoa(g.score)},
		{"Time", strconv.FormatFloat(g.elapsed, 'f', 1, 64) + "s"},
		{"Speed", "x" + strconv.FormatFloat(g.speed, 'f', 2, 64)},
		{"Items", strconv.Itoa(g.Items.Len()) + "/" + strconv.Itoa(len(g.Items.Pool))},
		{"Popups", strconv.Itoa(g.Popups.Len())},
		{"Seed", strconv.FormatUint(uint64(g.Seed()), 10)},
		{"Catcher", strconv.FormatFloat(g.Catcher.X, 'f', 0, 64) + " -> " + strconv.FormatFloat(g.Catcher.TargetX, 'f', 0, 64)},
	}
}

// Render draws the stats overlay
func (s *StatsOverlay) Render(surface Surface, g *Game) {
	if !s.Visible {
		return
	}
	y := s.PanelY
	for _, line := range s.Lines(g) {
		surface.DrawText(Label{
			Text:  line[0] + ": " + line[1],
			X:     s.PanelX,
			Y:     y,
			Alpha: 1,
			Color: Theme.StatsColor,
			Font:  Theme.StatsFont,
			Align: AlignLeft,
		})
		y += s.LineHeight
	}
}
