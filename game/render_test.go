package game

import (
	"math"
	"testing"
)

type recordingSurface struct {
	clears  int
	width   float64
	height  float64
	sprites []Sprite
	labels  []Label
}

func (s *recordingSurface) Clear(width, height float64) {
	s.clears++
	s.width, s.height = width, height
	s.sprites = s.sprites[:0]
	s.labels = s.labels[:0]
}

func (s *recordingSurface) DrawSprite(sp Sprite) { s.sprites = append(s.sprites, sp) }

func (s *recordingSurface) DrawText(l Label) { s.labels = append(s.labels, l) }

func TestDraw_Order(t *testing.T) {
	g := newTestGame(t, testConfig())
	addItem(g, 0, 10, 10)
	addItem(g, 1, 100, 20)
	p := g.Popups.Acquire()
	p.Text, p.Alpha = "+10", 0.5

	s := &recordingSurface{}
	g.Draw(s)

	if s.width != 400 || s.height != 600 {
		t.Errorf("Expected clear of 400x600, got %fx%f", s.width, s.height)
	}
	if len(s.sprites) != 3 {
		t.Fatalf("Expected 3 sprites, got %d", len(s.sprites))
	}
	if s.sprites[0].Color != Theme.HazardColor {
		t.Errorf("Expected hazard fallback colour, got %s", s.sprites[0].Color)
	}
	last := s.sprites[len(s.sprites)-1]
	if last.Kind != SpriteCatcher || last.X != 140 || last.Y != 500 {
		t.Errorf("Expected catcher drawn last at (140, 500), got %+v", last)
	}
	if len(s.labels) != 1 || s.labels[0].Text != "+10" || s.labels[0].Alpha != 0.5 {
		t.Errorf("Unexpected popup labels %+v", s.labels)
	}
	if s.labels[0].Color != Theme.PopupColor {
		t.Errorf("Expected popup colour %s, got %s", Theme.PopupColor, s.labels[0].Color)
	}
}

func TestDraw_DoesNotMutate(t *testing.T) {
	g := newTestGame(t, testConfig())
	it := addItem(g, 1, 100, 20)
	before := *it

	g.Draw(&recordingSurface{})
	g.Draw(nil)

	if *it != before {
		t.Errorf("Expected Draw to leave items untouched, got %+v", *it)
	}
	if g.Elapsed() != 0 {
		t.Errorf("Expected Draw not to advance time")
	}
}

func TestDraw_StatsOverlay(t *testing.T) {
	g := newTestGame(t, testConfig())
	s := &recordingSurface{}

	g.Draw(s)
	if len(s.labels) != 0 {
		t.Fatalf("Expected hidden overlay to draw nothing, got %d labels", len(s.labels))
	}

	g.Stats.Toggle()
	g.Draw(s)
	if len(s.labels) != len(g.Stats.Lines(g)) {
		t.Errorf("Expected %d overlay lines, got %d", len(g.Stats.Lines(g)), len(s.labels))
	}
}

func TestFadeSprite_Easing(t *testing.T) {
	f := &CatchFade{X: 100, Y: 100, Width: 40, Height: 40, Duration: 200}

	start := fadeSprite(f)
	if start.Width != 40 || start.Alpha != 1 || start.X != 100 || start.Y != 100 {
		t.Errorf("Expected untouched sprite at t=0, got %+v", start)
	}

	f.T = 200
	end := fadeSprite(f)
	if math.Abs(end.Width-24) > 1e-9 {
		t.Errorf("Expected width shrunk to 24, got %f", end.Width)
	}
	if end.Alpha != 0 {
		t.Errorf("Expected alpha 0 at the end, got %f", end.Alpha)
	}
	// centre lifted by 25px
	if cy := end.Y + end.Height/2; math.Abs(cy-95) > 1e-9 {
		t.Errorf("Expected centre y 95, got %f", cy)
	}
}

func TestStatsOverlay_UpdateFPS(t *testing.T) {
	s := NewStatsOverlay()
	for i := 0; i <= 60; i++ {
		s.UpdateFPS(float64(i) * 1000 / 60)
	}
	if math.Abs(s.CurrentFPS-60) > 2 {
		t.Errorf("Expected ~60 FPS, got %f", s.CurrentFPS)
	}
}
