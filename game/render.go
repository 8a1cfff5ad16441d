package game

// SpriteKind says what a sprite represents so adapters can pick a fallback.
type SpriteKind int

const (
	SpriteItem SpriteKind = iota
	SpriteCatchFade
	SpriteCatcher
)

// TextAlign is the horizontal anchor of a label.
type TextAlign int

const (
	AlignCenter TextAlign = iota
	AlignLeft
)

// Sprite is one image (or fallback rectangle) to draw, in CSS pixels.
type Sprite struct {
	Kind     SpriteKind
	Category Category
	Image    string
	Color    string // fallback fill when Image is missing or not loaded
	X, Y     float64
	Width    float64
	Height   float64
	Alpha    float64
}

// Label is one line of text to draw, anchored at X on the baseline Y.
type Label struct {
	Text  string
	X, Y  float64
	Alpha float64
	Color string
	Font  string
	Align TextAlign
}

// Surface is the drawing target of Draw. Implementations are expected to
// keep no game state of their own.
type Surface interface {
	Clear(width, height float64)
	DrawSprite(Sprite)
	DrawText(Label)
}

// Draw renders the current state onto s. It never mutates the simulation.
func (g *Game) Draw(s Surface) {
	if s == nil {
		return
	}
	s.Clear(g.viewport.Width, g.viewport.Height)

	g.Items.ForEach(func(it *FallingEntity, _ int) {
		s.DrawSprite(Sprite{
			Kind:     SpriteItem,
			Category: it.Category,
			Image:    it.Image,
			Color:    itemColor(it.Category, it.Kind),
			X:        it.X,
			Y:        it.Y,
			Width:    it.Width,
			Height:   it.Height,
			Alpha:    1,
		})
	})

	g.Fades.ForEach(func(f *CatchFade, _ int) {
		s.DrawSprite(fadeSprite(f))
	})

	c := &g.Catcher
	s.DrawSprite(Sprite{
		Kind:   SpriteCatcher,
		Image:  c.Image,
		Color:  Theme.CatcherColor,
		X:      c.X,
		Y:      c.Y,
		Width:  c.Width,
		Height: c.Height,
		Alpha:  1,
	})

	g.Popups.ForEach(func(p *ScorePopup, _ int) {
		alpha := p.Alpha
		if alpha < 0 {
			alpha = 0
		}
		s.DrawText(Label{
			Text:  p.Text,
			X:     p.X,
			Y:     p.Y,
			Alpha: alpha,
			Color: Theme.PopupColor,
			Font:  Theme.PopupFont,
			Align: AlignCenter,
		})
	})

	g.Stats.Render(s, g)
}

// fadeSprite shrinks, lifts and fades a caught item around its centre.
func fadeSprite(f *CatchFade) Sprite {
	e := easeOutQuad(f.Progress())
	scale := 1 - CatchFadeShrink*e
	w, h := f.Width*scale, f.Height*scale
	cx := f.X + f.Width/2
	cy := f.Y + f.Height/2 - CatchFadeLift*e
	return Sprite{
		Kind:     SpriteCatchFade,
		Category: f.Category,
		Image:    f.Image,
		Color:    itemColor(f.Category, f.Kind),
		X:        cx - w/2,
		Y:        cy - h/2,
		Width:    w,
		Height:   h,
		Alpha:    1 - f.Progress(),
	}
}

func itemColor(c Category, kind int) string {
	if c == Hazard {
		return Theme.HazardColor
	}
	colors := Theme.CollectibleColors
	if kind < 0 {
		kind = 0
	}
	return colors[kind%len(colors)]
}
