package game

import (
	"time"

	"github.com/simukka/catch-it/common"
)

// RNG is the single source of randomness in the simulation.
type RNG interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// State is the per-tick snapshot handed to the UI. Elapsed is in seconds and
// keeps the "timer" key existing pages read.
type State struct {
	Score           int     `json:"score"`
	Elapsed         float64 `json:"timer"`
	SpeedMultiplier float64 `json:"speed"`
	GameOver        bool    `json:"gameOver"`
}

// Hooks are the outbound notifications. Every field is optional.
type Hooks struct {
	// OnState runs once at the end of every tick, and on Reset and GameOver.
	OnState func(State)
	// OnCatch runs when a collectible lands in the catcher.
	OnCatch func(FallingEntity)
	// OnHazard runs when the hazard that ends the run touches the catcher.
	OnHazard func(FallingEntity)
	// OnMiss runs when a collectible falls past the bottom edge.
	OnMiss func(item FallingEntity, penalty int)
	// OnGameOver runs once per run, after the terminal OnState.
	OnGameOver func(State)
}

// Controls is what a host page or terminal needs to drive a run.
type Controls interface {
	Start()
	Stop()
	Pause()
	Resume()
	Reset()
	SetupCanvas(width, height, dpr float64) error
}

var _ Controls = (*Game)(nil)

// DefaultViewport is used until the host calls SetupCanvas.
var DefaultViewport = Viewport{Width: 480, Height: 800, DPR: 1}

// Game holds the complete simulation state.
type Game struct {
	Config  Config
	Catcher Catcher

	// Entity store
	Items  *Pool[FallingEntity]
	Popups *Pool[ScorePopup]
	Fades  *Pool[CatchFade]

	Stats *StatsOverlay

	// Run state
	score      int
	elapsed    float64
	speed      float64
	spawnTimer float64
	paused     bool
	over       bool
	running    bool
	inTick     bool
	generation int // bumped by every reset

	viewport    Viewport
	rng         RNG
	seeded      *common.SeededRNG
	baseSeed    uint32
	runs        int
	hooks       Hooks
	pausedInput bool

	// Frame driving
	frames    FrameSource
	surface   Surface
	clock     FrameClock
	scheduled bool
}

// Option configures a Game at construction.
type Option func(*Game)

// WithRNG injects the spawn RNG. The game never reseeds an injected RNG.
func WithRNG(rng RNG) Option {
	return func(g *Game) {
		g.rng = rng
		g.seeded = nil
	}
}

// WithSeed spawns from a Mulberry32 generator. Each run gets its own seed
// derived from seed and the run counter.
func WithSeed(seed uint32) Option {
	return func(g *Game) {
		g.seeded = common.NewSeededRNG(seed)
		g.baseSeed = seed
		g.rng = g.seeded
	}
}

// WithHooks installs the outbound notifications.
func WithHooks(h Hooks) Option {
	return func(g *Game) { g.hooks = h }
}

// WithFrameSource lets Start/Resume drive the game from host frames.
func WithFrameSource(fs FrameSource) Option {
	return func(g *Game) { g.frames = fs }
}

// WithSurface sets the surface drawn after each driven frame.
func WithSurface(s Surface) Option {
	return func(g *Game) { g.surface = s }
}

// WithPausedInput makes HandleDrag accept input while paused.
func WithPausedInput(accept bool) Option {
	return func(g *Game) { g.pausedInput = accept }
}

// WithViewport sets the initial viewport.
func WithViewport(width, height, dpr float64) Option {
	return func(g *Game) { g.viewport = Viewport{Width: width, Height: height, DPR: dpr} }
}

// NewGame validates cfg and builds an idle game.
func NewGame(cfg Config, opts ...Option) (*Game, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		Config:   cfg,
		Items:    NewPool[FallingEntity](32),
		Popups:   NewPool[ScorePopup](16),
		Fades:    NewPool[CatchFade](8),
		Stats:    NewStatsOverlay(),
		viewport: DefaultViewport,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		WithSeed(uint32(time.Now().UnixNano()))(g)
	}
	g.clock.MaxDelta = cfg.MaxFrameDeltaMs

	g.Catcher = Catcher{
		Width:  cfg.Basket.Width,
		Height: cfg.Basket.Height,
		Image:  cfg.Basket.Image,
	}
	if err := g.SetupCanvas(g.viewport.Width, g.viewport.Height, g.viewport.DPR); err != nil {
		return nil, err
	}
	g.resetRun()
	return g, nil
}

// Seed returns the spawn seed of the current run, or 0 for an injected RNG.
func (g *Game) Seed() uint32 {
	if g.seeded == nil {
		return 0
	}
	return g.seeded.Seed()
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Elapsed returns the run time in seconds.
func (g *Game) Elapsed() float64 { return g.elapsed }

// SpeedMultiplier returns the multiplier applied to all fall speeds.
func (g *Game) SpeedMultiplier() float64 { return g.speed }

// IsPaused reports whether updates are frozen.
func (g *Game) IsPaused() bool { return g.paused }

// IsOver reports whether the run has ended.
func (g *Game) IsOver() bool { return g.over }

// Viewport returns the current drawing area.
func (g *Game) Viewport() Viewport { return g.viewport }

// Snapshot returns the state the UI binds to.
func (g *Game) Snapshot() State {
	return State{
		Score:           g.score,
		Elapsed:         g.elapsed,
		SpeedMultiplier: g.speed,
		GameOver:        g.over,
	}
}

// Update advances the world by deltaMs milliseconds.
func (g *Game) Update(deltaMs float64) {
	if g.paused || g.over {
		return
	}

	deltaMs = g.clampDelta(deltaMs)
	dt := deltaMs / 1000

	g.inTick = true

	g.smoothCatcher(dt)

	g.elapsed += dt
	g.speed = g.speedAt(g.elapsed)

	g.Items.ForEach(func(it *FallingEntity, _ int) {
		it.Y += it.Speed * g.speed * dt
	})

	g.updatePopups(deltaMs, dt)
	g.updateFades(deltaMs)

	gen := g.generation
	g.checkCollisions(dt)
	if g.generation != gen {
		// A hook reset the run; Reset has already reported the fresh state.
		return
	}
	if !g.over {
		g.spawnItems(dt)
	}
	g.removeOffScreenItems()

	g.inTick = false

	g.notify()
	if g.over {
		g.endRun()
	}
}

// clampDelta enforces the large-step policy and drops bogus deltas.
func (g *Game) clampDelta(deltaMs float64) float64 {
	if !(deltaMs > 0) {
		return 0
	}
	if g.Config.MaxFrameDeltaMs > 0 && deltaMs > g.Config.MaxFrameDeltaMs {
		return g.Config.MaxFrameDeltaMs
	}
	return deltaMs
}

// speedAt is strictly increasing in elapsed and has no upper bound.
func (g *Game) speedAt(elapsed float64) float64 {
	return g.Config.GameSpeed.Base + elapsed/g.Config.GameSpeed.AccelerationFactor
}

// updatePopups fades and lifts popups, dropping the ones that are gone.
func (g *Game) updatePopups(deltaMs, dt float64) {
	g.Popups.ForEachReverse(func(p *ScorePopup, i int) {
		p.Y -= PopupRiseSpeed * dt
		if p.Lifetime > 0 {
			p.Alpha -= deltaMs / p.Lifetime
		} else {
			p.Alpha = 0
		}
		if p.Alpha <= 0 {
			g.Popups.Release(i)
		}
	})
}

func (g *Game) updateFades(deltaMs float64) {
	g.Fades.ForEachReverse(func(f *CatchFade, i int) {
		f.T += deltaMs
		if f.T >= f.Duration {
			g.Fades.Release(i)
		}
	})
}

func (g *Game) notify() {
	if g.hooks.OnState != nil {
		g.hooks.OnState(g.Snapshot())
	}
}

// endRun tells the host the run is finished so it can drop input.
func (g *Game) endRun() {
	if g.scheduled && g.frames != nil {
		g.frames.Cancel()
	}
	g.scheduled = false
	if g.hooks.OnGameOver != nil {
		g.hooks.OnGameOver(g.Snapshot())
	}
}
