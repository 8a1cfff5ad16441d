package game

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid game config")

// Category separates entities that end the run from entities that score.
type Category int

const (
	Hazard      Category = 1
	Collectible Category = 2
)

func (c Category) String() string {
	switch c {
	case Hazard:
		return "hazard"
	case Collectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// UnmarshalText accepts the names used by the hosted configs ("bomb",
// "point") as well as the numeric codes 1 and 2.
func (c *Category) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "hazard", "bomb", "1":
		*c = Hazard
	case "collectible", "point", "2":
		*c = Collectible
	default:
		return fmt.Errorf("%w: unknown item type %q", ErrInvalidConfig, text)
	}
	return nil
}

// UnmarshalJSON handles both quoted names and bare numbers.
func (c *Category) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return c.UnmarshalText([]byte(s))
	}
	return c.UnmarshalText(data)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// CatcherConfig describes the basket.
type CatcherConfig struct {
	Width          float64 `json:"width" toml:"width"`
	Height         float64 `json:"height" toml:"height"`
	InitialYOffset float64 `json:"initialYOffset" toml:"initialYOffset"`
	Image          string  `json:"basketImage,omitempty" toml:"basketImage"`
}

// CatalogEntry is one spawnable item kind.
type CatalogEntry struct {
	Type        Category `json:"type" toml:"type"`
	Value       int      `json:"value" toml:"value"`
	Speed       float64  `json:"speed" toml:"speed"`
	SpawnChance float64  `json:"spawnChance" toml:"spawnChance"`
	Width       float64  `json:"width,omitempty" toml:"width"`
	Height      float64  `json:"height,omitempty" toml:"height"`
	Deduct      *int     `json:"deduct,omitempty" toml:"deduct"`
	Image       string   `json:"image,omitempty" toml:"image"`
}

// ItemConfig holds the catalog and the values shared by all entries.
type ItemConfig struct {
	Width               float64        `json:"width" toml:"width"`
	Height              float64        `json:"height" toml:"height"`
	SpawnIntervalFactor float64        `json:"spawnIntervalFactor" toml:"spawnIntervalFactor"`
	DefaultDeduct       int            `json:"defaultDeduct" toml:"defaultDeduct"`
	Items               []CatalogEntry `json:"items" toml:"items"`
}

// SpeedConfig drives the speed multiplier: base + elapsed/accelerationFactor.
type SpeedConfig struct {
	Base               float64 `json:"base" toml:"base"`
	AccelerationFactor float64 `json:"accelerationFactor" toml:"accelerationFactor"`
}

// Config is the immutable input of a Game. Zero tuning fields fall back to
// the package defaults when the game is built.
type Config struct {
	BackgroundImage string        `json:"backgroundImage,omitempty" toml:"backgroundImage"`
	Basket          CatcherConfig `json:"basket" toml:"basket"`
	Item            ItemConfig    `json:"item" toml:"item"`
	GameSpeed       SpeedConfig   `json:"gameSpeed" toml:"gameSpeed"`

	SmoothingRate   float64 `json:"smoothingRate,omitempty" toml:"smoothingRate"`
	PopupLifetimeMs float64 `json:"popupLifetimeMs,omitempty" toml:"popupLifetimeMs"`
	CatchFadeMs     float64 `json:"catchFadeMs,omitempty" toml:"catchFadeMs"`
	MaxFrameDeltaMs float64 `json:"maxFrameDeltaMs,omitempty" toml:"maxFrameDeltaMs"`
}

func deduct(n int) *int { return &n }

// DefaultConfig returns the stock catalog: one bomb and three point items.
func DefaultConfig() Config {
	return Config{
		Basket: CatcherConfig{
			Width:          120,
			Height:         70,
			InitialYOffset: 100,
			Image:          "basket.png",
		},
		Item: ItemConfig{
			Width:               40,
			Height:              40,
			SpawnIntervalFactor: 0.8,
			DefaultDeduct:       10,
			Items: []CatalogEntry{
				{Type: Hazard, Value: 0, Speed: 100, SpawnChance: 25, Image: "bomb.png"},
				{Type: Collectible, Value: 10, Speed: 80, SpawnChance: 40, Deduct: deduct(5), Image: "blue.png"},
				{Type: Collectible, Value: 20, Speed: 120, SpawnChance: 25, Deduct: deduct(10), Image: "green.png"},
				{Type: Collectible, Value: 30, Speed: 150, SpawnChance: 10, Deduct: deduct(15), Image: "purple.png"},
			},
		},
		GameSpeed: SpeedConfig{
			Base:               1,
			AccelerationFactor: 10,
		},
		SmoothingRate:   DefaultSmoothingRate,
		PopupLifetimeMs: DefaultPopupLifetimeMs,
		CatchFadeMs:     DefaultCatchFadeMs,
		MaxFrameDeltaMs: DefaultMaxFrameDeltaMs,
	}
}

// withDefaults fills unset tuning fields. CatchFadeMs is left alone since
// zero disables the fade.
func (c Config) withDefaults() Config {
	if c.SmoothingRate == 0 {
		c.SmoothingRate = DefaultSmoothingRate
	}
	if c.PopupLifetimeMs == 0 {
		c.PopupLifetimeMs = DefaultPopupLifetimeMs
	}
	if c.MaxFrameDeltaMs == 0 {
		c.MaxFrameDeltaMs = DefaultMaxFrameDeltaMs
	}
	return c
}

// EntrySize returns the size of a catalog entry, falling back to the shared
// item size.
func (c Config) EntrySize(e CatalogEntry) (w, h float64) {
	w, h = e.Width, e.Height
	if w == 0 {
		w = c.Item.Width
	}
	if h == 0 {
		h = c.Item.Height
	}
	return w, h
}

// Validate reports the first structural problem with the config.
func (c Config) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidConfig}, args...)...)
	}
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

	if !finite(c.Basket.Width) || c.Basket.Width <= 0 ||
		!finite(c.Basket.Height) || c.Basket.Height <= 0 {
		return invalid("basket size must be positive, got %vx%v", c.Basket.Width, c.Basket.Height)
	}
	if !finite(c.Basket.InitialYOffset) || c.Basket.InitialYOffset < 0 {
		return invalid("basket initialYOffset must be non-negative, got %v", c.Basket.InitialYOffset)
	}
	if !finite(c.Item.Width) || c.Item.Width < 0 || !finite(c.Item.Height) || c.Item.Height < 0 {
		return invalid("item size must be non-negative, got %vx%v", c.Item.Width, c.Item.Height)
	}
	if !finite(c.Item.SpawnIntervalFactor) || c.Item.SpawnIntervalFactor < 0 {
		return invalid("spawnIntervalFactor must be non-negative, got %v", c.Item.SpawnIntervalFactor)
	}
	if c.Item.DefaultDeduct < 0 {
		return invalid("defaultDeduct must be non-negative, got %d", c.Item.DefaultDeduct)
	}
	if len(c.Item.Items) == 0 {
		return invalid("item catalog is empty")
	}
	for i, e := range c.Item.Items {
		if e.Type != Hazard && e.Type != Collectible {
			return invalid("item %d: unknown type %d", i, int(e.Type))
		}
		if !finite(e.Speed) || e.Speed < 0 {
			return invalid("item %d: speed must be non-negative, got %v", i, e.Speed)
		}
		if !finite(e.SpawnChance) || e.SpawnChance < 0 {
			return invalid("item %d: spawnChance must be non-negative, got %v", i, e.SpawnChance)
		}
		if e.Deduct != nil && *e.Deduct < 0 {
			return invalid("item %d: deduct must be non-negative, got %d", i, *e.Deduct)
		}
		if e.Value < 0 {
			return invalid("item %d: value must be non-negative, got %d", i, e.Value)
		}
		w, h := c.EntrySize(e)
		if !finite(w) || w <= 0 || !finite(h) || h <= 0 {
			return invalid("item %d: size must be positive, got %vx%v", i, w, h)
		}
	}
	if !finite(c.GameSpeed.Base) || c.GameSpeed.Base < 0 {
		return invalid("gameSpeed base must be non-negative, got %v", c.GameSpeed.Base)
	}
	if !finite(c.GameSpeed.AccelerationFactor) || c.GameSpeed.AccelerationFactor <= 0 {
		return invalid("gameSpeed accelerationFactor must be positive, got %v", c.GameSpeed.AccelerationFactor)
	}
	if !finite(c.SmoothingRate) || c.SmoothingRate < 0 {
		return invalid("smoothingRate must be non-negative, got %v", c.SmoothingRate)
	}
	if !finite(c.PopupLifetimeMs) || c.PopupLifetimeMs < 0 {
		return invalid("popupLifetimeMs must be non-negative, got %v", c.PopupLifetimeMs)
	}
	if !finite(c.CatchFadeMs) || c.CatchFadeMs < 0 {
		return invalid("catchFadeMs must be non-negative, got %v", c.CatchFadeMs)
	}
	if !finite(c.MaxFrameDeltaMs) || c.MaxFrameDeltaMs < 0 {
		return invalid("maxFrameDeltaMs must be non-negative, got %v", c.MaxFrameDeltaMs)
	}
	return nil
}
