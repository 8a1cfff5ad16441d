package game

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}

	total := 0.0
	for _, e := range cfg.Item.Items {
		total += e.SpawnChance
	}
	if total != 100 {
		t.Errorf("Expected default weights to sum to 100, got %f", total)
	}
}

func TestCategory_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{"bomb name", `"bomb"`, Hazard, false},
		{"point name", `"point"`, Collectible, false},
		{"hazard name", `"Hazard"`, Hazard, false},
		{"numeric hazard", `1`, Hazard, false},
		{"numeric collectible", `2`, Collectible, false},
		{"quoted number", `"2"`, Collectible, false},
		{"unknown", `"rock"`, 0, true},
		{"unknown number", `3`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Category
			err := json.Unmarshal([]byte(tt.input), &c)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if c != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, c)
			}
		})
	}
}

func TestConfig_DecodeHostedPayload(t *testing.T) {
	payload := `{
		"basket": {"width": 100, "height": 60, "initialYOffset": 80, "basketImage": "bag.png"},
		"item": {
			"width": 32, "height": 32, "spawnIntervalFactor": 1, "defaultDeduct": 4,
			"items": [
				{"type": "bomb", "value": 0, "speed": 90, "spawnChance": 20},
				{"type": "point", "value": 15, "speed": 110, "spawnChance": 80, "deduct": 2, "image": "gem.png"}
			]
		},
		"gameSpeed": {"base": 1, "accelerationFactor": 12}
	}`

	var cfg Config
	if err := json.Unmarshal([]byte(payload), &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.Basket.Image != "bag.png" {
		t.Errorf("Expected basket image bag.png, got %q", cfg.Basket.Image)
	}
	if cfg.Item.Items[0].Type != Hazard || cfg.Item.Items[1].Type != Collectible {
		t.Errorf("Unexpected categories %v", cfg.Item.Items)
	}
	if d := cfg.Item.Items[1].Deduct; d == nil || *d != 2 {
		t.Errorf("Expected deduct override 2")
	}
	if cfg.Item.Items[0].Deduct != nil {
		t.Errorf("Expected no deduct override on the bomb")
	}
}

func TestConfig_EntrySize(t *testing.T) {
	cfg := DefaultConfig()

	w, h := cfg.EntrySize(CatalogEntry{})
	if w != 40 || h != 40 {
		t.Errorf("Expected shared size 40x40, got %fx%f", w, h)
	}

	w, h = cfg.EntrySize(CatalogEntry{Width: 64})
	if w != 64 || h != 40 {
		t.Errorf("Expected 64x40, got %fx%f", w, h)
	}
}
