package game

import (
	"testing"
)

func TestConfigPick_WeightedBands(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name string
		draw float64
		want int
	}{
		{"draw 10 lands in hazard band", 10, 0},
		{"draw 0 lands in hazard band", 0, 0},
		{"draw 25 starts collectible band", 25, 1},
		{"draw 50 lands in collectible band", 50, 1},
		{"draw 99.9 lands in collectible band", 99.9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.Pick(tt.draw); got != tt.want {
				t.Errorf("Pick(%v) = %d, want %d", tt.draw, got, tt.want)
			}
		})
	}
}

func TestConfigPick_PastLastBand(t *testing.T) {
	cfg := testConfig()
	cfg.Item.Items[1].SpawnChance = 25 // bands cover [0, 50)

	if got := cfg.Pick(70); got != -1 {
		t.Errorf("Expected no entry for a draw past the last band, got %d", got)
	}
}

// TestSpawn_Scenario drives the spawner with fixed draws: 10 picks the
// hazard, 50 picks the collectible.
func TestSpawn_Scenario(t *testing.T) {
	tests := []struct {
		name     string
		draw     float64
		category Category
	}{
		{"draw 10 spawns hazard", 0.10, Hazard},
		{"draw 50 spawns collectible", 0.50, Collectible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Item.SpawnIntervalFactor = 0.8
			rng := &queueRNG{vals: []float64{tt.draw, 0.5}}
			g := newTestGame(t, cfg, WithRNG(rng))
			g.spawnTimer = 10

			g.Update(16)

			if g.Items.Len() != 1 {
				t.Fatalf("Expected one spawned item, got %d", g.Items.Len())
			}
			it := g.Items.At(0)
			if it.Category != tt.category {
				t.Errorf("Expected %s, got %s", tt.category, it.Category)
			}
			// x = 0.5 * (400 - 40)
			if it.X != 180 {
				t.Errorf("Expected x=180, got %f", it.X)
			}
			if it.Y != -it.Height {
				t.Errorf("Expected item just above the top edge, got y=%f", it.Y)
			}
			if g.spawnTimer != 0 {
				t.Errorf("Expected spawn timer reset to 0, got %f", g.spawnTimer)
			}
		})
	}
}

func TestSpawn_NoBandNoSpawn(t *testing.T) {
	cfg := testConfig()
	cfg.Item.SpawnIntervalFactor = 0.8
	cfg.Item.Items[1].SpawnChance = 25
	g := newTestGame(t, cfg, WithRNG(&queueRNG{vals: []float64{0.7}}))
	g.spawnTimer = 10

	g.Update(16)

	if g.Items.Len() != 0 {
		t.Errorf("Expected nothing to spawn, got %d items", g.Items.Len())
	}
	if g.spawnTimer != 0 {
		t.Errorf("Expected timer reset even without a spawn, got %f", g.spawnTimer)
	}
}

func TestSpawn_ZeroFactorNeverSpawns(t *testing.T) {
	g := newTestGame(t, testConfig(), WithRNG(&queueRNG{vals: []float64{0.5, 0.5}}))
	g.spawnTimer = 1e9

	g.Update(16)

	if g.Items.Len() != 0 {
		t.Errorf("Expected no spawn with a zero interval factor, got %d", g.Items.Len())
	}
}

// TestSpawn_IntervalFollowsSpeed checks the first spawn lands after
// 1/(speed*factor) seconds and the excess is dropped.
func TestSpawn_IntervalFollowsSpeed(t *testing.T) {
	cfg := testConfig()
	cfg.Item.SpawnIntervalFactor = 10 // interval ~0.1s at speed 1
	g := newTestGame(t, cfg, WithRNG(&queueRNG{vals: []float64{0.5, 0, 0.5, 0}}))

	for i := 0; i < 6; i++ {
		g.Update(16)
	}
	if g.Items.Len() != 0 {
		t.Fatalf("Expected no spawn before the interval, got %d", g.Items.Len())
	}

	g.Update(16) // 0.112s accumulated
	if g.Items.Len() != 1 {
		t.Fatalf("Expected a spawn after the interval, got %d", g.Items.Len())
	}
	if g.spawnTimer != 0 {
		t.Errorf("Expected excess time to be discarded, got %f", g.spawnTimer)
	}
}

func TestSpawn_PerEntrySizeAndNarrowViewport(t *testing.T) {
	cfg := testConfig()
	cfg.Item.Items[1].Width = 500
	cfg.Item.Items[1].Height = 60
	g := newTestGame(t, cfg, WithRNG(&queueRNG{vals: []float64{0.9}}))

	it := g.spawn(50)

	if it == nil {
		t.Fatal("Expected an item")
	}
	if it.Width != 500 || it.Height != 60 {
		t.Errorf("Expected per-entry size 500x60, got %fx%f", it.Width, it.Height)
	}
	if it.X != 0 {
		t.Errorf("Expected x=0 when the item is wider than the viewport, got %f", it.X)
	}
	if it.Penalty == nil || *it.Penalty != 5 {
		t.Errorf("Expected penalty override 5 to be copied")
	}
}
