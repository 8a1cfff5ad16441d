package audio

import (
	"os"
	"strconv"
)

// Config controls audio output.
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
	Theme        bool // loop the theme while a run is active
}

// DefaultConfig returns audio on at 70% volume.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.7,
		SampleRate:   SampleRate,
		Theme:        true,
	}
}

// LoadConfig reads overrides from the environment:
// CATCHIT_AUDIO_ENABLED, CATCHIT_MASTER_VOLUME (0-100), CATCHIT_SAMPLE_RATE
// and CATCHIT_THEME.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("CATCHIT_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume is given as 0-100
	if volume := os.Getenv("CATCHIT_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	if sampleRate := os.Getenv("CATCHIT_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if theme := os.Getenv("CATCHIT_THEME"); theme != "" {
		if val, err := strconv.ParseBool(theme); err == nil {
			cfg.Theme = val
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
