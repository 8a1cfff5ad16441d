package audio

import "math"

// SampleRate is the rate every effect is rendered at.
const SampleRate = 44100

// WaveType represents the oscillator waveform
type WaveType int

const (
	WaveSquare   WaveType = 0
	WaveSawtooth WaveType = 1
	WaveSine     WaveType = 2
	WaveNoise    WaveType = 3
)

func (w WaveType) String() string {
	switch w {
	case WaveSquare:
		return "Square"
	case WaveSawtooth:
		return "Sawtooth"
	case WaveSine:
		return "Sine"
	case WaveNoise:
		return "Noise"
	default:
		return "Unknown"
	}
}

// Cue identifies a game sound.
type Cue int

const (
	CueCatch Cue = iota
	CueMiss
	CueGameOver
	CueTheme
)

// SoundEffect is a game sound described by an sfxr settings string.
type SoundEffect struct {
	ID          Cue
	Name        string
	Description string

	// Settings is the comma-separated sfxr parameter list.
	Settings string

	// Notes, when set, plays the settings once per entry with the start
	// frequency replaced, back to back. Values are sfxr frequencies; see Note.
	Notes []float64
}

// Params parses the effect's settings.
func (s *SoundEffect) Params() SfxrParams {
	var p SfxrParams
	p.ParseSettingsString(s.Settings)
	return p
}

// Note converts a pitch in Hz to an sfxr start frequency.
func Note(hz float64) float64 {
	return math.Sqrt(math.Max(0, hz/(8*SampleRate/100)-0.001))
}

// Render synthesizes the whole effect as mono samples at SampleRate. Noise
// is seeded from the cue, so the same effect always renders identically.
func Render(effect *SoundEffect) []float32 {
	synth := NewSfxrSynth(uint32(effect.ID) + 1)
	synth.Params.ParseSettingsString(effect.Settings)

	notes := effect.Notes
	if len(notes) == 0 {
		notes = []float64{synth.Params.StartFrequency}
	}

	var out []float32
	for _, note := range notes {
		synth.Params.StartFrequency = note
		length := synth.TotalReset()
		start := len(out)
		out = append(out, make([]float32, length)...)
		written := synth.SynthWave(out[start:])
		out = out[:start+written]
	}
	return out
}
