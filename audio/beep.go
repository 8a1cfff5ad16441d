//go:build !js

package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// BeepPlayer plays cues on the system speaker through a beep mixer.
type BeepPlayer struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	loop        *beep.Ctrl
	rendered    map[Cue][]float32
	initialized bool
}

// NewBeepPlayer creates a player. Call Initialize before anything is heard.
func NewBeepPlayer(sampleRate int) *BeepPlayer {
	mixer := &beep.Mixer{}
	return &BeepPlayer{
		rate:     beep.SampleRate(sampleRate),
		mixer:    mixer,
		master:   &effects.Volume{Streamer: mixer, Base: 2},
		rendered: make(map[Cue][]float32),
	}
}

// streamer renders effect on first use. Callers hold p.mu.
func (p *BeepPlayer) streamer(effect *SoundEffect, loop bool) beep.Streamer {
	samples, ok := p.rendered[effect.ID]
	if !ok {
		samples = Render(effect)
		p.rendered[effect.ID] = samples
	}
	return newSampleStreamer(samples, p.rate, loop)
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (p *BeepPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(p.rate, p.rate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.master)
	p.initialized = true
	return nil
}

// Play mixes in a one-shot effect.
func (p *BeepPlayer) Play(effect *SoundEffect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(p.streamer(effect, false))
	speaker.Unlock()
}

// StartLoop plays effect until StopLoop. A running loop is replaced.
func (p *BeepPlayer) StartLoop(effect *SoundEffect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	if p.loop != nil {
		p.loop.Paused = true
	}
	p.loop = &beep.Ctrl{Streamer: p.streamer(effect, true)}
	p.mixer.Add(p.loop)
	speaker.Unlock()
}

// StopLoop silences the loop started by StartLoop.
func (p *BeepPlayer) StopLoop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loop == nil {
		return
	}
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.loop.Paused = true
	p.loop.Streamer = nil
	p.loop = nil
}

// SetVolume sets the master volume in [0, 1].
func (p *BeepPlayer) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	applyVolume(p.master, volume)
}

// Close stops all sounds.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	if p.loop != nil {
		p.loop.Paused = true
		p.loop = nil
	}
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// applyVolume maps a linear volume onto a base-2 Volume effect.
// math.Log2(0) is -Inf, so zero volume is handled by Silent.
func applyVolume(v *effects.Volume, volume float64) {
	volume = clampVolume(volume)
	if volume <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(volume)
	v.Silent = false
}

// sampleStreamer plays a rendered effect, restarting at the end if loop is set.
type sampleStreamer struct {
	samples []float32
	pos     int
	loop    bool
}

// NewEffectStreamer streams effect at rate, forever if loop is set. Effects
// render at SampleRate and are resampled for other rates.
func NewEffectStreamer(effect *SoundEffect, rate beep.SampleRate, loop bool) beep.Streamer {
	return newSampleStreamer(Render(effect), rate, loop)
}

func newSampleStreamer(samples []float32, rate beep.SampleRate, loop bool) beep.Streamer {
	s := &sampleStreamer{samples: samples, loop: loop}
	if rate == SampleRate {
		return s
	}
	return beep.Resample(4, SampleRate, rate, s)
}

func (s *sampleStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if len(s.samples) == 0 {
		return 0, false
	}
	for n < len(samples) {
		if s.pos >= len(s.samples) {
			if !s.loop {
				break
			}
			s.pos = 0
		}
		val := float64(s.samples[s.pos])
		samples[n][0] = val
		samples[n][1] = val
		s.pos++
		n++
	}
	return n, n > 0
}

func (s *sampleStreamer) Err() error { return nil }
