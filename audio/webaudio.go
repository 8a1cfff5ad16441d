//go:build js

package audio

import (
	"github.com/gopherjs/gopherjs/js"
)

// WebAudioPlayer plays cues through the Web Audio API. Each effect is
// rendered once by the sfxr synth into an AudioBuffer and replayed from a
// buffer source.
type WebAudioPlayer struct {
	ctx        *js.Object
	masterGain *js.Object
	buffers    map[Cue]*js.Object
	loopSource *js.Object
	volume     float64
	ready      bool
}

// NewWebAudioPlayer creates a player. Call Init from a user gesture.
func NewWebAudioPlayer() *WebAudioPlayer {
	return &WebAudioPlayer{
		buffers: make(map[Cue]*js.Object),
		volume:  0.7,
	}
}

// Init initializes the Web Audio context.
func (p *WebAudioPlayer) Init() {
	if p.ctx != nil {
		return
	}

	// Try to create AudioContext
	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		return
	}

	p.ctx = audioCtx.New()
	p.masterGain = p.ctx.Call("createGain")
	p.masterGain.Call("connect", p.ctx.Get("destination"))
	p.masterGain.Get("gain").Set("value", p.volume)
	p.ready = true
}

// Resume wakes a context suspended by the browser autoplay policy.
func (p *WebAudioPlayer) Resume() {
	if p.ctx != nil && p.ctx.Get("state").String() == "suspended" {
		p.ctx.Call("resume")
	}
}

// buffer renders effect on first use.
func (p *WebAudioPlayer) buffer(effect *SoundEffect) *js.Object {
	if buf, ok := p.buffers[effect.ID]; ok {
		return buf
	}
	samples := Render(effect)
	if len(samples) == 0 {
		return nil
	}
	// The context resamples buffers recorded at another rate.
	buf := p.ctx.Call("createBuffer", 1, len(samples), SampleRate)
	buf.Call("copyToChannel", js.Global.Get("Float32Array").New(samples), 0)
	p.buffers[effect.ID] = buf
	return buf
}

func (p *WebAudioPlayer) source(effect *SoundEffect) *js.Object {
	buf := p.buffer(effect)
	if buf == nil {
		return nil
	}
	p.Resume()
	source := p.ctx.Call("createBufferSource")
	source.Set("buffer", buf)
	source.Call("connect", p.masterGain)
	return source
}

// Play plays a one-shot effect.
func (p *WebAudioPlayer) Play(effect *SoundEffect) {
	if !p.ready || effect == nil {
		return
	}
	if source := p.source(effect); source != nil {
		source.Call("start", 0)
	}
}

// StartLoop loops effect until StopLoop.
func (p *WebAudioPlayer) StartLoop(effect *SoundEffect) {
	if !p.ready || effect == nil {
		return
	}
	p.StopLoop()
	source := p.source(effect)
	if source == nil {
		return
	}
	source.Set("loop", true)
	source.Call("start", 0)
	p.loopSource = source
}

// StopLoop stops the current loop.
func (p *WebAudioPlayer) StopLoop() {
	if p.loopSource == nil {
		return
	}
	p.loopSource.Call("stop")
	p.loopSource = nil
}

// SetVolume sets the master volume (0.0 to 1.0).
func (p *WebAudioPlayer) SetVolume(volume float64) {
	p.volume = clampVolume(volume)
	if p.masterGain == nil {
		return
	}
	p.masterGain.Get("gain").Set("value", p.volume)
}

// Close stops playback and releases the context.
func (p *WebAudioPlayer) Close() {
	p.StopLoop()
	if p.ctx != nil {
		p.ctx.Call("close")
	}
	p.ctx = nil
	p.masterGain = nil
	p.buffers = make(map[Cue]*js.Object)
	p.ready = false
}
