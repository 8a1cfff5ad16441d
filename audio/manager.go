package audio

import (
	"sync"

	"github.com/simukka/catch-it/game"
)

// Player is an output backend. Implementations must be safe to call before
// or after they are ready; missing output is not an error for the game.
type Player interface {
	Play(effect *SoundEffect)
	StartLoop(effect *SoundEffect)
	StopLoop()
	SetVolume(volume float64)
	Close()
}

// AudioManager maps game events to sound cues.
type AudioManager struct {
	mu      sync.Mutex
	player  Player
	cfg     Config
	muted   bool
	looping bool
}

// NewAudioManager wraps player. A nil player gives a silent manager.
func NewAudioManager(player Player, cfg Config) *AudioManager {
	am := &AudioManager{player: player, cfg: cfg}
	if player != nil {
		player.SetVolume(cfg.MasterVolume)
	}
	return am
}

func (am *AudioManager) active() bool {
	return am.player != nil && am.cfg.Enabled && !am.muted
}

// Play triggers a one-shot cue.
func (am *AudioManager) Play(cue Cue) {
	am.mu.Lock()
	defer am.mu.Unlock()

	if !am.active() {
		return
	}
	if effect := GetSoundEffect(cue); effect != nil {
		am.player.Play(effect)
	}
}

// StartTheme starts the background loop if enabled.
func (am *AudioManager) StartTheme() {
	am.mu.Lock()
	defer am.mu.Unlock()

	if !am.cfg.Theme || am.looping || !am.active() {
		return
	}
	am.player.StartLoop(GetSoundEffect(CueTheme))
	am.looping = true
}

// StopTheme stops the background loop.
func (am *AudioManager) StopTheme() {
	am.mu.Lock()
	defer am.mu.Unlock()

	am.stopThemeLocked()
}

func (am *AudioManager) stopThemeLocked() {
	if !am.looping {
		return
	}
	if am.player != nil {
		am.player.StopLoop()
	}
	am.looping = false
}

// ToggleMute flips the mute flag and returns the new value. Muting also
// stops the theme; unmuting does not restart it.
func (am *AudioManager) ToggleMute() bool {
	am.mu.Lock()
	defer am.mu.Unlock()

	am.muted = !am.muted
	if am.muted {
		am.stopThemeLocked()
	}
	game.Debug("Audio muted:", am.muted)
	return am.muted
}

// Muted reports the mute flag.
func (am *AudioManager) Muted() bool {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.muted
}

// Close stops all sound and releases the backend.
func (am *AudioManager) Close() {
	am.mu.Lock()
	defer am.mu.Unlock()

	am.stopThemeLocked()
	if am.player != nil {
		am.player.Close()
	}
}

// Hooks returns next with audio cues added in front of its callbacks.
func (am *AudioManager) Hooks(next game.Hooks) game.Hooks {
	h := next
	h.OnCatch = func(e game.FallingEntity) {
		am.Play(CueCatch)
		if next.OnCatch != nil {
			next.OnCatch(e)
		}
	}
	h.OnMiss = func(e game.FallingEntity, penalty int) {
		am.Play(CueMiss)
		if next.OnMiss != nil {
			next.OnMiss(e, penalty)
		}
	}
	h.OnGameOver = func(s game.State) {
		am.StopTheme()
		am.Play(CueGameOver)
		if next.OnGameOver != nil {
			next.OnGameOver(s)
		}
	}
	return h
}
