package audio

import (
	"testing"

	"github.com/simukka/catch-it/game"
)

type fakePlayer struct {
	played []Cue
	loops  int
	stops  int
	volume float64
	closed bool
}

func (p *fakePlayer) Play(e *SoundEffect)      { p.played = append(p.played, e.ID) }
func (p *fakePlayer) StartLoop(e *SoundEffect) { p.loops++ }
func (p *fakePlayer) StopLoop()                { p.stops++ }
func (p *fakePlayer) SetVolume(v float64)      { p.volume = v }
func (p *fakePlayer) Close()                   { p.closed = true }

func TestAudioManager_AppliesVolume(t *testing.T) {
	p := &fakePlayer{}
	NewAudioManager(p, DefaultConfig())

	if p.volume != 0.7 {
		t.Errorf("Expected volume 0.7, got %f", p.volume)
	}
}

func TestAudioManager_HooksChain(t *testing.T) {
	p := &fakePlayer{}
	am := NewAudioManager(p, DefaultConfig())

	var catches, misses, overs int
	h := am.Hooks(game.Hooks{
		OnCatch:    func(game.FallingEntity) { catches++ },
		OnMiss:     func(game.FallingEntity, int) { misses++ },
		OnGameOver: func(game.State) { overs++ },
	})

	am.StartTheme()
	h.OnCatch(game.FallingEntity{})
	h.OnMiss(game.FallingEntity{}, 5)
	h.OnGameOver(game.State{GameOver: true})

	want := []Cue{CueCatch, CueMiss, CueGameOver}
	if len(p.played) != len(want) {
		t.Fatalf("Expected cues %v, got %v", want, p.played)
	}
	for i := range want {
		if p.played[i] != want[i] {
			t.Errorf("Cue %d: expected %d, got %d", i, want[i], p.played[i])
		}
	}
	if catches != 1 || misses != 1 || overs != 1 {
		t.Errorf("Expected wrapped hooks to run once each, got %d %d %d", catches, misses, overs)
	}
	if p.stops != 1 {
		t.Errorf("Expected game over to stop the theme, got %d stops", p.stops)
	}
}

func TestAudioManager_HooksWithoutNext(t *testing.T) {
	am := NewAudioManager(&fakePlayer{}, DefaultConfig())
	h := am.Hooks(game.Hooks{})

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Hooks panicked without downstream callbacks: %v", r)
		}
	}()

	h.OnCatch(game.FallingEntity{})
	h.OnMiss(game.FallingEntity{}, 1)
	h.OnGameOver(game.State{})
}

func TestAudioManager_Mute(t *testing.T) {
	p := &fakePlayer{}
	am := NewAudioManager(p, DefaultConfig())
	am.StartTheme()

	if !am.ToggleMute() {
		t.Fatal("Expected first toggle to mute")
	}
	am.Play(CueCatch)
	am.StartTheme()

	if len(p.played) != 0 {
		t.Errorf("Expected no cues while muted, got %v", p.played)
	}
	if p.loops != 1 || p.stops != 1 {
		t.Errorf("Expected mute to stop the theme once, loops=%d stops=%d", p.loops, p.stops)
	}

	if am.ToggleMute() {
		t.Fatal("Expected second toggle to unmute")
	}
	am.Play(CueCatch)
	if len(p.played) != 1 {
		t.Errorf("Expected cue after unmute, got %v", p.played)
	}
}

func TestAudioManager_ThemeIdempotent(t *testing.T) {
	p := &fakePlayer{}
	am := NewAudioManager(p, DefaultConfig())

	am.StartTheme()
	am.StartTheme()
	am.StopTheme()
	am.StopTheme()

	if p.loops != 1 || p.stops != 1 {
		t.Errorf("Expected one start and one stop, got %d and %d", p.loops, p.stops)
	}
}

func TestAudioManager_Disabled(t *testing.T) {
	p := &fakePlayer{}
	cfg := DefaultConfig()
	cfg.Enabled = false
	am := NewAudioManager(p, cfg)

	am.Play(CueMiss)
	am.StartTheme()

	if len(p.played) != 0 || p.loops != 0 {
		t.Errorf("Expected disabled audio to stay silent")
	}
}

func TestAudioManager_NilPlayer(t *testing.T) {
	am := NewAudioManager(nil, DefaultConfig())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Nil player panicked: %v", r)
		}
	}()

	am.Play(CueCatch)
	am.StartTheme()
	am.ToggleMute()
	am.Close()
}

func TestAudioManager_Close(t *testing.T) {
	p := &fakePlayer{}
	am := NewAudioManager(p, DefaultConfig())
	am.StartTheme()

	am.Close()

	if !p.closed || p.stops != 1 {
		t.Errorf("Expected close to stop the theme and close the player")
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("CATCHIT_AUDIO_ENABLED", "false")
	t.Setenv("CATCHIT_MASTER_VOLUME", "150")
	t.Setenv("CATCHIT_SAMPLE_RATE", "22050")
	t.Setenv("CATCHIT_THEME", "0")

	cfg := LoadConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.SampleRate)
	}
	if cfg.Theme {
		t.Error("Expected theme disabled")
	}
}

func TestLoadConfig_IgnoresGarbage(t *testing.T) {
	t.Setenv("CATCHIT_MASTER_VOLUME", "loud")
	t.Setenv("CATCHIT_SAMPLE_RATE", "-1")

	cfg := LoadConfig()
	def := DefaultConfig()

	if cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults for invalid values, got %+v", cfg)
	}
}
