package game

import (
	"testing"
)

func TestKeyMap_WASDStyleAliases(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected Command
	}{
		{"A maps to Left", 65, CmdLeft},
		{"D maps to Right", 68, CmdRight},
		{"Esc maps to Pause", 27, CmdPause},
		{"Space maps to Pause", 32, CmdPause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if mapped, ok := KeyMap[tt.input]; !ok || mapped != tt.expected {
				t.Errorf("Expected KeyMap[%d] to be %d, got %d", tt.input, tt.expected, mapped)
			}
		})
	}
}

func TestTranslateKeyCode(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected Command
	}{
		{"Arrow Left", 37, CmdLeft},
		{"Arrow Right", 39, CmdRight},
		{"P", 80, CmdPause},
		{"R", 82, CmdReset},
		{"M", 77, CmdMute},
		{"F10", 121, CmdStats},
		{"Unknown key", 999, CmdNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TranslateKeyCode(tt.input)
			if result != tt.expected {
				t.Errorf("TranslateKeyCode(%d) = %d, expected %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestApply_Nudge(t *testing.T) {
	g := newTestGame(t, testConfig())

	g.Apply(CmdRight)
	if g.Catcher.TargetX != 140+KeyNudge {
		t.Errorf("Expected target %f, got %f", 140+KeyNudge, g.Catcher.TargetX)
	}

	for i := 0; i < 20; i++ {
		g.Apply(CmdLeft)
	}
	if g.Catcher.TargetX != 0 {
		t.Errorf("Expected nudges to clamp at 0, got %f", g.Catcher.TargetX)
	}
}

func TestApply_PauseCycle(t *testing.T) {
	g := newTestGame(t, testConfig())

	g.Apply(CmdPause)
	if g.RunState() != Running {
		t.Fatalf("Expected pause key to start an idle game, got %s", g.RunState())
	}
	g.Apply(CmdPause)
	if g.RunState() != Paused {
		t.Fatalf("Expected paused, got %s", g.RunState())
	}
	g.Apply(CmdPause)
	if g.RunState() != Running {
		t.Fatalf("Expected running again, got %s", g.RunState())
	}

	g.GameOver()
	if g.Apply(CmdPause) {
		t.Error("Expected pause to be ignored after game over")
	}
}

func TestApply_ResetRestarts(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.Start()
	g.GameOver()

	g.Apply(CmdReset)

	if g.RunState() != Running {
		t.Errorf("Expected a fresh running game, got %s", g.RunState())
	}
}

func TestApply_HostCommandsNotHandled(t *testing.T) {
	g := newTestGame(t, testConfig())
	for _, cmd := range []Command{CmdMute, CmdQuit, CmdNone} {
		if g.Apply(cmd) {
			t.Errorf("Expected command %d to be left to the host", cmd)
		}
	}
}
