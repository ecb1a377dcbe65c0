package sim

import (
	"testing"
	"time"
)

func TestViewLabels(t *testing.T) {
	lvl := &Level{Seed: 0x12345678}
	w := NewWorld(lvl)
	v := NewView(w)

	if got := v.ScoreLabel(); got != "Score: -5.00" {
		t.Errorf("ScoreLabel at start = %q", got)
	}
	if got := v.SeedLabel(); got != "Seed: 0x12345678" {
		t.Errorf("SeedLabel = %q", got)
	}

	w.Player.X = 12.3456
	if got := v.ScoreLabel(); got != "Score: 12.35" {
		t.Errorf("ScoreLabel = %q, want two decimals with rounding", got)
	}
}

func TestViewTracksWorld(t *testing.T) {
	w := NewWorld(emptyLevel())
	v := NewView(w)

	for i := 0; i < 30; i++ {
		w.Tick(Input{})
	}
	if v.Score() != w.Player.X {
		t.Errorf("Score = %v, want player.X %v", v.Score(), w.Player.X)
	}
	x, y := v.PlayerPosition()
	if x != w.Player.X || y != w.Player.Y {
		t.Errorf("PlayerPosition = (%v, %v), want (%v, %v)", x, y, w.Player.X, w.Player.Y)
	}
	if v.CameraX() != w.Camera.X {
		t.Errorf("CameraX = %v, want %v", v.CameraX(), w.Camera.X)
	}
	if v.Ticks() != w.Ticks {
		t.Errorf("Ticks = %d, want %d", v.Ticks(), w.Ticks)
	}
	if v.Collided() {
		t.Error("Collided reported on a clean run")
	}
}

func TestFPSLabel(t *testing.T) {
	if got := FPSLabel(0, false); got != "FPS: " {
		t.Errorf("FPSLabel without samples = %q", got)
	}
	if got := FPSLabel(59.994, true); got != "FPS: 59.99" {
		t.Errorf("FPSLabel = %q", got)
	}
}

func TestCadenceError(t *testing.T) {
	err := CadenceError{Want: time.Second / 60, Got: 20 * time.Millisecond}
	if err.Error() == "" {
		t.Error("CadenceError message is empty")
	}
}
