package sim

import (
	"fmt"
	"time"
)

// View is a read-only projection of a run into display scalars. It is
// observed between ticks; it never mutates the world.
type View struct {
	world *World
}

// NewView wraps a world for read-side consumers.
func NewView(w *World) View {
	return View{world: w}
}

// Score is the player's x position. Fresh runs score negative because
// the player starts inside the buffer zone left of the camera.
func (v View) Score() float32 {
	return v.world.Player.X
}

// ScoreLabel renders the score to two decimal places.
func (v View) ScoreLabel() string {
	return fmt.Sprintf("Score: %.2f", v.world.Player.X)
}

// SeedLabel formats the level seed the way it is advertised for sharing.
func (v View) SeedLabel() string {
	return fmt.Sprintf("Seed: %#x", v.world.Level.Seed)
}

// Collided reports the terminal flag; the host transitions to the
// game-over screen when it turns true.
func (v View) Collided() bool {
	return v.world.Player.Collided
}

// PlayerPosition returns the player center.
func (v View) PlayerPosition() (x, y float32) {
	return v.world.Player.X, v.world.Player.Y
}

// CameraX returns the camera's scroll position.
func (v View) CameraX() float32 {
	return v.world.Camera.X
}

// Ticks returns the number of completed simulation steps.
func (v View) Ticks() uint64 {
	return v.world.Ticks
}

// FPSLabel renders a host-supplied moving-average frame rate. With no
// sample yet the value stays blank, mirroring the HUD before the first
// measurement window closes.
func FPSLabel(avg float64, ok bool) string {
	if !ok {
		return "FPS: "
	}
	return fmt.Sprintf("FPS: %.2f", avg)
}

// CadenceError reports a host driving the fixed-timestep loop off its
// 60 Hz contract. Diagnostic only: the simulation never corrects for a
// bad cadence.
type CadenceError struct {
	Want time.Duration
	Got  time.Duration
}

func (e *CadenceError) Error() string {
	return fmt.Sprintf("sim: tick cadence %v, want %v", e.Got, e.Want)
}
