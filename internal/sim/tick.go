package sim

import "math"

// Input is the pair of button states sampled once per tick. Two presses
// inside the same 1/60 s window collapse into one.
type Input struct {
	Jump  bool
	Boost bool
}

// Collision identifies an obstacle the player overlapped this tick.
type Collision struct {
	Obstacle int // index into Level.Obstacles
}

// TickResult reports what one simulation step produced.
type TickResult struct {
	// Collisions holds one entry per overlapping obstacle. While the
	// frozen player keeps overlapping an obstacle, later ticks keep
	// reporting it; hosts that want a single game-over event deduplicate
	// on the Collided edge.
	Collisions []Collision
	Collided   bool
}

// horizontalSpeed selects the scroll speed shared by player and camera.
// Boost accelerates both together, keeping them in lockstep.
func horizontalSpeed(boost bool) float32 {
	if boost {
		return BoostVelocity
	}
	return ScrollVelocity
}

// Tick advances the world by one fixed 1/60 s step: player update, then
// camera update, then collision detection. The order is contractual.
// Tick never errors; the host owns the 60 Hz cadence and the simulation
// carries no residual time.
func (w *World) Tick(in Input) TickResult {
	w.stepPlayer(in)
	w.stepCamera(in)
	res := w.checkCollisions()
	w.Ticks++
	return res
}

func (w *World) stepPlayer(in Input) {
	p := &w.Player
	if p.Collided {
		return
	}

	p.VelocityX = horizontalSpeed(in.Boost)
	p.X += p.VelocityX * TimeStep

	// Jumps only trigger from the floor; mid-air presses are ignored.
	if in.Jump && p.Jumping == OnFloor {
		p.Jumping = InAir
		p.VelocityY = JumpInitialVelocity
	}

	// Floor clamp before gravity: a fall that crossed the floor on the
	// previous tick lands here.
	if p.Y < 0 {
		p.Jumping = OnFloor
		p.VelocityY = 0
		p.Y = 0
	}

	p.VelocityY -= Gravity * TimeStep

	switch p.Jumping {
	case OnFloor:
		p.Y = 0
	case InAir:
		p.Y += p.VelocityY * TimeStep
	}
}

func (w *World) stepCamera(in Input) {
	c := &w.Camera
	if c.Stopped {
		return
	}
	c.VelocityX = horizontalSpeed(in.Boost)
	c.X += c.VelocityX * TimeStep
}

// checkCollisions tests the player sphere against every obstacle.
// Touching counts: center distance of exactly one diameter collides.
// The collided and stopped flags are idempotent.
func (w *World) checkCollisions() TickResult {
	var res TickResult
	p := &w.Player
	for i := range w.Level.Obstacles {
		o := &w.Level.Obstacles[i]
		dx := o.X - p.X
		dy := o.Y - p.Y
		// Explicit conversions keep the squares separately rounded in
		// float32, matching the frozen stream semantics.
		d2 := float32(dx*dx) + float32(dy*dy)
		if float32(math.Sqrt(float64(d2))) <= 2*SphereRadius {
			res.Collisions = append(res.Collisions, Collision{Obstacle: i})
			p.Collided = true
			w.Camera.Stopped = true
		}
	}
	res.Collided = p.Collided
	return res
}
