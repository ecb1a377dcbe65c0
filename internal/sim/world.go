package sim

// Physics constants. Contractual: changing any of them changes every
// recorded run.
const (
	TimeStep            float32 = 1.0 / 60.0
	JumpInitialVelocity float32 = 5.0
	Gravity             float32 = 5.0
	ScrollVelocity      float32 = 2.0
	BoostVelocity       float32 = 5.0
	SphereRadius        float32 = 0.5

	// The player starts inside the buffer zone left of the camera, which
	// is why fresh runs show a negative score.
	PlayerStartX float32 = -5.0
)

// JumpState is the player's vertical motion phase.
type JumpState int

const (
	OnFloor JumpState = iota
	InAir
)

func (s JumpState) String() string {
	switch s {
	case OnFloor:
		return "OnFloor"
	case InAir:
		return "InAir"
	default:
		return "Unknown"
	}
}

// Player is the player sphere's kinematic state.
type Player struct {
	X, Y      float32
	VelocityX float32
	VelocityY float32
	Jumping   JumpState
	Collided  bool
}

// Camera scrolls in lockstep with the player and freezes permanently
// once a collision stops the run.
type Camera struct {
	X         float32
	VelocityX float32
	Stopped   bool
}

// World is the mutable per-run simulation state. It is owned by a single
// goroutine and Tick is its only mutator; views read it between ticks.
type World struct {
	Level  *Level
	Player Player
	Camera Camera
	Ticks  uint64
}

// NewWorld creates the starting state for a run over the given level.
func NewWorld(level *Level) *World {
	return &World{
		Level: level,
		Player: Player{
			X:         PlayerStartX,
			VelocityX: ScrollVelocity,
			Jumping:   OnFloor,
		},
		Camera: Camera{VelocityX: ScrollVelocity},
	}
}
