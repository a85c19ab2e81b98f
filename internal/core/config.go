package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickSeconds returns the fixed timestep length in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the externally visible status of a game.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Active   bool // play has started (past the home panel)
}

// Event is a fire-and-forget notification for presentation collaborators
// (audio, effects). Games emit them; the platform decides what to do.
type Event uint8

const (
	EventJump Event = iota + 1
	EventRingPassed
	EventPerfectPass
	EventShieldGained
	EventShieldUsed
	EventGravityFlipped
	EventGameOver
	EventButton
)

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
