// Package flight holds the player body: position, velocity, gravity
// direction and colour. It stands in for a rigid-body engine with a fixed
// timestep integrator.
package flight

import (
	"math/rand"

	"github.com/vovakirdan/ringflip/internal/config"
	"github.com/vovakirdan/ringflip/internal/core"
)

// State is the player's flight state. Y grows upward, so with normal
// gravity the player accelerates toward negative Y.
type State struct {
	pos      core.Vec2
	vel      core.Vec2
	inverted bool
	active   bool // gravity switched on by the first jump
	color    core.Color

	profile     config.DifficultyProfile
	baseGravity float64
}

// New creates a player at start, at rest, with gravity off until the first jump.
func New(profile config.DifficultyProfile, baseGravity float64, start core.Vec2) *State {
	return &State{
		pos:         start,
		color:       core.PlayerColors[0],
		profile:     profile,
		baseGravity: baseGravity,
	}
}

// Reset puts the player back at start with normal gravity.
func (s *State) Reset(profile config.DifficultyProfile, start core.Vec2) {
	s.pos = start
	s.vel = core.Vec2{}
	s.inverted = false
	s.active = false
	s.color = core.PlayerColors[0]
	s.profile = profile
}

// Jump replaces the velocity with the jump impulse. The vertical component
// points against gravity.
func (s *State) Jump() {
	s.active = true
	s.vel = core.Vec2{
		X: s.profile.HorizontalJumpForce,
		Y: s.profile.VerticalJumpForce * s.gravityDir(),
	}
	s.clampSpeed()
}

// Integrate advances the body by dt seconds (semi-implicit Euler).
func (s *State) Integrate(dt float64) {
	if !s.active {
		return
	}
	s.vel.Y -= s.baseGravity * s.profile.GravityScale * s.gravityDir() * dt
	s.clampSpeed()
	s.pos = s.pos.Add(s.vel.Scale(dt))
}

func (s *State) clampSpeed() {
	s.vel.X = core.ClampF(s.vel.X, -s.profile.MaxSpeed, s.profile.MaxSpeed)
}

// gravityDir is +1 when gravity pulls down and -1 when inverted.
func (s *State) gravityDir() float64 {
	if s.inverted {
		return -1
	}
	return 1
}

// ToggleGravity flips the gravity direction.
func (s *State) ToggleGravity() {
	s.inverted = !s.inverted
}

// IsGravityInverted reports whether gravity currently pulls upward.
func (s *State) IsGravityInverted() bool { return s.inverted }

// IsFalling reports whether the player moves with gravity: downward when
// normal, upward when inverted. A zero vertical velocity is not falling.
func (s *State) IsFalling() bool {
	if s.inverted {
		return s.vel.Y > 0
	}
	return s.vel.Y < 0
}

// ClampY keeps the body centre within [lo, hi]. When it has to move the
// body it also stops vertical motion, and reports true.
func (s *State) ClampY(lo, hi float64) bool {
	y := core.ClampF(s.pos.Y, lo, hi)
	if y == s.pos.Y {
		return false
	}
	s.pos.Y = y
	s.vel.Y = 0
	return true
}

// Airborne reports whether gravity has been switched on.
func (s *State) Airborne() bool { return s.active }

// Position returns the body centre.
func (s *State) Position() core.Vec2 { return s.pos }

// Velocity returns the current velocity.
func (s *State) Velocity() core.Vec2 { return s.vel }

// SetPosition moves the body, keeping its velocity.
func (s *State) SetPosition(p core.Vec2) { s.pos = p }

// Color returns the player's colour.
func (s *State) Color() core.Color { return s.color }

// ChangeColor picks a random vivid colour different from the current one.
func (s *State) ChangeColor(rng *rand.Rand) {
	n := len(core.PlayerColors)
	cur := -1
	for i, c := range core.PlayerColors {
		if c == s.color {
			cur = i
			break
		}
	}
	if cur < 0 {
		s.color = core.PlayerColors[rng.Intn(n)]
		return
	}
	// Draw from the other n-1 entries.
	next := rng.Intn(n - 1)
	if next >= cur {
		next++
	}
	s.color = core.PlayerColors[next]
}
