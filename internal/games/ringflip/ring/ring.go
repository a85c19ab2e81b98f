// Package ring implements ring spawning and passage judgement: which rings
// exist, what type each one is, whether the player passed it cleanly,
// perfectly or not at all, and the combo carried from ring to ring.
package ring

import (
	"math"

	"github.com/vovakirdan/ringflip/internal/core"
)

// Phase is the judgement state of a ring. Scored and Missed are terminal.
type Phase int

const (
	Pending Phase = iota
	Scored
	Missed
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Scored:
		return "scored"
	case Missed:
		return "missed"
	default:
		return "unknown"
	}
}

// Side identifies a rim.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Ring is one hoop. The hoop lies along a line through its position, tilted
// by Tilt degrees from horizontal; the player passes through it vertically.
type Ring struct {
	index int
	typ   Type
	tilt  float64
	pos   core.Vec2
	combo int // inherited from the predecessor

	spawned  bool // successor created
	scored   bool // center trigger handled
	rimLeft  bool
	rimRight bool
	next     int // successor index, valid once spawned

	phase      Phase
	collidable bool
	fade       float64 // seconds of fade remaining once scored
}

func (r *Ring) Index() int          { return r.index }
func (r *Ring) Type() Type          { return r.typ }
func (r *Ring) Tilt() float64       { return r.tilt }
func (r *Ring) Position() core.Vec2 { return r.pos }
func (r *Ring) Combo() int          { return r.combo }
func (r *Ring) Phase() Phase        { return r.phase }
func (r *Ring) HasSpawned() bool    { return r.spawned }
func (r *Ring) HasBeenScored() bool { return r.scored }
func (r *Ring) Collidable() bool    { return r.collidable }

// Successor returns the index of the ring this one spawned.
func (r *Ring) Successor() (int, bool) {
	return r.next, r.spawned
}

// RimTouched reports whether the given rim has been touched.
func (r *Ring) RimTouched(side Side) bool {
	if side == Left {
		return r.rimLeft
	}
	return r.rimRight
}

// Fading reports whether the ring is playing its exit fade.
func (r *Ring) Fading() bool {
	return r.phase == Scored && r.fade > 0
}

// FadeRemaining returns the seconds of fade left.
func (r *Ring) FadeRemaining() float64 {
	return r.fade
}

// Axis returns unit vectors along the hoop (left to right) and its normal
// (pointing up when untilted).
func (r *Ring) Axis() (along, normal core.Vec2) {
	rad := r.tilt * math.Pi / 180
	along = core.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
	normal = core.Vec2{X: -along.Y, Y: along.X}
	return along, normal
}

// Rim returns the world position of a rim for a hoop of the given half width.
func (r *Ring) Rim(side Side, halfWidth float64) core.Vec2 {
	along, _ := r.Axis()
	if side == Left {
		return r.pos.Sub(along.Scale(halfWidth))
	}
	return r.pos.Add(along.Scale(halfWidth))
}

// Local returns p in hoop coordinates: offset along the hoop and signed
// distance above it.
func (r *Ring) Local(p core.Vec2) (along, above float64) {
	a, n := r.Axis()
	d := p.Sub(r.pos)
	return d.X*a.X + d.Y*a.Y, d.X*n.X + d.Y*n.Y
}
