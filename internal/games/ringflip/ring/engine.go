package ring

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ringflip/internal/config"
	"github.com/vovakirdan/ringflip/internal/core"
	"github.com/vovakirdan/ringflip/internal/logging"
	"github.com/vovakirdan/ringflip/internal/session"
)

// Points per tier of a pass; perfect passes multiply by the combo up to maxComboTier.
const (
	basePoints   = 2
	maxComboTier = 4
	maxPopupTier = 3
)

// Session is the part of the game session the engine drives.
type Session interface {
	ChangeScore(amount int)
	SetGameOver() session.Outcome
	ActivateShield()
	ActivateImmunity(seconds float64)
}

// Player is the part of the flight state the engine reads and mutates.
type Player interface {
	Position() core.Vec2
	IsFalling() bool
	IsGravityInverted() bool
	ToggleGravity()
	ChangeColor(rng *rand.Rand)
}

// Presenter shows combo feedback. It is optional.
type Presenter interface {
	ComboPopup(text string, level int)
}

// Params are the tuning values the engine needs for one run.
type Params struct {
	Profile          config.DifficultyProfile
	MissedRange      float64
	SpawnTrigger     float64
	PerfectTolerance float64
	FadeSeconds      float64
	SlantMinDegrees  float64
	SlantMaxDegrees  float64
	HeightLimit      float64
	ImmunitySeconds  float64
}

// ParamsFrom combines the configuration with a difficulty profile.
func ParamsFrom(cfg config.RingflipConfig, profile config.DifficultyProfile) Params {
	return Params{
		Profile:          profile,
		MissedRange:      cfg.Rings.MissedRange,
		SpawnTrigger:     cfg.Rings.SpawnTrigger,
		PerfectTolerance: cfg.Rings.PerfectTolerance,
		FadeSeconds:      cfg.Rings.FadeSeconds,
		SlantMinDegrees:  cfg.Rings.SlantMinDegrees,
		SlantMaxDegrees:  cfg.Rings.SlantMaxDegrees,
		HeightLimit:      cfg.Rings.HeightLimit,
		ImmunitySeconds:  cfg.Session.ImmunitySeconds,
	}
}

// Verdict is the outcome of a center crossing.
type Verdict int

const (
	Ignored        Verdict = iota // ring unknown or already judged
	WrongDirection                // crossed against gravity, run ends
	Clean                         // passed, combo reset
	Perfect                       // passed untouched and centred
)

func (v Verdict) String() string {
	switch v {
	case Ignored:
		return "ignored"
	case WrongDirection:
		return "wrong-direction"
	case Clean:
		return "clean"
	case Perfect:
		return "perfect"
	default:
		return "unknown"
	}
}

// Judgement describes what a center crossing did.
type Judgement struct {
	Verdict Verdict
	Type    Type
	Points  int
	Combo   int // combo handed to the successor
}

// Engine spawns rings and judges passages through them.
type Engine struct {
	params    Params
	session   Session
	player    Player
	rng       *rand.Rand
	arena     *Arena
	presenter Presenter
	logger    *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithPresenter sets the combo popup collaborator.
func WithPresenter(p Presenter) Option {
	return func(e *Engine) { e.presenter = p }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an engine with an empty arena.
func NewEngine(params Params, s Session, p Player, rng *rand.Rand, opts ...Option) *Engine {
	e := &Engine{
		params:  params,
		session: s,
		player:  p,
		rng:     rng,
		arena:   NewArena(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.OrNop(e.logger)
	return e
}

// Reset clears all rings and installs new params and randomness.
func (e *Engine) Reset(params Params, rng *rand.Rand) {
	e.params = params
	e.rng = rng
	e.arena.Clear()
}

// Rings returns live rings in spawn order.
func (e *Engine) Rings() []*Ring {
	return e.arena.Rings()
}

// Ring looks up a live ring by index.
func (e *Engine) Ring(index int) (*Ring, bool) {
	return e.arena.Get(index)
}

// SpawnFirst places the opening ring. It is always Normal with no combo.
func (e *Engine) SpawnFirst(pos core.Vec2) *Ring {
	r := e.arena.Add(Ring{typ: Normal, pos: pos, collidable: true})
	e.logger.Debug("ring spawned", "index", r.index, "type", r.typ, "x", pos.X, "y", pos.Y)
	return r
}

// Tick runs the per-frame proximity checks for every pending ring: spawn the
// successor once the player is near, and end the run if the player has flown
// past without passing through.
func (e *Engine) Tick() {
	px := e.player.Position().X
	for _, r := range e.arena.Rings() {
		if r.phase != Pending {
			continue
		}
		if !r.spawned && px > r.pos.X+e.params.SpawnTrigger {
			e.spawnSuccessor(r)
		}
		if px > r.pos.X+e.params.MissedRange {
			e.miss(r, "flew past")
		}
	}
}

// Update advances fades by dt seconds and destroys rings whose fade ended.
func (e *Engine) Update(dt float64) {
	for _, r := range e.arena.Rings() {
		if r.phase != Scored {
			continue
		}
		r.fade -= dt
		if r.fade <= 0 {
			r.fade = 0
			e.arena.Remove(r.index)
		}
	}
}

// OnRimTouched latches contact with a rim. It only affects whether a later
// pass can be perfect.
func (e *Engine) OnRimTouched(index int, side Side) {
	r, ok := e.arena.Get(index)
	if !ok || !r.collidable {
		return
	}
	switch side {
	case Left:
		r.rimLeft = true
	case Right:
		r.rimRight = true
	}
	e.logger.Debug("rim touched", "index", index, "side", side)
}

// OnCenterCrossed judges the player passing through a ring's center. Only
// the first call per ring has any effect.
func (e *Engine) OnCenterCrossed(index int) Judgement {
	r, ok := e.arena.Get(index)
	if !ok || r.scored {
		return Judgement{Verdict: Ignored}
	}
	r.scored = true

	if !e.player.IsFalling() {
		e.miss(r, "wrong direction")
		return Judgement{Verdict: WrongDirection, Type: r.typ}
	}

	switch r.typ {
	case Shield:
		e.session.ActivateShield()
	case GravityFlip:
		e.player.ToggleGravity()
		e.session.ActivateImmunity(e.params.ImmunitySeconds)
	}

	// The successor must exist before its combo can be written.
	if !r.spawned {
		e.spawnSuccessor(r)
	}

	j := Judgement{Type: r.typ}
	if e.isPerfect(r) {
		j.Verdict = Perfect
		j.Combo = r.combo + 1
		j.Points = basePoints * min(j.Combo, maxComboTier)
		if r.typ == ColorChange {
			e.player.ChangeColor(e.rng)
		}
		e.popup(j.Combo)
	} else {
		j.Verdict = Clean
		j.Points = basePoints
	}

	e.handOff(r, j.Combo)
	e.session.ChangeScore(j.Points)

	r.phase = Scored
	r.collidable = false
	r.fade = e.params.FadeSeconds
	if r.fade <= 0 {
		e.arena.Remove(r.index)
	}

	e.logger.Debug("ring judged", "index", r.index, "verdict", j.Verdict, "points", j.Points, "combo", j.Combo)
	return j
}

func (e *Engine) isPerfect(r *Ring) bool {
	if r.rimLeft || r.rimRight {
		return false
	}
	return math.Abs(e.player.Position().X-r.pos.X) <= e.params.PerfectTolerance
}

// handOff writes the combo into the successor, if it is still alive.
func (e *Engine) handOff(r *Ring, combo int) {
	next, ok := e.arena.Get(r.next)
	if !r.spawned || !ok {
		e.logger.Debug("successor gone, combo not carried", "index", r.index)
		return
	}
	next.combo = combo
}

func (e *Engine) popup(combo int) {
	if e.presenter == nil {
		e.logger.Warn("no presenter, combo popup skipped")
		return
	}
	text := "PERFECT!"
	if combo > 1 {
		text = fmt.Sprintf("PERFECT x%d", combo)
	}
	e.presenter.ComboPopup(text, min(combo, maxPopupTier))
}

func (e *Engine) miss(r *Ring, reason string) {
	r.phase = Missed
	r.scored = true
	r.collidable = false
	e.arena.Remove(r.index)
	outcome := e.session.SetGameOver()
	e.logger.Info("ring missed", "index", r.index, "reason", reason, "outcome", outcome)
}

// spawnSuccessor creates the next ring. Draw order is type, then tilt for
// slanted rings, then height, so a seeded source reproduces a course.
func (e *Engine) spawnSuccessor(r *Ring) {
	p := e.params
	typ := TypeFor(e.rng.Float64(), e.player.IsGravityInverted())

	var tilt float64
	if typ == Slanted {
		tilt = p.SlantMinDegrees + e.rng.Float64()*(p.SlantMaxDegrees-p.SlantMinDegrees)
		if e.rng.Intn(2) == 0 {
			tilt = -tilt
		}
	}

	v := p.Profile.RingHeightVariance
	y := -v + e.rng.Float64()*2*v
	if p.HeightLimit > 0 {
		y = core.ClampF(y, -p.HeightLimit, p.HeightLimit)
	}

	next := e.arena.Add(Ring{
		typ:        typ,
		tilt:       tilt,
		pos:        core.Vec2{X: r.pos.X + p.Profile.RingSpawnDistance, Y: y},
		collidable: true,
	})
	r.next = next.index
	r.spawned = true
	e.logger.Debug("ring spawned", "index", next.index, "type", typ, "x", next.pos.X, "y", y, "tilt", tilt)
}
