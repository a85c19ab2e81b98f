// Package ringflip implements the ring game: the player flies through
// a chain of rings while gravity may flip. The package wires the session,
// flight, ring engine and ledger together behind registry.Game.
package ringflip

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ringflip/internal/config"
	"github.com/vovakirdan/ringflip/internal/core"
	"github.com/vovakirdan/ringflip/internal/games/ringflip/flight"
	"github.com/vovakirdan/ringflip/internal/games/ringflip/ring"
	"github.com/vovakirdan/ringflip/internal/ledger"
	"github.com/vovakirdan/ringflip/internal/logging"
	"github.com/vovakirdan/ringflip/internal/registry"
	"github.com/vovakirdan/ringflip/internal/session"
)

// ID is the registry identifier of the game.
const ID = "ringflip"

func init() {
	registry.Register(ID, func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}

// Phase is the screen the game is on.
type Phase int

const (
	PhaseHome Phase = iota
	PhasePlaying
	PhaseOver
)

type popup struct {
	text  string
	level int
	ttl   float64
}

// Game implements registry.Game for the ring game.
type Game struct {
	cfg      config.RingflipConfig
	profiles *config.Profiles
	ledger   *ledger.Ledger
	logger   *log.Logger

	runtime core.RuntimeConfig
	rng     *rand.Rand

	session *session.Session
	player  *flight.State
	engine  *ring.Engine

	phase      Phase
	paused     bool
	onBoundary bool
	tickCount  int
	popup      popup
	stats      ledger.Stats // bests for the active difficulty, refreshed on start and end
	last       session.GameOverEvent
	events     []core.Event
}

// New creates a game on the home panel.
func New(deps registry.Deps) *Game {
	logger := logging.OrNop(deps.Logger)
	cfg := deps.Config
	if err := cfg.Validate(); err != nil {
		if cfg != (config.RingflipConfig{}) {
			logger.Warn("invalid ring game config, using defaults", "error", err)
		}
		cfg = config.DefaultRingflipConfig()
	}

	g := &Game{
		cfg:      cfg,
		profiles: config.NewProfiles(cfg.Profiles),
		ledger:   deps.Ledger,
		logger:   logger,
		runtime:  core.DefaultConfig(),
		rng:      rand.New(rand.NewSource(1)),
	}
	g.profiles.SetDifficulty(int(deps.Difficulty))

	var submitter session.Submitter
	if deps.Ledger != nil {
		submitter = deps.Ledger
	}
	g.session = session.New(g.profiles.Current(), submitter, logger.WithPrefix("session"))
	g.session.OnGameOver(g.onGameOver)
	g.session.OnShieldChanged(func(held bool) {
		if held {
			g.emit(core.EventShieldGained)
		} else {
			g.emit(core.EventShieldUsed)
		}
	})

	profile := g.profiles.GetCurrentProfile()
	g.player = flight.New(profile, cfg.World.BaseGravity, g.startPos())
	g.engine = ring.NewEngine(ring.ParamsFrom(cfg, profile), g.session, g.player, g.rng,
		ring.WithPresenter(g),
		ring.WithLogger(logger.WithPrefix("rings")),
	)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Ring Flip" }

// Reset reseeds the game and returns to the home panel.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.phase = PhaseHome
	g.paused = false
	g.tickCount = 0
	g.popup = popup{}
	g.events = g.events[:0]
	g.session.Reset(g.profiles.Current())
	g.player.Reset(g.profiles.GetCurrentProfile(), g.startPos())
	g.engine.Reset(ring.ParamsFrom(g.cfg, g.profiles.GetCurrentProfile()), g.rng)
	g.refreshStats()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	switch g.phase {
	case PhaseHome:
		g.stepHome(in)
	case PhasePlaying:
		g.stepPlaying(in)
	case PhaseOver:
		g.stepOver(in)
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) stepHome(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.selectDifficulty(int(g.profiles.Current()) - 1)
	case in.Has(core.ActionDown):
		g.selectDifficulty(int(g.profiles.Current()) + 1)
	case in.Has(core.ActionJump), in.Has(core.ActionConfirm):
		g.emit(core.EventButton)
		g.start()
	}
}

func (g *Game) selectDifficulty(index int) {
	before := g.profiles.Current()
	g.profiles.SetDifficulty(index)
	if g.profiles.Current() != before {
		g.emit(core.EventButton)
		g.refreshStats()
	}
}

func (g *Game) stepOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
		g.emit(core.EventButton)
		g.start()
	case in.Has(core.ActionBack):
		g.emit(core.EventButton)
		g.phase = PhaseHome
		g.refreshStats()
	}
}

// start begins a run at the selected difficulty. The profile is fixed for
// the whole run.
func (g *Game) start() {
	profile := g.profiles.GetCurrentProfile()
	g.session.Reset(g.profiles.Current())
	g.player.Reset(profile, g.startPos())
	g.engine.Reset(ring.ParamsFrom(g.cfg, profile), g.rng)
	g.engine.SpawnFirst(core.Vec2{
		X: g.cfg.World.PlayerStartX + g.cfg.Rings.FirstOffset,
		Y: g.cfg.World.PlayerStartY,
	})
	g.popup = popup{}
	g.paused = false
	g.onBoundary = false
	g.tickCount = 0
	g.last = session.GameOverEvent{}
	g.refreshStats()

	g.session.StartGame()
	g.phase = PhasePlaying
	g.logger.Info("run started", "difficulty", g.profiles.Current())
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.tickCount++
	dt := g.runtime.TickSeconds()

	if (in.Has(core.ActionJump) || in.Has(core.ActionUp)) && g.session.IsGameActive() && !g.session.IsGameOver() {
		g.player.Jump()
		g.emit(core.EventJump)
	}

	prev := g.player.Position()
	g.player.Integrate(dt)
	g.resolveContacts(prev, g.player.Position())
	g.checkBounds()

	g.engine.Tick()
	g.engine.Update(dt)
	g.session.Tick(dt)

	if g.popup.ttl > 0 {
		g.popup.ttl -= dt
	}
}

// ComboPopup shows combo feedback in the HUD.
func (g *Game) ComboPopup(text string, level int) {
	g.popup = popup{text: text, level: level, ttl: g.cfg.Session.PopupSeconds}
}

func (g *Game) onGameOver(ev session.GameOverEvent) {
	g.last = ev
	g.phase = PhaseOver
	g.emit(core.EventGameOver)
	g.refreshStats()
}

func (g *Game) refreshStats() {
	g.stats = g.ledger.Stats(g.profiles.Current())
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

func (g *Game) startPos() core.Vec2 {
	return core.Vec2{X: g.cfg.World.PlayerStartX, Y: g.cfg.World.PlayerStartY}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused,
		Active:   g.phase == PhasePlaying,
	}
}

// Phase returns the current screen.
func (g *Game) Phase() Phase { return g.phase }

// Difficulty returns the selected difficulty.
func (g *Game) Difficulty() config.DifficultyLevel { return g.profiles.Current() }

// Session exposes the run state.
func (g *Game) Session() *session.Session { return g.session }

// Player exposes the flight state.
func (g *Game) Player() *flight.State { return g.player }

// Engine exposes the ring engine.
func (g *Game) Engine() *ring.Engine { return g.engine }
