// Package session owns the state of one playthrough: the running score and
// the game-over, shield and immunity flags that arbitrate whether a fatal
// event actually ends the run.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ringflip/internal/config"
	"github.com/vovakirdan/ringflip/internal/ledger"
	"github.com/vovakirdan/ringflip/internal/logging"
)

// Submitter receives the final score when a run ends. *ledger.Ledger
// satisfies it.
type Submitter interface {
	Submit(score int, level config.DifficultyLevel) ledger.Records
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(score int, level config.DifficultyLevel) ledger.Records

// Submit calls f.
func (f SubmitterFunc) Submit(score int, level config.DifficultyLevel) ledger.Records {
	return f(score, level)
}

// GameOverEvent is delivered to observers when a run ends.
type GameOverEvent struct {
	FinalScore int
	Difficulty config.DifficultyLevel
	Records    ledger.Records // slots the final score improved
}

// Outcome describes how a SetGameOver call was resolved.
type Outcome int

const (
	AbsorbedByImmunity Outcome = iota
	AbsorbedByShield
	Committed
	AlreadyOver
)

func (o Outcome) String() string {
	switch o {
	case AbsorbedByImmunity:
		return "immunity"
	case AbsorbedByShield:
		return "shield"
	case Committed:
		return "committed"
	case AlreadyOver:
		return "already-over"
	default:
		return "unknown"
	}
}

// Session is the per-run game state. It is single-writer: all calls happen
// on the simulation tick.
type Session struct {
	score     int
	gameOver  bool
	active    bool
	shield    bool
	immunity  float64
	level     config.DifficultyLevel
	submitter Submitter
	logger    *log.Logger

	onGameOver []func(GameOverEvent)
	onScore    []func(int)
	onShield   []func(bool)
}

// New creates a session for the given difficulty. submitter may be nil, in
// which case final scores are not persisted.
func New(level config.DifficultyLevel, submitter Submitter, logger *log.Logger) *Session {
	return &Session{
		level:     level,
		submitter: submitter,
		logger:    logging.OrNop(logger),
	}
}

// OnGameOver registers an observer called after the game-over state commits.
func (s *Session) OnGameOver(fn func(GameOverEvent)) {
	s.onGameOver = append(s.onGameOver, fn)
}

// OnScoreChanged registers an observer called with the new total score.
func (s *Session) OnScoreChanged(fn func(int)) {
	s.onScore = append(s.onScore, fn)
}

// OnShieldChanged registers an observer called when the shield is gained or spent.
func (s *Session) OnShieldChanged(fn func(bool)) {
	s.onShield = append(s.onShield, fn)
}

// Reset clears per-run state and selects the difficulty for the next run.
// Observers are kept.
func (s *Session) Reset(level config.DifficultyLevel) {
	s.score = 0
	s.gameOver = false
	s.active = false
	s.shield = false
	s.immunity = 0
	s.level = level
	for _, fn := range s.onScore {
		fn(0)
	}
}

// StartGame marks play as started.
func (s *Session) StartGame() {
	s.active = true
	s.logger.Debug("game started", "difficulty", s.level)
}

// ChangeScore adds amount to the score. Changes after game over are ignored
// so the submitted score stays final.
func (s *Session) ChangeScore(amount int) {
	if s.gameOver {
		s.logger.Debug("score change after game over ignored", "amount", amount)
		return
	}
	s.score = max(s.score+amount, 0)
	s.logger.Debug("score changed", "amount", amount, "total", s.score)
	for _, fn := range s.onScore {
		fn(s.score)
	}
}

// SetGameOver requests the end of the run. Active immunity swallows the
// request; otherwise a held shield is consumed instead; otherwise the run
// ends once, the score is submitted and observers are notified.
func (s *Session) SetGameOver() Outcome {
	if s.immunity > 0 {
		s.logger.Debug("game over absorbed by immunity", "remaining", s.immunity)
		return AbsorbedByImmunity
	}
	if s.shield {
		s.shield = false
		s.logger.Info("shield consumed")
		for _, fn := range s.onShield {
			fn(false)
		}
		return AbsorbedByShield
	}
	if s.gameOver {
		return AlreadyOver
	}

	s.gameOver = true
	s.logger.Info("game over", "score", s.score, "difficulty", s.level)

	ev := GameOverEvent{FinalScore: s.score, Difficulty: s.level}
	if s.submitter != nil {
		ev.Records = s.submitter.Submit(s.score, s.level)
	} else {
		s.logger.Warn("no score ledger, final score not saved")
	}

	for _, fn := range s.onGameOver {
		fn(ev)
	}
	return Committed
}

// ActivateShield grants a single-use shield. Shields do not stack.
func (s *Session) ActivateShield() {
	if s.shield {
		return
	}
	s.shield = true
	s.logger.Debug("shield activated")
	for _, fn := range s.onShield {
		fn(true)
	}
}

// ActivateImmunity sets the immunity timer, replacing any remaining time.
func (s *Session) ActivateImmunity(seconds float64) {
	s.immunity = max(seconds, 0)
}

// Tick advances timers by dt seconds.
func (s *Session) Tick(dt float64) {
	if s.immunity > 0 {
		s.immunity = max(s.immunity-dt, 0)
	}
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// IsGameOver reports whether the run has ended.
func (s *Session) IsGameOver() bool { return s.gameOver }

// IsGameActive reports whether play has started.
func (s *Session) IsGameActive() bool { return s.active }

// HasShield reports whether a shield is held.
func (s *Session) HasShield() bool { return s.shield }

// Immunity returns the remaining immunity in seconds.
func (s *Session) Immunity() float64 { return s.immunity }

// Difficulty returns the difficulty of the current run.
func (s *Session) Difficulty() config.DifficultyLevel { return s.level }
