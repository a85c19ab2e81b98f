// Package ledger tracks best scores per difficulty for three periods:
// the current calendar day, the current ISO week, and all time.
package ledger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ringflip/internal/config"
	"github.com/vovakirdan/ringflip/internal/logging"
)

// Prefs is a persistent store of named integer and string values.
// found is false when the key has never been written.
type Prefs interface {
	Int(key string) (v int, found bool, err error)
	String(key string) (v string, found bool, err error)
	SetInt(key string, v int) error
	SetString(key, v string) error
}

// Stats holds the best scores for one difficulty as of now.
type Stats struct {
	DailyBest   int
	WeeklyBest  int
	AllTimeBest int
}

// Records reports which slots a submission improved.
type Records struct {
	Daily   bool
	Weekly  bool
	AllTime bool
}

// Any reports whether at least one slot improved.
func (r Records) Any() bool {
	return r.Daily || r.Weekly || r.AllTime
}

// Ledger reads and writes best scores through Prefs. Writes are best-effort:
// failures are logged and never surface to gameplay. A Ledger may be shared
// by concurrent game sessions.
type Ledger struct {
	mu     sync.Mutex
	prefs  Prefs
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the wall clock used for period keys.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// New creates a ledger over the given prefs store.
func New(prefs Prefs, opts ...Option) *Ledger {
	l := &Ledger{prefs: prefs, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = logging.OrNop(l.logger)
	return l
}

// DayKey returns the daily period key for t, e.g. "2026-10-15".
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekKey returns the ISO-8601 week period key for t, e.g. "42_2026".
// The year is the ISO week-numbering year, so 2027-01-01 belongs to "53_2026".
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d_%d", week, year)
}

// KeyPrefix returns the prefix shared by every pref key of a difficulty.
func KeyPrefix(level config.DifficultyLevel) string {
	return "score." + strings.ToLower(level.String()) + "."
}

type slot struct {
	name      string
	bestKey   string
	periodKey string // empty for all-time
	period    string
}

func (l *Ledger) slots(level config.DifficultyLevel, now time.Time) [3]slot {
	prefix := KeyPrefix(level)
	return [3]slot{
		{name: "daily", bestKey: prefix + "daily.best", periodKey: prefix + "daily.period", period: DayKey(now)},
		{name: "weekly", bestKey: prefix + "weekly.best", periodKey: prefix + "weekly.period", period: WeekKey(now)},
		{name: "all-time", bestKey: prefix + "all_time.best"},
	}
}

// Submit records a final score. Each slot is evaluated independently: a slot
// whose stored period differs from the current one is reset to zero first,
// then updated only if score is strictly greater than its best.
func (l *Ledger) Submit(score int, level config.DifficultyLevel) Records {
	if l == nil || l.prefs == nil {
		return Records{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	slots := l.slots(level, l.now())
	var improved [3]bool

	for i, s := range slots {
		best := l.readInt(s.bestKey)

		if s.periodKey != "" && l.readString(s.periodKey) != s.period {
			best = 0
			l.writeString(s.periodKey, s.period)
			l.writeInt(s.bestKey, 0)
		}

		if score > best {
			l.writeInt(s.bestKey, score)
			improved[i] = true
			l.logger.Info("new best", "slot", s.name, "difficulty", level, "score", score)
		}
	}

	l.logger.Debug("score submitted", "difficulty", level, "score", score)
	return Records{Daily: improved[0], Weekly: improved[1], AllTime: improved[2]}
}

// Stats returns the current bests for a difficulty. Daily and weekly bests
// from a previous period read as zero.
func (l *Ledger) Stats(level config.DifficultyLevel) Stats {
	if l == nil || l.prefs == nil {
		return Stats{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	slots := l.slots(level, l.now())
	var values [3]int
	for i, s := range slots {
		if s.periodKey != "" && l.readString(s.periodKey) != s.period {
			continue
		}
		values[i] = l.readInt(s.bestKey)
	}
	return Stats{DailyBest: values[0], WeeklyBest: values[1], AllTimeBest: values[2]}
}

func (l *Ledger) readInt(key string) int {
	v, found, err := l.prefs.Int(key)
	if err != nil {
		l.logger.Warn("cannot read pref", "key", key, "error", err)
		return 0
	}
	if !found {
		return 0
	}
	return v
}

func (l *Ledger) readString(key string) string {
	v, found, err := l.prefs.String(key)
	if err != nil {
		l.logger.Warn("cannot read pref", "key", key, "error", err)
		return ""
	}
	if !found {
		return ""
	}
	return v
}

func (l *Ledger) writeInt(key string, v int) {
	if err := l.prefs.SetInt(key, v); err != nil {
		l.logger.Warn("cannot write pref", "key", key, "error", err)
	}
}

func (l *Ledger) writeString(key, v string) {
	if err := l.prefs.SetString(key, v); err != nil {
		l.logger.Warn("cannot write pref", "key", key, "error", err)
	}
}
