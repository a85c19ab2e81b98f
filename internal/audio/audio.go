// Package audio plays short synthesized cues for game events through the
// system speaker. Every cue is fire-and-forget; a manager that was never
// initialized, or a nil manager, stays silent.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ringflip/internal/core"
	"github.com/vovakirdan/ringflip/internal/logging"
)

const sampleRate = beep.SampleRate(44100)

// Cue names a sound.
type Cue int

const (
	CueNone Cue = iota
	CueJump
	CueRing
	CuePerfect
	CueShield
	CueFlip
	CueGameOver
	CueButton
)

// CueFor maps a game event to its cue.
func CueFor(ev core.Event) Cue {
	switch ev {
	case core.EventJump:
		return CueJump
	case core.EventRingPassed:
		return CueRing
	case core.EventPerfectPass:
		return CuePerfect
	case core.EventShieldGained, core.EventShieldUsed:
		return CueShield
	case core.EventGravityFlipped:
		return CueFlip
	case core.EventGameOver:
		return CueGameOver
	case core.EventButton:
		return CueButton
	default:
		return CueNone
	}
}

// Streamer builds a fresh streamer for a cue, or nil for CueNone.
func Streamer(c Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	switch c {
	case CueJump:
		return sequence(rate, vol*0.5, note{440, 700, ms(70), Sine})
	case CueRing:
		return sequence(rate, vol*0.6, note{880, 880, ms(60), Sine}, note{1175, 1175, ms(90), Sine})
	case CuePerfect:
		return sequence(rate, vol*0.6,
			note{988, 988, ms(50), Square},
			note{1319, 1319, ms(50), Square},
			note{1760, 1760, ms(110), Square},
		)
	case CueShield:
		return sequence(rate, vol*0.5, note{660, 990, ms(160), Sine})
	case CueFlip:
		return sequence(rate, vol*0.4, note{900, 250, ms(220), Saw})
	case CueGameOver:
		return sequence(rate, vol*0.5,
			note{330, 330, ms(150), Saw},
			note{247, 247, ms(150), Saw},
			note{165, 110, ms(350), Saw},
		)
	case CueButton:
		return sequence(rate, vol*0.3, note{1000, 1000, ms(30), Square})
	default:
		return nil
	}
}

// Manager owns the speaker and a mixer that cues are added to.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewManager creates a manager; call Initialize to open the speaker.
func NewManager(volume float64, logger *log.Logger) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logging.OrNop(logger),
	}
}

// Initialize opens the speaker. It is safe to call more than once.
func (m *Manager) Initialize() error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	m.logger.Debug("speaker opened", "rate", int(sampleRate))
	return nil
}

// Cleanup silences everything and detaches from the speaker.
func (m *Manager) Cleanup() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	m.initialized = false
}

// Play queues the cue for a game event.
func (m *Manager) Play(ev core.Event) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s := Streamer(CueFor(ev), sampleRate, m.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// PlayAll queues the cues for every event of one tick.
func (m *Manager) PlayAll(events []core.Event) {
	for _, ev := range events {
		m.Play(ev)
	}
}
