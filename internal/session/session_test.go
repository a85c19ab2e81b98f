package session

import (
	"testing"

	"github.com/vovakirdan/ringflip/internal/config"
	"github.com/vovakirdan/ringflip/internal/ledger"
)

type submission struct {
	score int
	level config.DifficultyLevel
}

func newRecorded(level config.DifficultyLevel) (*Session, *[]submission) {
	var subs []submission
	s := New(level, SubmitterFunc(func(score int, l config.DifficultyLevel) ledger.Records {
		subs = append(subs, submission{score, l})
		return ledger.Records{AllTime: len(subs) == 1}
	}), nil)
	return s, &subs
}

func TestChangeScore(t *testing.T) {
	s, _ := newRecorded(config.Medium)
	var seen []int
	s.OnScoreChanged(func(v int) { seen = append(seen, v) })

	s.ChangeScore(2)
	s.ChangeScore(4)
	if s.Score() != 6 {
		t.Errorf("Score() = %d, expected 6", s.Score())
	}
	if len(seen) != 2 || seen[1] != 6 {
		t.Errorf("observer saw %v, expected [2 6]", seen)
	}

	s.ChangeScore(-100)
	if s.Score() != 0 {
		t.Errorf("score should not go negative, got %d", s.Score())
	}
}

func TestSetGameOverCommitsOnce(t *testing.T) {
	s, subs := newRecorded(config.Hard)
	s.StartGame()
	s.ChangeScore(8)

	var events []GameOverEvent
	s.OnGameOver(func(ev GameOverEvent) {
		if !s.IsGameOver() {
			t.Error("observer ran before the game-over state was committed")
		}
		events = append(events, ev)
	})

	if got := s.SetGameOver(); got != Committed {
		t.Fatalf("first SetGameOver = %v, expected committed", got)
	}
	if got := s.SetGameOver(); got != AlreadyOver {
		t.Errorf("second SetGameOver = %v, expected already-over", got)
	}

	if len(*subs) != 1 || (*subs)[0] != (submission{8, config.Hard}) {
		t.Errorf("submissions = %v, expected one {8 Hard}", *subs)
	}
	if len(events) != 1 || events[0].FinalScore != 8 || events[0].Difficulty != config.Hard {
		t.Errorf("events = %v", events)
	}
	if !events[0].Records.AllTime {
		t.Error("event should carry the records returned by the ledger")
	}
}

func TestScoreFrozenAfterGameOver(t *testing.T) {
	s, _ := newRecorded(config.Easy)
	s.ChangeScore(4)
	s.SetGameOver()
	s.ChangeScore(2)
	if s.Score() != 4 {
		t.Errorf("Score() = %d, expected 4", s.Score())
	}
}

func TestShieldAbsorbsOneGameOver(t *testing.T) {
	s, subs := newRecorded(config.Medium)
	var shieldStates []bool
	s.OnShieldChanged(func(v bool) { shieldStates = append(shieldStates, v) })

	s.ActivateShield()
	s.ActivateShield() // no stacking

	if got := s.SetGameOver(); got != AbsorbedByShield {
		t.Fatalf("SetGameOver = %v, expected shield", got)
	}
	if s.HasShield() || s.IsGameOver() {
		t.Error("shield should be spent and the run still alive")
	}
	if len(*subs) != 0 {
		t.Error("nothing should be submitted while the shield absorbs")
	}

	if got := s.SetGameOver(); got != Committed {
		t.Errorf("second SetGameOver = %v, expected committed", got)
	}
	if len(shieldStates) != 2 || !shieldStates[0] || shieldStates[1] {
		t.Errorf("shield observer saw %v, expected [true false]", shieldStates)
	}
}

func TestImmunityTakesPrecedenceOverShield(t *testing.T) {
	s, _ := newRecorded(config.Medium)
	s.ActivateShield()
	s.ActivateImmunity(0.5)

	if got := s.SetGameOver(); got != AbsorbedByImmunity {
		t.Fatalf("SetGameOver = %v, expected immunity", got)
	}
	if !s.HasShield() {
		t.Error("immunity should leave the shield intact")
	}
}

func TestImmunityTick(t *testing.T) {
	s, _ := newRecorded(config.Medium)
	s.ActivateImmunity(0.5)
	s.ActivateImmunity(0.2) // overwrite, not extend

	s.Tick(0.1)
	if got := s.Immunity(); got < 0.099 || got > 0.101 {
		t.Errorf("Immunity() = %g, expected ~0.1", got)
	}

	s.Tick(1)
	if s.Immunity() != 0 {
		t.Errorf("Immunity() = %g, expected clamp at 0", s.Immunity())
	}
	if got := s.SetGameOver(); got != Committed {
		t.Errorf("SetGameOver after immunity expired = %v", got)
	}

	s.ActivateImmunity(-1)
	if s.Immunity() != 0 {
		t.Error("negative immunity should clamp to 0")
	}
}

func TestResetKeepsObservers(t *testing.T) {
	s, subs := newRecorded(config.Easy)
	calls := 0
	s.OnGameOver(func(GameOverEvent) { calls++ })

	s.StartGame()
	s.ChangeScore(6)
	s.ActivateShield()
	s.SetGameOver()
	s.SetGameOver()

	s.Reset(config.Hard)
	if s.Score() != 0 || s.IsGameOver() || s.IsGameActive() || s.HasShield() {
		t.Error("Reset did not clear per-run state")
	}
	if s.Difficulty() != config.Hard {
		t.Errorf("Difficulty() = %v, expected Hard", s.Difficulty())
	}

	s.SetGameOver()
	if calls != 2 {
		t.Errorf("observer calls = %d, expected 2", calls)
	}
	if len(*subs) != 2 || (*subs)[1].level != config.Hard {
		t.Errorf("submissions = %v", *subs)
	}
}

func TestNilSubmitter(t *testing.T) {
	s := New(config.Medium, nil, nil)
	if got := s.SetGameOver(); got != Committed {
		t.Errorf("SetGameOver = %v, expected committed", got)
	}
}
