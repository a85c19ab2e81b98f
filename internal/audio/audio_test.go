package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/ringflip/internal/core"
)

// drain streams s to the end and returns the sample count and the peak.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := range n {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, w := range []Wave{Sine, Square, Saw} {
		n, peak := drain(Tone(440, 880, 100*time.Millisecond, w, rate))
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, expected %d", w, n, rate.N(100*time.Millisecond))
		}
		if peak > 1 {
			t.Errorf("wave %d: peak %g out of range", w, peak)
		}
	}
}

func TestFadeSilencesEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	total := rate.N(50 * time.Millisecond)
	s := Fade(Tone(0, 0, 50*time.Millisecond, Square, rate), total, 100, 100)

	buf := make([][2]float64, total)
	n, _ := s.Stream(buf)
	if n != total {
		t.Fatalf("streamed %d, expected %d", n, total)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %g, expected silence at attack start", buf[0][0])
	}
	if v := buf[total/2][0]; v != 1 {
		t.Errorf("middle sample = %g, expected full volume", v)
	}
	if v := buf[total-1][0]; v > 0.011 {
		t.Errorf("last sample = %g, expected near silence", v)
	}
}

func TestCueForEvents(t *testing.T) {
	tests := []struct {
		ev   core.Event
		want Cue
	}{
		{core.EventJump, CueJump},
		{core.EventRingPassed, CueRing},
		{core.EventPerfectPass, CuePerfect},
		{core.EventShieldGained, CueShield},
		{core.EventShieldUsed, CueShield},
		{core.EventGravityFlipped, CueFlip},
		{core.EventGameOver, CueGameOver},
		{core.EventButton, CueButton},
		{core.Event(0), CueNone},
	}
	for _, tc := range tests {
		if got := CueFor(tc.ev); got != tc.want {
			t.Errorf("CueFor(%d) = %d, expected %d", tc.ev, got, tc.want)
		}
	}
}

func TestEveryCueTerminates(t *testing.T) {
	rate := beep.SampleRate(44100)
	for c := CueJump; c <= CueButton; c++ {
		s := Streamer(c, rate, 1)
		if s == nil {
			t.Fatalf("cue %d has no streamer", c)
		}
		n, _ := drain(s)
		if n == 0 || n > rate.N(time.Second) {
			t.Errorf("cue %d streamed %d samples", c, n)
		}
	}
	if Streamer(CueNone, rate, 1) != nil {
		t.Error("CueNone should have no streamer")
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	m := NewManager(1, nil)
	m.Play(core.EventJump)
	m.PlayAll([]core.Event{core.EventGameOver})
	m.Cleanup()

	var nilManager *Manager
	nilManager.Play(core.EventJump)
	nilManager.Cleanup()
	if err := nilManager.Initialize(); err != nil {
		t.Errorf("nil Initialize() = %v", err)
	}
}
