package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
)

// tone is a fixed-length oscillator with a linear frequency glide.
type tone struct {
	from, to float64 // Hz at start and end
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	pos      int
	length   int
}

// Tone returns a streamer of the given length gliding from one frequency to another.
func Tone(from, to float64, length time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{from: from, to: to, wave: wave, rate: rate, length: rate.N(length)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case Sine:
			v = math.Sin(2 * math.Pi * t.phase)
		case Square:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case Saw:
			v = 2 * (t.phase - 0.5)
		}
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade applies a short linear attack and a release to the end of a
// streamer of known length.
type fade struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

// Fade shapes s, which must be total samples long.
func Fade(s beep.Streamer, total, attack, release int) beep.Streamer {
	return &fade{s: s, attack: attack, release: release, total: total}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := range n {
		vol := 1.0
		if f.attack > 0 && f.pos < f.attack {
			vol = float64(f.pos) / float64(f.attack)
		}
		if left := f.total - f.pos; f.release > 0 && left < f.release {
			vol = math.Min(vol, float64(left)/float64(f.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// note is one shaped tone in a cue.
type note struct {
	from, to float64
	length   time.Duration
	wave     Wave
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(n.length)
	edge := rate.N(5 * time.Millisecond)
	return Fade(Tone(n.from, n.to, n.length, n.wave, rate), total, edge, min(total/2, rate.N(40*time.Millisecond)))
}

// sequence plays notes back to back at the given linear volume.
func sequence(rate beep.SampleRate, vol float64, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = n.streamer(rate)
	}
	return volume(beep.Seq(parts...), vol)
}

// volume scales a streamer linearly; zero or less is silent.
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
