package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// tone is a single note that sweeps linearly from one frequency to another,
// shaped by a linear attack and release.
type tone struct {
	rate     beep.SampleRate
	wave     Wave
	from, to float64 // Hz
	total    int     // Samples
	attack   int
	release  int
	position int
	phase    float64
}

// Tone creates a streamer for one note. Pass the same from and to for a
// steady pitch.
func Tone(rate beep.SampleRate, wave Wave, from, to float64, d time.Duration) beep.Streamer {
	total := rate.N(d)
	return &tone{
		rate:    rate,
		wave:    wave,
		from:    from,
		to:      to,
		total:   total,
		attack:  min(rate.N(5*time.Millisecond), total/4),
		release: min(rate.N(40*time.Millisecond), total/2),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.total {
			return i, true
		}

		var val float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}
		val *= t.envelope()

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.position) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) envelope() float64 {
	if t.attack > 0 && t.position < t.attack {
		return float64(t.position) / float64(t.attack)
	}
	if remaining := t.total - t.position; t.release > 0 && remaining < t.release {
		return float64(remaining) / float64(t.release)
	}
	return 1
}

func (t *tone) Err() error { return nil }

// Cue is a sound effect tied to a game event.
type Cue int

const (
	CueCatch Cue = iota
	CueMiss
	CueWin
	CueLose
	CueStart
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueCatch:
		return "catch"
	case CueMiss:
		return "miss"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	case CueStart:
		return "start"
	default:
		return "unknown"
	}
}

// Notes used by the cues.
const (
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
)

// Duration returns how long a cue plays.
func (c Cue) Duration() time.Duration {
	switch c {
	case CueCatch:
		return 90 * time.Millisecond
	case CueMiss:
		return 180 * time.Millisecond
	case CueWin:
		return 4 * 110 * time.Millisecond
	case CueLose:
		return 600 * time.Millisecond
	case CueStart:
		return 60 * time.Millisecond
	default:
		return 0
	}
}

// Build synthesizes a cue at the given gain in [0, 1].
func Build(c Cue, rate beep.SampleRate, gain float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueCatch:
		// Rising chirp
		s = Tone(rate, WaveSine, 660, 990, c.Duration())
	case CueMiss:
		s = Tone(rate, WaveSquare, 140, 140, c.Duration())
	case CueWin:
		// Major arpeggio
		step := c.Duration() / 4
		s = beep.Seq(
			Tone(rate, WaveSine, noteC5, noteC5, step),
			Tone(rate, WaveSine, noteE5, noteE5, step),
			Tone(rate, WaveSine, noteG5, noteG5, step),
			Tone(rate, WaveSine, noteC6, noteC6, step),
		)
	case CueLose:
		// Falling tone
		s = Tone(rate, WaveSaw, 440, 110, c.Duration())
	case CueStart:
		s = Tone(rate, WaveSine, 520, 520, c.Duration())
	default:
		return beep.Silence(0)
	}
	return withGain(s, gain)
}

// withGain scales a streamer. Zero gain is silent since log2(0) is -Inf.
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(gain, 1))}
}
