// Package sound plays short synthesized cues for game events.
// Audio is optional: when the output device cannot be opened the player
// stays silent and the game runs unchanged.
package sound

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/missile-protector/internal/core"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// DefaultGain is the cue volume when none is configured.
const DefaultGain = 0.4

// CueFor maps a game event to its cue. Spawns have no sound.
func CueFor(kind core.EventKind) (Cue, bool) {
	switch kind {
	case core.EventCaught:
		return CueCatch, true
	case core.EventMissed:
		return CueMiss, true
	case core.EventWon:
		return CueWin, true
	case core.EventLost:
		return CueLose, true
	case core.EventStarted, core.EventRestarted:
		return CueStart, true
	default:
		return 0, false
	}
}

// Player mixes cues onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	gain        float64
	logger      *log.Logger
	initialized bool
	played      map[Cue]int
}

// NewPlayer creates a player. Call Init to open the output device.
func NewPlayer(gain float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		gain:   gain,
		logger: logger,
		played: make(map[Cue]int),
	}
}

// Init opens the speaker. On failure the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio disabled", "error", err)
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio ready", "rate", int(SampleRate))
	return nil
}

// Handle plays the cue for an event, if it has one.
func (p *Player) Handle(e core.Event) {
	if cue, ok := CueFor(e.Kind); ok {
		p.Play(cue)
	}
}

// Play queues a cue on the mixer. Counted even while silent.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played[c]++
	if !p.initialized {
		return
	}

	s := Build(c, SampleRate, p.gain)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Played returns how many times a cue was requested.
func (p *Player) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
