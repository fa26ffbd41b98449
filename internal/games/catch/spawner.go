package catch

import (
	"math/rand"

	"github.com/vovakirdan/missile-protector/internal/config"
)

// Spawner decides once per frame whether a new object enters the field.
type Spawner struct {
	rng    *rand.Rand
	ramp   *config.Ramp
	chance float64

	initial float64
	size    float64
	fieldW  float64
}

// NewSpawner creates a spawner with its own deterministic RNG.
func NewSpawner(seed int64, cfg config.CatchConfig, ramp *config.Ramp) *Spawner {
	s := &Spawner{
		rng:     rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
		ramp:    ramp,
		initial: cfg.Spawn.InitialChance,
		size:    cfg.Objects.Size,
		fieldW:  cfg.Field.Width,
	}
	s.Reset()
	return s
}

// Reset restores the initial spawn chance. The RNG stream continues.
func (s *Spawner) Reset() {
	s.chance = s.initial
}

// Chance returns the probability used by the next roll.
func (s *Spawner) Chance() float64 {
	return s.chance
}

// Roll performs this frame's spawn roll and then ramps the chance.
// A spawned object starts fully above the field at a uniform random x
// in [0, fieldW-size].
func (s *Spawner) Roll() (FallingObject, bool) {
	spawned := s.rng.Float64() < s.chance
	var obj FallingObject
	if spawned {
		obj = FallingObject{
			X: s.rng.Float64() * (s.fieldW - s.size),
			Y: -s.size,
		}
	}
	s.chance = s.ramp.NextChance(s.chance)
	return obj, spawned
}
