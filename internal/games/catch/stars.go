package catch

import (
	"math/rand"

	"github.com/vovakirdan/missile-protector/internal/config"
)

// starSeedOffset separates the starfield RNG from the gameplay RNG so
// decoration never changes what spawns.
const starSeedOffset = 7919

// Star is a decorative background point.
type Star struct {
	X, Y       float64
	Size       int
	Speed      float64
	Brightness int // 0-255
}

// Starfield drifts stars downward and wraps them to the top.
type Starfield struct {
	stars  []Star
	rng    *rand.Rand
	cfg    config.StarsConfig
	width  float64
	height float64
}

// NewStarfield scatters cfg.Count stars over a width x height field.
func NewStarfield(seed int64, cfg config.StarsConfig, width, height float64) *Starfield {
	f := &Starfield{
		stars:  make([]Star, cfg.Count),
		rng:    rand.New(rand.NewSource(seed + starSeedOffset)), //#nosec G404 -- decoration
		cfg:    cfg,
		width:  width,
		height: height,
	}
	for i := range f.stars {
		f.stars[i] = Star{
			X:          f.randX(),
			Y:          f.rng.Float64() * height,
			Size:       f.between(cfg.MinSize, cfg.MaxSize),
			Speed:      cfg.MinSpeed + f.rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed),
			Brightness: f.between(cfg.MinBrightness, cfg.MaxBrightness),
		}
	}
	return f
}

// Update moves every star. A star below the bottom edge reappears at the
// top with a new x and brightness.
func (f *Starfield) Update() {
	for i := range f.stars {
		s := &f.stars[i]
		s.Y += s.Speed
		if s.Y > f.height {
			s.Y = 0
			s.X = f.randX()
			s.Brightness = f.between(f.cfg.MinBrightness, f.cfg.MaxBrightness)
		}
	}
}

// Stars returns the stars. Callers must not modify the slice.
func (f *Starfield) Stars() []Star {
	return f.stars
}

func (f *Starfield) randX() float64 {
	return f.rng.Float64() * f.width
}

// between returns a uniform int in [lo, hi].
func (f *Starfield) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + f.rng.Intn(hi-lo+1)
}
