package config

import "math"

// Ramp advances the world fall speed and spawn chance once per frame.
type Ramp struct {
	objects ObjectsConfig
	spawn   SpawnConfig
}

// NewRamp creates a ramp for the given config.
func NewRamp(cfg CatchConfig) *Ramp {
	return &Ramp{
		objects: cfg.Objects,
		spawn:   cfg.Spawn,
	}
}

// IsEnabled reports whether either quantity changes over time.
func (r *Ramp) IsEnabled() bool {
	return r.objects.SpeedIncrement > 0 || r.spawn.ChanceIncrement > 0
}

// NextSpeed returns the fall speed for the next frame.
func (r *Ramp) NextSpeed(speed float64) float64 {
	speed += r.objects.SpeedIncrement
	if r.objects.MaxSpeed > 0 {
		speed = math.Min(speed, r.objects.MaxSpeed)
	}
	return speed
}

// NextChance returns the spawn chance for the next frame, never above 1.
func (r *Ramp) NextChance(chance float64) float64 {
	chance += r.spawn.ChanceIncrement
	limit := 1.0
	if r.spawn.MaxChance > 0 {
		limit = r.spawn.MaxChance
	}
	return math.Min(chance, limit)
}

// SpeedAfter returns the speed after n frames of ramping, without
// accumulating rounding error.
func (r *Ramp) SpeedAfter(n uint64) float64 {
	speed := r.objects.InitialSpeed + float64(n)*r.objects.SpeedIncrement
	if r.objects.MaxSpeed > 0 {
		speed = math.Min(speed, r.objects.MaxSpeed)
	}
	return speed
}
