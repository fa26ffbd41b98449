package window

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// overlayFadeSeconds is how long end and instruction panels take to appear.
const overlayFadeSeconds = 0.35

// Overlay fades a panel in when it first appears.
type Overlay struct {
	tween *gween.Tween
	alpha float32
	shown bool
}

// Show starts the fade-in unless the panel is already shown.
func (o *Overlay) Show() {
	if o.shown {
		return
	}
	o.shown = true
	o.alpha = 0
	o.tween = gween.New(0, 1, overlayFadeSeconds, ease.OutCubic)
}

// Hide removes the panel immediately.
func (o *Overlay) Hide() {
	o.shown = false
	o.alpha = 0
	o.tween = nil
}

// Update advances the fade by dt seconds and returns the current alpha.
func (o *Overlay) Update(dt float32) float32 {
	if o.tween == nil {
		return o.alpha
	}
	alpha, finished := o.tween.Update(dt)
	o.alpha = alpha
	if finished {
		o.alpha = 1
		o.tween = nil
	}
	return o.alpha
}

// Alpha returns the current opacity in [0, 1].
func (o *Overlay) Alpha() float32 {
	return o.alpha
}

// Visible reports whether the panel is shown.
func (o *Overlay) Visible() bool {
	return o.shown
}
