package tween

import "time"

// EaseFunc maps progress in [0, 1] to eased progress. Both ends must map to themselves.
type EaseFunc func(t float64) float64

func Linear(t float64) float64 {
	return t
}

func EaseInQuad(t float64) float64 {
	return t * t
}

func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// BounceOut settles into place like a piece landing in its slot.
func BounceOut(t float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// Progress returns elapsed/duration clamped to [0, 1]. A non-positive duration
// is always complete.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(duration)
}

func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Tween moves a value from From to To over Duration.
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Ease     EaseFunc

	elapsed time.Duration
}

func New(from, to float64, duration time.Duration, ease EaseFunc) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{From: from, To: to, Duration: duration, Ease: ease}
}

// Step advances the tween by dt and returns the new value.
func (t *Tween) Step(dt time.Duration) float64 {
	if dt > 0 {
		t.elapsed += dt
	}
	return t.Value()
}

func (t *Tween) Value() float64 {
	p := Progress(t.elapsed, t.Duration)
	if p >= 1 {
		return t.To
	}
	return Lerp(t.From, t.To, t.Ease(p))
}

func (t *Tween) Done() bool {
	return Progress(t.elapsed, t.Duration) >= 1
}

func (t *Tween) Reset() {
	t.elapsed = 0
}
