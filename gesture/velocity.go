package gesture

import "time"

const (
	historySize = 20
	// Samples older than maxAge relative to the newest one are assumed
	// to not be part of the final motion.
	maxAge = 100 * time.Millisecond
)

// estimator computes a one-dimensional velocity estimate for a set of
// timestamped positions, using a least squares linear fit over the
// trailing window. Gio keeps its extrapolation code in an internal
// package, so we carry our own, simpler estimator.
type estimator struct {
	// Circular buffer of samples; idx is the next write position.
	idx     int
	n       int
	samples [historySize]velocitySample
}

type velocitySample struct {
	t time.Duration
	v float32
}

func (e *estimator) sample(t time.Duration, v float32) {
	e.samples[e.idx] = velocitySample{t, v}
	e.idx = (e.idx + 1) % historySize
	if e.n < historySize {
		e.n++
	}
}

// estimate returns the fitted velocity in units per second. ok is
// false if fewer than two usable samples were collected, or if all
// samples share a timestamp.
func (e *estimator) estimate() (velocity float32, ok bool) {
	if e.n == 0 {
		return 0, false
	}
	newest := e.samples[(e.idx-1+historySize)%historySize]
	var sumT, sumV, sumTT, sumTV float64
	n := 0
	// Walk backwards collecting samples, with times relative to the
	// newest sample so the fit is well conditioned.
	for i := 0; i < e.n; i++ {
		s := e.samples[(e.idx-1-i+historySize)%historySize]
		age := newest.t - s.t
		if age > maxAge {
			break
		}
		t := -age.Seconds()
		v := float64(s.v)
		sumT += t
		sumV += v
		sumTT += t * t
		sumTV += t * v
		n++
	}
	if n < 2 {
		return 0, false
	}
	den := float64(n)*sumTT - sumT*sumT
	if den == 0 {
		return 0, false
	}
	return float32((float64(n)*sumTV - sumT*sumV) / den), true
}
