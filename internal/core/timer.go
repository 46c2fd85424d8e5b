package core

import "time"

const (
	minInterval = 100 * time.Millisecond
	maxInterval = 3 * time.Second

	fasterFactor = 0.7
	slowerFactor = 1.4
)

// Pacer decides when the next generation is due at an adjustable
// generations-per-second rate. Callers pass the current time so the pacing can
// be driven by any clock.
type Pacer struct {
	interval time.Duration
	last     time.Time
}

// NewPacer constructs a Pacer running at gps generations per second.
func NewPacer(gps float64) *Pacer {
	p := &Pacer{interval: time.Second}
	p.SetSpeed(gps)
	return p
}

// Interval returns the time between generations.
func (p *Pacer) Interval() time.Duration { return p.interval }

// Speed returns the rate in generations per second.
func (p *Pacer) Speed() float64 {
	return float64(time.Second) / float64(p.interval)
}

// SetSpeed changes the rate. Non-positive rates are ignored.
func (p *Pacer) SetSpeed(gps float64) {
	if gps <= 0 {
		return
	}
	p.interval = time.Duration(float64(time.Second) / gps)
}

// Faster shortens the interval unless it is already at the lower bound.
func (p *Pacer) Faster() {
	if p.interval > minInterval {
		p.interval = time.Duration(float64(p.interval) * fasterFactor)
	}
}

// Slower lengthens the interval unless it is already at the upper bound.
func (p *Pacer) Slower() {
	if p.interval < maxInterval {
		p.interval = time.Duration(float64(p.interval) * slowerFactor)
	}
}

// Restart begins a new interval at now.
func (p *Pacer) Restart(now time.Time) {
	p.last = now
}

// Due reports whether a full interval has elapsed since the last restart and,
// if so, restarts the interval at now.
func (p *Pacer) Due(now time.Time) bool {
	if p.last.IsZero() {
		p.last = now
	}
	if now.Sub(p.last) < p.interval {
		return false
	}
	p.last = now
	return true
}
