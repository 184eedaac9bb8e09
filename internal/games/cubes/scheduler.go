package cubes

import "time"

// GravityClock gates the falling rule to a fixed cadence independent of
// the platform's tick rate. The timer state (interval plus accumulated
// remainder) is explicit rather than ambient so tests can inject synthetic
// elapsed time.
type GravityClock struct {
	interval    time.Duration
	accumulated time.Duration
}

// NewGravityClock builds a clock that owes one gravity step per
// 1/updatesPerSecond. Non-positive rates fall back to one update per
// second.
func NewGravityClock(updatesPerSecond float64) *GravityClock {
	if updatesPerSecond <= 0 {
		updatesPerSecond = 1
	}
	return &GravityClock{
		interval: time.Duration(float64(time.Second) / updatesPerSecond),
	}
}

// Interval returns the duration between gravity steps.
func (c *GravityClock) Interval() time.Duration {
	return c.interval
}

// Advance adds elapsed time and returns the number of gravity steps now
// due. The remainder below one interval is carried over to the next call.
func (c *GravityClock) Advance(elapsed time.Duration) int {
	c.accumulated += elapsed

	steps := 0
	for c.accumulated >= c.interval {
		c.accumulated -= c.interval
		steps++
	}
	return steps
}

// Reset drops any accumulated time, e.g. after unpausing.
func (c *GravityClock) Reset() {
	c.accumulated = 0
}
