package cubes

import (
	"testing"
	"time"
)

func TestGravityClockInterval(t *testing.T) {
	tests := []struct {
		rate float64
		want time.Duration
	}{
		{1, time.Second},
		{3, time.Second / 3},
		{6, time.Second / 6},
	}

	for _, tt := range tests {
		c := NewGravityClock(tt.rate)
		if c.Interval() != tt.want {
			t.Errorf("NewGravityClock(%v).Interval() = %v, want %v", tt.rate, c.Interval(), tt.want)
		}
	}
}

func TestGravityClockAdvance(t *testing.T) {
	c := NewGravityClock(1) // one step per second

	if steps := c.Advance(999 * time.Millisecond); steps != 0 {
		t.Errorf("999ms owes %d steps, want 0", steps)
	}
	if steps := c.Advance(1 * time.Millisecond); steps != 1 {
		t.Errorf("crossing the interval owes %d steps, want 1", steps)
	}
	if steps := c.Advance(0); steps != 0 {
		t.Errorf("no elapsed time owes %d steps, want 0", steps)
	}
}

func TestGravityClockMultipleSteps(t *testing.T) {
	c := NewGravityClock(2) // 500ms interval

	if steps := c.Advance(1250 * time.Millisecond); steps != 2 {
		t.Errorf("1250ms at 2/s owes %d steps, want 2", steps)
	}
	// 250ms remainder carried over
	if steps := c.Advance(250 * time.Millisecond); steps != 1 {
		t.Errorf("remainder not carried: got %d steps, want 1", steps)
	}
}

func TestGravityClockReset(t *testing.T) {
	c := NewGravityClock(1)

	c.Advance(900 * time.Millisecond)
	c.Reset()

	if steps := c.Advance(900 * time.Millisecond); steps != 0 {
		t.Errorf("Reset did not drop accumulated time: got %d steps", steps)
	}
}

func TestGravityClockBadRate(t *testing.T) {
	c := NewGravityClock(0)
	if c.Interval() != time.Second {
		t.Errorf("non-positive rate should fall back to 1/s, got interval %v", c.Interval())
	}
}
