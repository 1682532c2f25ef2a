package core

import (
	"fmt"
	"time"
)

// Timer is a fixed-period ticker driven by elapsed wall-clock time.
//
// Callers advance it by the frame delta and then drain it:
//
//	t.Advance(dt)
//	for t.Fired() {
//		// one period elapsed
//	}
//
// A large delta fires many times, so periodic behavior catches up after a
// stall instead of running at most once per frame. The period may change at
// any time; accumulated progress is kept.
type Timer struct {
	period  time.Duration
	elapsed time.Duration
}

// NewTimer creates a timer with the given period.
// Panics if period is not positive.
func NewTimer(period time.Duration) Timer {
	var t Timer
	t.SetPeriod(period)
	return t
}

// SetPeriod changes the period without touching accumulated time.
// Panics if period is not positive.
func (t *Timer) SetPeriod(period time.Duration) {
	if period <= 0 {
		panic(fmt.Sprintf("core: timer period must be positive, got %v", period))
	}
	t.period = period
}

// Period returns the configured period.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Elapsed returns the accumulated, not yet consumed time.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Reset discards accumulated time.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Advance adds dt to the accumulator.
// Panics if dt is negative.
func (t *Timer) Advance(dt time.Duration) {
	if dt < 0 {
		panic(fmt.Sprintf("core: timer advanced by negative delta %v", dt))
	}
	t.elapsed += dt
}

// Fired consumes one period if a full period has accumulated.
func (t *Timer) Fired() bool {
	if t.period <= 0 {
		panic("core: timer used before a period was set")
	}
	if t.elapsed < t.period {
		return false
	}
	t.elapsed -= t.period
	return true
}

// Tick advances by dt and drains the timer, returning the number of firings.
// Use the Advance/Fired loop instead when the loop body may change the period.
func (t *Timer) Tick(dt time.Duration) int {
	t.Advance(dt)
	n := 0
	for t.Fired() {
		n++
	}
	return n
}
