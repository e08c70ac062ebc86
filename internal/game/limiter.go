package game

import "time"

// Limiter gates a loop phase to at most one run per Interval. The tick and
// frame phases each own a Limiter so they throttle independently.
type Limiter struct {
	Interval time.Duration
	last     time.Time
	started  bool
}

// NewLimiter creates a limiter that is ready immediately.
func NewLimiter(interval time.Duration) *Limiter {
	return &Limiter{Interval: interval}
}

// Ready reports whether the next run is due at now. Runs follow a fixed
// schedule one Interval apart, so a poll that lands slightly early only
// delays a run instead of dropping it. A limiter that has fallen more than
// one Interval behind restarts its schedule at now rather than bursting.
func (l *Limiter) Ready(now time.Time) bool {
	if !l.started {
		l.last = now
		l.started = true
		return true
	}
	if now.Sub(l.last) < l.Interval {
		return false
	}
	l.last = l.last.Add(l.Interval)
	if now.Sub(l.last) >= l.Interval {
		l.last = now
	}
	return true
}

// Reset makes the limiter ready on the next call.
func (l *Limiter) Reset() {
	l.started = false
}

// TickInterval converts a ticks-per-second rate to an interval.
// Non-positive rates are treated as one tick per second.
func TickInterval(tps int) time.Duration {
	if tps <= 0 {
		tps = 1
	}
	return time.Second / time.Duration(tps)
}

// FrameInterval converts a frame cap to an interval. A cap of 0 means
// unlimited, which is approximated by a 1ms interval.
func FrameInterval(maxFPS int) time.Duration {
	if maxFPS <= 0 {
		return time.Millisecond
	}
	return time.Second / time.Duration(maxFPS)
}
