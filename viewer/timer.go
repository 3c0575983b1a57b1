package viewer

import "time"

// Timer reports seconds since start, sampled once per frame so every system
// in a frame sees the same time.
type Timer struct {
	start   time.Time
	now     func() time.Time
	current float64
}

// NewTimer starts a timer at now().
func NewTimer(now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{start: now(), now: now}
}

// Tick samples the clock and returns the elapsed seconds and the seconds
// since the previous Tick.
func (t *Timer) Tick() (seconds, dt float64) {
	prev := t.current
	t.current = t.now().Sub(t.start).Seconds()
	return t.current, t.current - prev
}

// Seconds returns the time sampled by the last Tick.
func (t *Timer) Seconds() float64 {
	return t.current
}
