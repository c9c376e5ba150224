// Package clock provides the monotonic session time every timing comparison in
// the game reads from.
package clock

import "time"

// Clock reports seconds since session start and the delta of the current frame.
type Clock interface {
	Now() float64
	Delta() float64
}

// Session is advanced once per frame by the host loop.
type Session struct {
	elapsed float64
	delta   float64
}

func NewSession() *Session {
	return &Session{}
}

// Tick advances the session by dt seconds. Negative deltas are treated as zero
// so deadlines never move backwards.
func (s *Session) Tick(dt float64) {
	if s == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	s.delta = dt
	s.elapsed += dt
}

func (s *Session) Now() float64 {
	if s == nil {
		return 0
	}
	return s.elapsed
}

func (s *Session) Delta() float64 {
	if s == nil {
		return 0
	}
	return s.delta
}

// Wall ticks a Session from the real monotonic clock. Hosts that do not run at a
// fixed rate (the terminal host) use it to derive per-frame deltas.
type Wall struct {
	session *Session
	last    time.Time
	maxStep float64
}

// NewWall returns a Wall driving session. Frames longer than maxStep seconds are
// clamped so a stalled host does not teleport bodies.
func NewWall(session *Session, maxStep float64) *Wall {
	return &Wall{session: session, maxStep: maxStep}
}

// Tick measures the time since the previous call and advances the session.
func (w *Wall) Tick(now time.Time) float64 {
	if w == nil || w.session == nil {
		return 0
	}
	if w.last.IsZero() {
		w.last = now
		w.session.Tick(0)
		return 0
	}
	dt := now.Sub(w.last).Seconds()
	w.last = now
	if w.maxStep > 0 && dt > w.maxStep {
		dt = w.maxStep
	}
	w.session.Tick(dt)
	return dt
}
