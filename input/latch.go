package input

import "time"

// Latch turns key presses from devices that never report releases, such as a
// terminal, into held state. A key stays held until Hold passes without
// another press or auto-repeat of it.
type Latch struct {
	Hold time.Duration
	last map[string]time.Time
}

const DefaultLatchHold = 150 * time.Millisecond

func NewLatch(hold time.Duration) *Latch {
	if hold <= 0 {
		hold = DefaultLatchHold
	}
	return &Latch{Hold: hold, last: make(map[string]time.Time)}
}

func (l *Latch) Press(key string, now time.Time) {
	if l == nil {
		return
	}
	l.last[key] = now
}

func (l *Latch) Held(key string, now time.Time) bool {
	if l == nil {
		return false
	}
	t, ok := l.last[key]
	if !ok {
		return false
	}
	if now.Sub(t) > l.Hold {
		delete(l.last, key)
		return false
	}
	return true
}

// Clear releases every key.
func (l *Latch) Clear() {
	if l == nil {
		return
	}
	clear(l.last)
}
