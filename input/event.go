// Package input turns raw device samples into a small set of named events and
// broadcasts them to subscribers.
package input

// Vector is a 2D axis value with components in [-1, 1].
type Vector struct {
	X float64
	Y float64
}

// Clamped returns v with both components clamped to [-1, 1].
func (v Vector) Clamped() Vector {
	return Vector{X: clampAxis(v.X), Y: clampAxis(v.Y)}
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func clampAxis(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

type EventKind uint8

const (
	EventMove EventKind = iota
	EventUse
	EventSprint
	EventSelect
	EventCycle

	eventKindCount
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventUse:
		return "use"
	case EventSprint:
		return "sprint"
	case EventSelect:
		return "select"
	case EventCycle:
		return "cycle"
	}
	return "unknown"
}

// Event is a single input occurrence. Only the fields relevant to Kind are set:
// Move for EventMove, Pressed for EventUse/EventSprint, Index (1-based) for
// EventSelect.
type Event struct {
	Kind    EventKind
	Move    Vector
	Pressed bool
	Index   int
}

// State is the latest known input snapshot. It is overwritten on every sample.
type State struct {
	Move        Vector
	UseHeld     bool
	SprintHeld  bool
	SelectIndex int // 0 when no select button is down
}
