package ecs

// EventType names a world event.
type EventType string

const (
	EventCritterSwitched EventType = "critter_switched"
	EventCollected       EventType = "collected"
	EventUnlocked        EventType = "unlocked"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// SwitchEvent is the payload of EventCritterSwitched.
type SwitchEvent struct {
	From      Entity
	To        Entity
	FromIndex int
	ToIndex   int
}

// UnlockEvent is the payload of EventUnlocked.
type UnlockEvent struct {
	Unlocked int
}

// CollectEvent is the payload of EventCollected.
type CollectEvent struct {
	By        Entity
	Kind      string
	Collected int
}

// EventQueue is a FIFO queue that lives for one frame.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Peek returns queued events of type t without consuming them.
func (q *EventQueue) Peek(t EventType) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
