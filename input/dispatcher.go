package input

// Dispatcher broadcasts input events to subscribers synchronously, on the frame
// the input is sampled. It has no game logic.
type Dispatcher struct {
	subs  registry
	state State
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers fn for events of the given kind.
func (d *Dispatcher) Subscribe(kind EventKind, fn func(Event)) SubscriptionID {
	if d == nil || fn == nil || kind >= eventKindCount {
		return 0
	}
	return d.subs.add(kind, fn)
}

// Unsubscribe removes a subscriber. It reports false for unknown or stale IDs.
func (d *Dispatcher) Unsubscribe(id SubscriptionID) bool {
	if d == nil {
		return false
	}
	return d.subs.remove(id)
}

// Subscribed reports whether id still refers to a live subscriber.
func (d *Dispatcher) Subscribed(id SubscriptionID) bool {
	if d == nil {
		return false
	}
	return d.subs.alive(id)
}

// Subscribers returns how many subscribers listen for kind.
func (d *Dispatcher) Subscribers(kind EventKind) int {
	if d == nil || kind >= eventKindCount {
		return 0
	}
	return d.subs.count(kind)
}

func (d *Dispatcher) OnMove(fn func(Vector)) SubscriptionID {
	if fn == nil {
		return 0
	}
	return d.Subscribe(EventMove, func(evt Event) { fn(evt.Move) })
}

func (d *Dispatcher) OnUse(fn func(pressed bool)) SubscriptionID {
	if fn == nil {
		return 0
	}
	return d.Subscribe(EventUse, func(evt Event) { fn(evt.Pressed) })
}

func (d *Dispatcher) OnSprint(fn func(pressed bool)) SubscriptionID {
	if fn == nil {
		return 0
	}
	return d.Subscribe(EventSprint, func(evt Event) { fn(evt.Pressed) })
}

// OnSelect delivers the 1-based index of the pressed select button.
func (d *Dispatcher) OnSelect(fn func(index int)) SubscriptionID {
	if fn == nil {
		return 0
	}
	return d.Subscribe(EventSelect, func(evt Event) { fn(evt.Index) })
}

func (d *Dispatcher) OnCycle(fn func()) SubscriptionID {
	if fn == nil {
		return 0
	}
	return d.Subscribe(EventCycle, func(Event) { fn() })
}

// Dispatch delivers evt to every subscriber of its kind in subscription order.
// Subscribers added during dispatch are not called for evt; subscribers removed
// during dispatch are not called after their removal. Without subscribers the
// event is dropped.
func (d *Dispatcher) Dispatch(evt Event) {
	if d == nil || evt.Kind >= eventKindCount {
		return
	}
	d.record(evt)

	order := d.subs.order[evt.Kind]
	if len(order) == 0 {
		return
	}
	ids := make([]SubscriptionID, len(order))
	for i, slot := range order {
		ids[i] = makeSubscriptionID(slot, d.subs.slots[slot].gen)
	}
	for _, id := range ids {
		if !d.subs.alive(id) {
			continue
		}
		slot, _ := id.slot()
		d.subs.slots[slot].fn(evt)
	}
}

// State returns the latest input snapshot seen by the dispatcher.
func (d *Dispatcher) State() State {
	if d == nil {
		return State{}
	}
	return d.state
}

func (d *Dispatcher) record(evt Event) {
	switch evt.Kind {
	case EventMove:
		d.state.Move = evt.Move
	case EventUse:
		d.state.UseHeld = evt.Pressed
	case EventSprint:
		d.state.SprintHeld = evt.Pressed
	case EventSelect:
		d.state.SelectIndex = evt.Index
	}
}

// clearSelect forgets the last select index once every select button is up.
// Subscribers are not notified.
func (d *Dispatcher) clearSelect() {
	if d == nil {
		return
	}
	d.state.SelectIndex = 0
}

func (d *Dispatcher) EmitMove(v Vector) {
	d.Dispatch(Event{Kind: EventMove, Move: v.Clamped()})
}

func (d *Dispatcher) EmitUse(pressed bool) {
	d.Dispatch(Event{Kind: EventUse, Pressed: pressed})
}

func (d *Dispatcher) EmitSprint(pressed bool) {
	d.Dispatch(Event{Kind: EventSprint, Pressed: pressed})
}

func (d *Dispatcher) EmitSelect(index int) {
	d.Dispatch(Event{Kind: EventSelect, Index: index})
}

func (d *Dispatcher) EmitCycle() {
	d.Dispatch(Event{Kind: EventCycle})
}
