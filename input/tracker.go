package input

// MaxSelect is the number of numbered select buttons a Sample can carry.
const MaxSelect = 9

// Sample is the raw device state for one frame, as read by a host.
type Sample struct {
	Move   Vector
	Use    bool
	Sprint bool
	Select [MaxSelect]bool
	Cycle  bool
}

// Tracker converts level-triggered samples into edge-triggered events: one event
// per press, one per release, and exactly one zero-vector move when the axis is
// released.
type Tracker struct {
	prev    Sample
	started bool
}

// Apply compares sample against the previous one and dispatches the differences.
func (t *Tracker) Apply(sample Sample, d *Dispatcher) {
	if t == nil {
		return
	}
	sample.Move = sample.Move.Clamped()
	prev := t.prev
	if !t.started {
		prev = Sample{}
		t.started = true
	}
	t.prev = sample

	if sample.Move != prev.Move {
		d.EmitMove(sample.Move)
	}
	if sample.Use != prev.Use {
		d.EmitUse(sample.Use)
	}
	if sample.Sprint != prev.Sprint {
		d.EmitSprint(sample.Sprint)
	}
	for i := range sample.Select {
		if sample.Select[i] && !prev.Select[i] {
			d.EmitSelect(i + 1)
		}
	}
	if sample.Select == ([MaxSelect]bool{}) && prev.Select != ([MaxSelect]bool{}) {
		d.clearSelect()
	}
	if sample.Cycle && !prev.Cycle {
		d.EmitCycle()
	}
}

// Release emits release events for everything currently held, e.g. when the
// window loses focus.
func (t *Tracker) Release(d *Dispatcher) {
	if t == nil {
		return
	}
	t.Apply(Sample{}, d)
}
