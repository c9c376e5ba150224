package input

import "testing"

type recorder struct {
	events []Event
}

func (r *recorder) attach(d *Dispatcher) {
	for k := EventMove; k < eventKindCount; k++ {
		d.Subscribe(k, func(evt Event) { r.events = append(r.events, evt) })
	}
}

func TestTrackerEdgeTriggering(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	r.attach(d)
	var tr Tracker

	steps := []struct {
		name   string
		sample Sample
		want   []Event
	}{
		{"idle", Sample{}, nil},
		{"press_right", Sample{Move: Vector{X: 1}}, []Event{{Kind: EventMove, Move: Vector{X: 1}}}},
		{"hold_right", Sample{Move: Vector{X: 1}}, nil},
		{"release_axis", Sample{}, []Event{{Kind: EventMove}}},
		{"still_released", Sample{}, nil},
		{"press_use", Sample{Use: true}, []Event{{Kind: EventUse, Pressed: true}}},
		{"hold_use", Sample{Use: true}, nil},
		{"release_use", Sample{}, []Event{{Kind: EventUse, Pressed: false}}},
		{"select_two", Sample{Select: [MaxSelect]bool{1: true}}, []Event{{Kind: EventSelect, Index: 2}}},
		{"select_release", Sample{}, nil},
		{"cycle", Sample{Cycle: true}, []Event{{Kind: EventCycle}}},
		{"cycle_held", Sample{Cycle: true}, nil},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			r.events = nil
			tr.Apply(step.sample, d)
			if len(r.events) != len(step.want) {
				t.Fatalf("expected %d events, got %d: %+v", len(step.want), len(r.events), r.events)
			}
			for i := range step.want {
				if r.events[i] != step.want[i] {
					t.Fatalf("event %d: expected %+v, got %+v", i, step.want[i], r.events[i])
				}
			}
		})
	}
}

func TestTrackerReleaseAll(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	r.attach(d)
	var tr Tracker

	tr.Apply(Sample{Move: Vector{X: -1}, Sprint: true}, d)
	r.events = nil
	tr.Release(d)

	if len(r.events) != 2 {
		t.Fatalf("expected move + sprint release, got %+v", r.events)
	}
	if r.events[0].Kind != EventMove || !r.events[0].Move.IsZero() {
		t.Fatalf("expected zero move first, got %+v", r.events[0])
	}
	if r.events[1].Kind != EventSprint || r.events[1].Pressed {
		t.Fatalf("expected sprint release, got %+v", r.events[1])
	}
}

func TestTrackerClearsSelectIndex(t *testing.T) {
	d := NewDispatcher()
	var tr Tracker

	tr.Apply(Sample{Select: [MaxSelect]bool{1: true}}, d)
	if got := d.State().SelectIndex; got != 2 {
		t.Fatalf("expected select index 2 while held, got %d", got)
	}
	tr.Apply(Sample{Select: [MaxSelect]bool{1: true, 4: true}}, d)
	if got := d.State().SelectIndex; got != 5 {
		t.Fatalf("expected latest press to win, got %d", got)
	}
	tr.Apply(Sample{Select: [MaxSelect]bool{4: true}}, d)
	if got := d.State().SelectIndex; got != 5 {
		t.Fatalf("expected index kept while a button is down, got %d", got)
	}
	tr.Apply(Sample{}, d)
	if got := d.State().SelectIndex; got != 0 {
		t.Fatalf("expected select index cleared on release, got %d", got)
	}
}
