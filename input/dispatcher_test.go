package input

import "testing"

func TestDispatchRoutesByKind(t *testing.T) {
	d := NewDispatcher()

	var moves []Vector
	var uses []bool
	d.OnMove(func(v Vector) { moves = append(moves, v) })
	d.OnUse(func(pressed bool) { uses = append(uses, pressed) })

	d.EmitMove(Vector{X: 0.5})
	d.EmitUse(true)
	d.EmitSprint(true)

	if len(moves) != 1 || moves[0].X != 0.5 {
		t.Fatalf("expected one move event with x=0.5, got %v", moves)
	}
	if len(uses) != 1 || !uses[0] {
		t.Fatalf("expected one use press, got %v", uses)
	}
	if st := d.State(); !st.SprintHeld || st.Move.X != 0.5 {
		t.Fatalf("state not recorded: %+v", st)
	}
}

func TestEmitMoveClampsAxes(t *testing.T) {
	d := NewDispatcher()
	var got Vector
	d.OnMove(func(v Vector) { got = v })
	d.EmitMove(Vector{X: 3, Y: -2})
	if got.X != 1 || got.Y != -1 {
		t.Fatalf("expected clamped (1,-1), got %+v", got)
	}
}

func TestNoSubscribersDropsEvent(t *testing.T) {
	d := NewDispatcher()
	d.EmitCycle()
	d.EmitSelect(2)
	if d.Subscribers(EventCycle) != 0 {
		t.Fatalf("expected no subscribers")
	}
}

func TestUnsubscribeIsExplicitAndGenerational(t *testing.T) {
	d := NewDispatcher()

	calls := 0
	id := d.OnCycle(func() { calls++ })
	if !id.Valid() {
		t.Fatalf("expected a valid id")
	}
	d.EmitCycle()

	if !d.Unsubscribe(id) {
		t.Fatalf("first unsubscribe should succeed")
	}
	if d.Unsubscribe(id) {
		t.Fatalf("second unsubscribe of the same id should fail")
	}
	d.EmitCycle()
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}

	// The freed slot is recycled with a new generation; the stale id must not
	// remove the new subscriber.
	other := 0
	id2 := d.OnCycle(func() { other++ })
	if id2 == id {
		t.Fatalf("recycled slot must carry a new generation")
	}
	if d.Unsubscribe(id) {
		t.Fatalf("stale id removed a live subscriber")
	}
	d.EmitCycle()
	if other != 1 || !d.Subscribed(id2) {
		t.Fatalf("expected new subscriber to stay live, calls=%d", other)
	}
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()

	var order []string
	var second SubscriptionID
	d.OnUse(func(bool) {
		order = append(order, "first")
		d.Unsubscribe(second)
	})
	second = d.OnUse(func(bool) { order = append(order, "second") })
	d.OnUse(func(bool) { order = append(order, "third") })

	d.EmitUse(true)
	if len(order) != 2 || order[0] != "first" || order[1] != "third" {
		t.Fatalf("unexpected call order %v", order)
	}
}

func TestSubscribeDuringDispatchWaitsForNextEvent(t *testing.T) {
	d := NewDispatcher()
	late := 0
	d.OnSprint(func(bool) {
		if late == 0 {
			d.OnSprint(func(bool) { late++ })
		}
	})
	d.EmitSprint(true)
	if late != 0 {
		t.Fatalf("subscriber added mid-dispatch should not see the current event")
	}
	d.EmitSprint(false)
	if late != 1 {
		t.Fatalf("expected late subscriber on the next event, got %d", late)
	}
}
