package system

import (
	"testing"

	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
	"github.com/milk9111/critterswap/progress"
)

func addFly(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.CollectibleComponent, &component.Collectible{Kind: "fly", Width: 0.4, Height: 0.4}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestCollectRequiresActiveCritter(t *testing.T) {
	f := newFixture(t, 0, 3)
	f.step(1)

	near := f.transform(f.frog)
	eaten := addFly(t, f.w, near.X, near.Y)
	untouched := addFly(t, f.w, 4, 0.3) // on the benched fish

	f.step(1)

	if f.w.IsAlive(eaten) {
		t.Fatal("expected the fly under the frog to be collected")
	}
	if !f.w.IsAlive(untouched) {
		t.Fatal("benched critters should not collect")
	}

	p, _ := ecs.Get(f.w, f.roster, component.ProgressComponent)
	if p.Collected != 1 {
		t.Fatalf("expected one collected, got %d", p.Collected)
	}
	if shots := f.pres.oneShots("collect"); len(shots) != 1 || shots[0].entity != uint64(f.frog) {
		t.Fatalf("expected one collect sound from the frog, got %+v", shots)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		bx, by float64
		want   bool
	}{
		{"same centre", 0, 0, true},
		{"touching edge", 1, 0, false},
		{"overlapping corner", 0.9, 0.9, true},
		{"far", 5, 5, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := overlaps(0, 0, 1, 1, tc.bx, tc.by, 1, 1); got != tc.want {
				t.Fatalf("overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProgressUnlocksFromCollects(t *testing.T) {
	f := newFixture(t, 0, 1)
	rule, err := progress.NewRule([]byte(`unlocked = 1 + collected`))
	if err != nil {
		t.Fatal(err)
	}
	ps := NewProgressSystem(rule, f.sw)
	f.sched.Add(ps)

	f.step(1)
	if got := f.rosterComp().Unlocked; got != 1 {
		t.Fatalf("expected one unlocked before collecting, got %d", got)
	}

	pos := f.transform(f.frog)
	addFly(t, f.w, pos.X, pos.Y)
	f.step(1)

	if got := f.rosterComp().Unlocked; got != 2 {
		t.Fatalf("expected a second critter unlocked, got %d", got)
	}
	if !f.sw.Select(f.w, 2) {
		t.Fatal("expected the new critter to be selectable")
	}
	if ps.Err() != nil {
		t.Fatal(ps.Err())
	}
}

func TestProgressRestoresOnFirstFrame(t *testing.T) {
	f := newFixture(t, 0, 1)
	p, _ := ecs.Get(f.w, f.roster, component.ProgressComponent)
	p.Collected = 2

	rule, err := progress.NewRule([]byte(`unlocked = 1 + collected`))
	if err != nil {
		t.Fatal(err)
	}
	f.sched.Add(NewProgressSystem(rule, f.sw))
	f.step(1)

	if got := f.rosterComp().Unlocked; got != 3 {
		t.Fatalf("expected restored progress to unlock all three, got %d", got)
	}
}

func TestProgressKeepsLastError(t *testing.T) {
	f := newFixture(t, 0, 1)
	rule, err := progress.NewRule([]byte(`unlocked = collected / roster_size`))
	if err != nil {
		t.Fatal(err)
	}
	ps := NewProgressSystem(rule, f.sw)
	f.sw.Update(f.w)

	rs := f.rosterComp()
	rs.Slots = rs.Slots[:0]
	ps.Update(f.w)
	if ps.Err() == nil {
		t.Fatal("expected division by zero to surface as an error")
	}
}
