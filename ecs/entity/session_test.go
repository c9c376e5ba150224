package entity

import (
	"testing"

	"github.com/milk9111/critterswap/clock"
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
	"github.com/milk9111/critterswap/ecs/system"
	"github.com/milk9111/critterswap/input"
	"github.com/milk9111/critterswap/prefabs"
)

func newTestSession(t *testing.T, collected, unlocked int) (*Session, *clock.Session, *input.Dispatcher) {
	t.Helper()
	cfg, err := LoadConfig("session.yaml")
	if err != nil {
		t.Fatal(err)
	}
	clk := clock.NewSession()
	d := input.NewDispatcher()
	cfg.Clock = clk
	cfg.Dispatcher = d
	cfg.Collected = collected
	cfg.Unlocked = unlocked

	s, err := NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return s, clk, d
}

func TestNewSessionFromEmbeddedPrefabs(t *testing.T) {
	s, clk, _ := newTestSession(t, 0, 0)
	clk.Tick(1.0 / 60)
	s.Update()

	if len(s.Slots) != 3 {
		t.Fatalf("expected three critters, got %d", len(s.Slots))
	}
	active, ok := s.ActiveCritter()
	if !ok || active != s.Slots[0] {
		t.Fatalf("expected the frog active, got %v %v", active, ok)
	}
	c, _ := ecs.Get(s.World, active, component.CritterComponent)
	if c.Name != "frog" {
		t.Fatalf("expected frog, got %s", c.Name)
	}

	if got := ecs.Count(s.World, component.GroundTagComponent.Kind()); got != 6 {
		t.Fatalf("expected six ground blocks, got %d", got)
	}
	if got := ecs.Count(s.World, component.CollectibleComponent.Kind()); got != 8 {
		t.Fatalf("expected eight flies, got %d", got)
	}

	collected, unlocked := s.Progression()
	if collected != 0 || unlocked != 1 {
		t.Fatalf("expected a fresh session, got %d/%d", collected, unlocked)
	}
}

func TestNewSessionRestoresProgress(t *testing.T) {
	s, clk, d := newTestSession(t, 4, 0)
	clk.Tick(1.0 / 60)
	s.Update()

	if _, unlocked := s.Progression(); unlocked != 2 {
		t.Fatalf("expected four flies to unlock two critters, got %d", unlocked)
	}

	d.EmitSelect(2)
	active, _ := s.ActiveCritter()
	if active != s.Slots[1] {
		t.Fatal("expected the snail selectable after restoring progress")
	}
}

func TestNewSessionCameraStartsInBounds(t *testing.T) {
	s, clk, _ := newTestSession(t, 0, 0)
	clk.Tick(1.0 / 60)
	s.Update()

	e, ok := s.World.First(component.CameraComponent.Kind())
	if !ok {
		t.Fatal("missing camera")
	}
	cam, _ := ecs.Get(s.World, e, component.CameraComponent)
	tr, _ := ecs.Get(s.World, e, component.TransformComponent)
	bounds, ok := system.LevelBounds(s.World)
	if !ok {
		t.Fatal("missing level bounds")
	}
	half := cam.ViewHalfHeight * cam.Aspect
	if tr.X < bounds.MinX+half-1e-9 || tr.X > bounds.MaxX-half+1e-9 {
		t.Fatalf("camera x=%v outside [%v, %v]", tr.X, bounds.MinX+half, bounds.MaxX-half)
	}
	if cam.Target != uint64(s.Slots[0]) {
		t.Fatal("expected camera on the frog")
	}
}

func TestNewCameraNeedsLevel(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewCameraAt(w, prefabs.CameraSpec{ViewHalfHeight: 5, Aspect: 1}, 0, 0); err == nil {
		t.Fatal("expected an error without level bounds")
	}
}

func TestCloseDropsSubscriptions(t *testing.T) {
	s, _, d := newTestSession(t, 0, 0)
	if d.Subscribers(input.EventMove) != 3 || d.Subscribers(input.EventSelect) != 1 {
		t.Fatal("expected session subscribed to the dispatcher")
	}

	s.Close()
	for _, kind := range []input.EventKind{input.EventMove, input.EventUse, input.EventSprint, input.EventSelect, input.EventCycle} {
		if got := d.Subscribers(kind); got != 0 {
			t.Fatalf("kind %v: expected no subscribers after close, got %d", kind, got)
		}
	}
}

func TestNewSessionRejectsMissingSpecs(t *testing.T) {
	if _, err := NewSession(Config{}); err == nil {
		t.Fatal("expected an error without specs")
	}
}

func TestNewCritterRejectsUnknownLocomotion(t *testing.T) {
	w := ecs.NewWorld()
	_, err := NewCritter(w, prefabs.CritterSpec{Name: "newt", Locomotion: "teleport"}, 0)
	if err == nil {
		t.Fatal("expected an error for unknown locomotion")
	}
}

func TestNewLevelDefaultsCollectibleSize(t *testing.T) {
	w := ecs.NewWorld()
	_, err := NewLevel(w, &prefabs.LevelSpec{
		Name:         "test",
		Bounds:       prefabs.BoundsSpec{MinX: -5, MaxX: 5},
		Collectibles: []prefabs.CollectibleSpec{{Kind: "fly", X: 1, Y: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}
	e, ok := w.First(component.CollectibleComponent.Kind())
	if !ok {
		t.Fatal("missing collectible")
	}
	c, _ := ecs.Get(w, e, component.CollectibleComponent)
	if c.Width != defaultCollectibleSize || c.Height != defaultCollectibleSize {
		t.Fatalf("expected default size, got %vx%v", c.Width, c.Height)
	}
}
