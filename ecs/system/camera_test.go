package system

import (
	"math"
	"testing"

	"github.com/milk9111/critterswap/clock"
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
)

func TestDesiredX(t *testing.T) {
	cam := &component.Camera{ViewHalfHeight: 5, Aspect: 2}
	wide := component.LevelBounds{MinX: -20, MaxX: 20}
	narrow := component.LevelBounds{MinX: -4, MaxX: 8}

	tests := []struct {
		name   string
		bounds component.LevelBounds
		x      float64
		want   float64
	}{
		{"inside", wide, 3, 3},
		{"left edge", wide, -19, -10},
		{"right edge", wide, 50, 10},
		{"narrow level pins to midpoint", narrow, -3, 2},
		{"narrow level ignores target", narrow, 100, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DesiredX(cam, tc.bounds, tc.x); got != tc.want {
				t.Fatalf("DesiredX(%v) = %v, want %v", tc.x, got, tc.want)
			}
		})
	}
}

type cameraRig struct {
	w      *ecs.World
	clk    *clock.Session
	cs     *CameraSystem
	camera ecs.Entity
	target ecs.Entity
	bounds ecs.Entity
}

func newCameraRig(t *testing.T, smoothing float64) *cameraRig {
	t.Helper()
	r := &cameraRig{w: ecs.NewWorld(), clk: clock.NewSession()}
	r.cs = NewCameraSystem(r.clk)

	r.target = r.w.CreateEntity()
	if err := ecs.Add(r.w, r.target, component.TransformComponent, &component.Transform{X: 0, Y: 0}); err != nil {
		t.Fatal(err)
	}

	r.bounds = r.w.CreateEntity()
	if err := ecs.Add(r.w, r.bounds, component.LevelBoundsComponent, &component.LevelBounds{MinX: -20, MaxX: 20}); err != nil {
		t.Fatal(err)
	}

	r.camera = r.w.CreateEntity()
	if err := ecs.Add(r.w, r.camera, component.CameraComponent, &component.Camera{
		Target: uint64(r.target), ViewHalfHeight: 5, Aspect: 1,
		Smoothing: smoothing, OffsetY: 1,
	}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(r.w, r.camera, component.TransformComponent, &component.Transform{X: 0, Y: 1}); err != nil {
		t.Fatal(err)
	}
	return r
}

func (r *cameraRig) pos() (float64, float64) {
	t, _ := ecs.Get(r.w, r.camera, component.TransformComponent)
	return t.X, t.Y
}

func (r *cameraRig) moveTarget(x, y float64) {
	t, _ := ecs.Get(r.w, r.target, component.TransformComponent)
	t.X, t.Y = x, y
}

func TestCameraFollowSmoothing(t *testing.T) {
	r := newCameraRig(t, 8)
	r.moveTarget(5, 2)

	r.clk.Tick(0.05)
	r.cs.Update(r.w)

	x, y := r.pos()
	if math.Abs(x-2) > 1e-9 || math.Abs(y-1.8) > 1e-9 {
		t.Fatalf("expected 40%% of the way to (5, 3), got (%v, %v)", x, y)
	}
}

func TestCameraFollowLargeDeltaReachesTarget(t *testing.T) {
	r := newCameraRig(t, 8)
	r.moveTarget(5, 2)

	r.clk.Tick(1)
	r.cs.Update(r.w)

	if x, y := r.pos(); x != 5 || y != 3 {
		t.Fatalf("expected camera on target, got (%v, %v)", x, y)
	}
}

func TestCameraFollowStaysInBounds(t *testing.T) {
	r := newCameraRig(t, 8)
	r.moveTarget(100, 0)

	for i := 0; i < 200; i++ {
		r.clk.Tick(0.05)
		r.cs.Update(r.w)
		if x, _ := r.pos(); x > 15+1e-9 {
			t.Fatalf("frame %d: camera left the bounds, x=%v", i, x)
		}
	}
	if x, _ := r.pos(); math.Abs(x-15) > 1e-6 {
		t.Fatalf("expected camera to settle at the clamp, x=%v", x)
	}
}

func TestCameraMissingTargetDoesNothing(t *testing.T) {
	r := newCameraRig(t, 8)
	r.w.DestroyEntity(r.target)

	r.clk.Tick(0.05)
	r.cs.Update(r.w)

	if x, y := r.pos(); x != 0 || y != 1 {
		t.Fatalf("expected camera untouched, got (%v, %v)", x, y)
	}
}

func TestCameraWithoutLevelBoundsDoesNothing(t *testing.T) {
	r := newCameraRig(t, 8)
	r.w.DestroyEntity(r.bounds)
	r.moveTarget(5, 2)

	r.clk.Tick(0.05)
	r.cs.Update(r.w)
	if x, y := r.pos(); x != 0 || y != 1 {
		t.Fatalf("expected camera untouched without bounds, got (%v, %v)", x, y)
	}
	if r.cs.Snap(r.w, r.target) {
		t.Fatal("expected snap to fail without bounds")
	}
}

func TestCameraReadsBoundsEveryFrame(t *testing.T) {
	r := newCameraRig(t, 8)
	bounds, _ := ecs.Get(r.w, r.bounds, component.LevelBoundsComponent)
	bounds.MaxX = 10
	r.moveTarget(100, 0)

	r.clk.Tick(1)
	r.cs.Update(r.w)
	if x, _ := r.pos(); x != 5 {
		t.Fatalf("expected clamp against the updated bounds at 5, got %v", x)
	}
}

func TestCameraSnapSkipsFollowOnce(t *testing.T) {
	r := newCameraRig(t, 8)
	r.moveTarget(4, 0.5)

	if !r.cs.Snap(r.w, r.target) {
		t.Fatal("expected snap to succeed")
	}
	x, y := r.pos()
	if x != 4 || y != 1 {
		t.Fatalf("expected snap to (4, 1), got (%v, %v)", x, y)
	}
	cam, _ := ecs.Get(r.w, r.camera, component.CameraComponent)
	if cam.OffsetY != 0.5 {
		t.Fatalf("expected offset recaptured as 0.5, got %v", cam.OffsetY)
	}

	r.moveTarget(8, 0.5)
	r.clk.Tick(0.05)
	r.cs.Update(r.w)
	if nx, _ := r.pos(); nx != 4 {
		t.Fatalf("follow should be skipped on the snap frame, x=%v", nx)
	}

	r.cs.Update(r.w)
	if nx, _ := r.pos(); nx <= 4 {
		t.Fatalf("follow should resume after the snap frame, x=%v", nx)
	}
}

func TestAbilityRollTakesShortestArc(t *testing.T) {
	w := ecs.NewWorld()
	clk := clock.NewSession()
	e := w.CreateEntity()
	cam := &component.Camera{Roll: 350, RollTarget: 10, RollSpeed: 5}
	if err := ecs.Add(w, e, component.CameraComponent, cam); err != nil {
		t.Fatal(err)
	}

	sys := NewAbilityRollSystem(clk)
	clk.Tick(0.1)
	sys.Update(w)

	if cam.Roll < 350 && cam.Roll > 10 {
		t.Fatalf("roll should cross 0 rather than sweep back, got %v", cam.Roll)
	}

	for i := 0; i < 50; i++ {
		clk.Tick(0.1)
		sys.Update(w)
	}
	if d := math.Abs(cam.Roll - 10); d > 1e-3 && math.Abs(d-360) > 1e-3 {
		t.Fatalf("expected roll to settle at 10, got %v", cam.Roll)
	}
}
