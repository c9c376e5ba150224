package system

import (
	"testing"

	"github.com/milk9111/critterswap/clock"
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
	"github.com/milk9111/critterswap/input"
	"github.com/milk9111/critterswap/motion"
)

const frameDt = 0.05

type presented struct {
	entity uint64
	method string
	name   string
	on     bool
	pitch  float64
}

type recordingPresenter struct {
	calls     []presented
	onVisible func(e uint64, visible bool)
}

func (p *recordingPresenter) SetFacing(e uint64, left bool) {
	p.calls = append(p.calls, presented{entity: e, method: "facing", on: left})
}

func (p *recordingPresenter) SetAnimationFlag(e uint64, name string, on bool) {
	p.calls = append(p.calls, presented{entity: e, method: "flag", name: name, on: on})
}

func (p *recordingPresenter) PlayAnimation(e uint64, name string) {
	p.calls = append(p.calls, presented{entity: e, method: "play", name: name})
}

func (p *recordingPresenter) PlayOneShot(e uint64, clip string, pitch float64) {
	p.calls = append(p.calls, presented{entity: e, method: "oneshot", name: clip, pitch: pitch})
}

func (p *recordingPresenter) SetVisible(e uint64, visible bool) {
	p.calls = append(p.calls, presented{entity: e, method: "visible", on: visible})
	if p.onVisible != nil {
		p.onVisible(e, visible)
	}
}

func (p *recordingPresenter) oneShots(clip string) []presented {
	var out []presented
	for _, c := range p.calls {
		if c.method == "oneshot" && c.name == clip {
			out = append(out, c)
		}
	}
	return out
}

type fixture struct {
	t     *testing.T
	w     *ecs.World
	clk   *clock.Session
	d     *input.Dispatcher
	pres  *recordingPresenter
	phys  *PhysicsSystem
	loco  *LocomotionSystem
	cam   *CameraSystem
	sw    *SwitchSystem
	calls *AmbientCallSystem
	sched *ecs.Scheduler

	frog, snail, fish ecs.Entity
	camera            ecs.Entity
	roster            ecs.Entity
}

// newFixture builds a pond with frog, snail and fish in slots 0..2, standing
// apart on one floor.
func newFixture(t *testing.T, active, unlocked int) *fixture {
	t.Helper()

	f := &fixture{
		t:    t,
		w:    ecs.NewWorld(),
		clk:  clock.NewSession(),
		d:    input.NewDispatcher(),
		pres: &recordingPresenter{},
	}
	f.phys = NewPhysicsSystem(f.clk, 9.81)
	f.loco = NewLocomotionSystem(f.d, f.clk, f.phys, f.pres)
	f.cam = NewCameraSystem(f.clk)
	f.sw = NewSwitchSystem(f.d, f.phys, f.loco, f.cam)
	f.calls = NewAmbientCallSystem(f.clk, f.pres)
	f.calls.pitch = func() float64 { return 1.02 }

	floor := f.w.CreateEntity()
	f.must(ecs.Add(f.w, floor, component.TransformComponent, &component.Transform{X: 0, Y: -0.5}))
	f.must(ecs.Add(f.w, floor, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width: 40, Height: 1, Friction: 0.8, Static: true, Enabled: true,
	}))

	f.frog = f.critter("frog", 0, -4, motion.NewHop(motion.DefaultHopTuning()))
	f.must(ecs.Add(f.w, f.frog, component.AmbientCallComponent, &component.AmbientCall{
		Clip: "ribbit", Interval: 0.5, Pause: 1,
	}))
	f.snail = f.critter("snail", 1, 0, motion.NewChargeSprint(motion.DefaultChargeSprintTuning()))
	f.fish = f.critter("fish", 2, 4, motion.NewSimpleAccel(motion.DefaultSimpleAccelTuning()))

	bounds := f.w.CreateEntity()
	f.must(ecs.Add(f.w, bounds, component.LevelBoundsComponent, &component.LevelBounds{MinX: -20, MaxX: 20}))

	f.camera = f.w.CreateEntity()
	f.must(ecs.Add(f.w, f.camera, component.CameraComponent, &component.Camera{
		ViewHalfHeight: 5, Aspect: 16.0 / 9.0, Smoothing: 8, RollSpeed: 5,
	}))
	f.must(ecs.Add(f.w, f.camera, component.TransformComponent, &component.Transform{X: 0, Y: 1.8}))

	f.roster = f.w.CreateEntity()
	f.must(ecs.Add(f.w, f.roster, component.RosterComponent, &component.Roster{
		Slots:    []uint64{uint64(f.frog), uint64(f.snail), uint64(f.fish)},
		Active:   active,
		Unlocked: unlocked,
	}))
	f.must(ecs.Add(f.w, f.roster, component.ProgressComponent, &component.Progress{}))

	for _, e := range []ecs.Entity{f.frog, f.snail, f.fish} {
		f.loco.Attach(f.w, e)
	}
	f.sw.Attach(f.w)

	f.sched = ecs.NewScheduler(
		f.sw,
		f.loco,
		f.phys,
		NewCollectSystem(f.pres),
		f.calls,
		f.cam,
		NewAbilityRollSystem(f.clk),
		NewNoticeSystem(f.clk, f.pres),
	)
	return f
}

func (f *fixture) critter(name string, slot int, x float64, c motion.Controller) ecs.Entity {
	e := f.w.CreateEntity()
	f.must(ecs.Add(f.w, e, component.CritterComponent, &component.Critter{Name: name, Slot: slot}))
	f.must(ecs.Add(f.w, e, component.TransformComponent, &component.Transform{X: x, Y: 0.3}))
	f.must(ecs.Add(f.w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width: 0.5, Height: 0.5, Mass: 1, Friction: 0.6,
	}))
	f.must(ecs.Add(f.w, e, component.ContactComponent, &component.Contact{}))
	f.must(ecs.Add(f.w, e, component.GravityScaleComponent, &component.GravityScale{Scale: 1}))
	f.must(ecs.Add(f.w, e, component.LocomotionComponent, &component.Locomotion{Controller: c}))
	return e
}

func (f *fixture) must(err error) {
	f.t.Helper()
	if err != nil {
		f.t.Fatal(err)
	}
}

func (f *fixture) step(frames int) {
	for i := 0; i < frames; i++ {
		f.clk.Tick(frameDt)
		f.sched.Update(f.w)
	}
}

func (f *fixture) rosterComp() *component.Roster {
	f.t.Helper()
	r, ok := ecs.Get(f.w, f.roster, component.RosterComponent)
	if !ok {
		f.t.Fatal("missing roster")
	}
	return r
}

func (f *fixture) transform(e ecs.Entity) *component.Transform {
	f.t.Helper()
	t, ok := ecs.Get(f.w, e, component.TransformComponent)
	if !ok {
		f.t.Fatalf("missing transform on %v", e)
	}
	return t
}

func (f *fixture) cameraComp() *component.Camera {
	f.t.Helper()
	c, ok := ecs.Get(f.w, f.camera, component.CameraComponent)
	if !ok {
		f.t.Fatal("missing camera")
	}
	return c
}

func (f *fixture) controller(e ecs.Entity) motion.Controller {
	f.t.Helper()
	loco, ok := ecs.Get(f.w, e, component.LocomotionComponent)
	if !ok {
		f.t.Fatalf("missing locomotion on %v", e)
	}
	return loco.Controller
}

// enabled returns every critter currently simulated, and fails if any body's
// enabled flag disagrees with its membership in the space.
func (f *fixture) enabled() []ecs.Entity {
	f.t.Helper()
	var out []ecs.Entity
	for _, e := range []ecs.Entity{f.frog, f.snail, f.fish} {
		body, ok := ecs.Get(f.w, e, component.PhysicsBodyComponent)
		if !ok || body.Shape == nil {
			continue
		}
		inSpace := f.phys.Space().ContainsShape(body.Shape)
		if inSpace != body.Enabled {
			f.t.Fatalf("%v: enabled=%v but shape in space=%v", e, body.Enabled, inSpace)
		}
		if body.Enabled {
			out = append(out, e)
		}
	}
	return out
}

func (f *fixture) assertOnlyEnabled(e ecs.Entity) {
	f.t.Helper()
	got := f.enabled()
	if len(got) != 1 || got[0] != e {
		f.t.Fatalf("expected only %v enabled, got %v", e, got)
	}
}
