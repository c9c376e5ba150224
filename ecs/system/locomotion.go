package system

import (
	"github.com/milk9111/critterswap/clock"
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
	"github.com/milk9111/critterswap/input"
	"github.com/milk9111/critterswap/motion"
)

// LocomotionSystem feeds input to the active critter's controller, advances it
// once per frame and applies the resulting effects. Benched critters are never
// ticked.
type LocomotionSystem struct {
	dispatcher *input.Dispatcher
	clock      clock.Clock
	phys       *PhysicsSystem
	presenter  component.Presenter
}

func NewLocomotionSystem(d *input.Dispatcher, clk clock.Clock, phys *PhysicsSystem, presenter component.Presenter) *LocomotionSystem {
	if presenter == nil {
		presenter = component.NopPresenter{}
	}
	return &LocomotionSystem{dispatcher: d, clock: clk, phys: phys, presenter: presenter}
}

// Attach subscribes e's controller to the dispatcher. Events only reach the
// controller while e is the active critter; the rest are dropped.
func (ls *LocomotionSystem) Attach(w *ecs.World, e ecs.Entity) {
	if ls == nil || ls.dispatcher == nil {
		return
	}
	loco, ok := ecs.Get(w, e, component.LocomotionComponent)
	if !ok || len(loco.Subscriptions) > 0 {
		return
	}

	loco.Subscriptions = append(loco.Subscriptions,
		ls.dispatcher.OnMove(func(v input.Vector) {
			ls.deliver(w, e, func(c motion.Controller, now float64) []motion.Effect { return c.OnMove(now, v) })
		}),
		ls.dispatcher.OnUse(func(pressed bool) {
			ls.deliver(w, e, func(c motion.Controller, now float64) []motion.Effect { return c.OnUse(now, pressed) })
		}),
		ls.dispatcher.OnSprint(func(pressed bool) {
			ls.deliver(w, e, func(c motion.Controller, now float64) []motion.Effect { return c.OnSprint(now, pressed) })
		}),
	)
}

// Detach drops e's input subscriptions.
func (ls *LocomotionSystem) Detach(w *ecs.World, e ecs.Entity) {
	if ls == nil || ls.dispatcher == nil {
		return
	}
	loco, ok := ecs.Get(w, e, component.LocomotionComponent)
	if !ok {
		return
	}
	for _, id := range loco.Subscriptions {
		ls.dispatcher.Unsubscribe(id)
	}
	loco.Subscriptions = nil
}

func (ls *LocomotionSystem) deliver(w *ecs.World, e ecs.Entity, fn func(motion.Controller, float64) []motion.Effect) {
	active, ok := ActiveCritter(w)
	if !ok || active != e {
		return
	}
	loco, ok := ecs.Get(w, e, component.LocomotionComponent)
	if !ok || loco.Controller == nil {
		return
	}
	ls.apply(w, e, fn(loco.Controller, ls.now()))
}

func (ls *LocomotionSystem) Update(w *ecs.World) {
	if ls == nil || w == nil {
		return
	}

	e, ok := ActiveCritter(w)
	if !ok {
		return
	}
	loco, ok := ecs.Get(w, e, component.LocomotionComponent)
	if !ok || loco.Controller == nil {
		return
	}

	dt := ls.delta()
	step := loco.Controller.Advance(motion.Frame{
		Now:      ls.now(),
		Dt:       dt,
		Grounded: ls.phys.Grounded(w, e),
	})
	ls.apply(w, e, step.Effects)
	ls.phys.Translate(w, e, step.VelocityX*dt)
}

// Activate hands input to e. The controller starts from its neutral state and
// is seeded with the axis currently held so a switch mid-press keeps moving.
func (ls *LocomotionSystem) Activate(w *ecs.World, e ecs.Entity) {
	if ls == nil {
		return
	}
	critter, ok := ecs.Get(w, e, component.CritterComponent)
	if !ok {
		return
	}
	critter.Active = true
	critter.Visible = true
	ls.presenter.SetVisible(uint64(e), true)

	if call, ok := ecs.Get(w, e, component.AmbientCallComponent); ok {
		call.Armed = true
		call.NextAt = ls.now()
	}

	loco, ok := ecs.Get(w, e, component.LocomotionComponent)
	if !ok || loco.Controller == nil {
		return
	}
	ls.apply(w, e, loco.Controller.Reset())
	if ls.dispatcher != nil {
		if move := ls.dispatcher.State().Move; !move.IsZero() {
			ls.apply(w, e, loco.Controller.OnMove(ls.now(), move))
		}
	}
}

// Deactivate resets e's controller, undoing whatever it left applied, and hides
// the critter.
func (ls *LocomotionSystem) Deactivate(w *ecs.World, e ecs.Entity) {
	if ls == nil {
		return
	}
	if loco, ok := ecs.Get(w, e, component.LocomotionComponent); ok && loco.Controller != nil {
		ls.apply(w, e, loco.Controller.Reset())
	}
	if call, ok := ecs.Get(w, e, component.AmbientCallComponent); ok {
		call.Armed = false
	}
	critter, ok := ecs.Get(w, e, component.CritterComponent)
	if !ok {
		return
	}
	critter.Active = false
	critter.Visible = false
	ls.presenter.SetVisible(uint64(e), false)
}

func (ls *LocomotionSystem) apply(w *ecs.World, e ecs.Entity, effects []motion.Effect) {
	for _, eff := range effects {
		switch eff.Kind {
		case motion.EffectFacing:
			if critter, ok := ecs.Get(w, e, component.CritterComponent); ok {
				critter.FacingLeft = eff.FacingLeft
			}
			ls.presenter.SetFacing(uint64(e), eff.FacingLeft)
		case motion.EffectAnimFlag:
			ls.presenter.SetAnimationFlag(uint64(e), eff.Name, eff.On)
		case motion.EffectAnimPlay:
			ls.presenter.PlayAnimation(uint64(e), eff.Name)
		case motion.EffectAudio:
			ls.presenter.PlayOneShot(uint64(e), eff.Name, 1)
		case motion.EffectRotation:
			ls.phys.SetRotation(w, e, eff.Degrees)
		case motion.EffectGravityScale:
			ls.phys.SetGravityScale(w, e, eff.Scale)
		case motion.EffectCameraRoll:
			retargetRoll(w, eff.Degrees, eff.Scale, eff.Snap)
		}
	}
}

func (ls *LocomotionSystem) now() float64 {
	if ls.clock == nil {
		return 0
	}
	return ls.clock.Now()
}

func (ls *LocomotionSystem) delta() float64 {
	if ls.clock == nil {
		return 0
	}
	return ls.clock.Delta()
}
