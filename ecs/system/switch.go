package system

import (
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
	"github.com/milk9111/critterswap/input"
)

// SwitchSystem owns the roster and runs the handoff protocol. It is the only
// writer of Roster.Active and of which critter is simulated.
type SwitchSystem struct {
	dispatcher *input.Dispatcher
	phys       *PhysicsSystem
	loco       *LocomotionSystem
	cam        *CameraSystem

	switching bool
	subs      []input.SubscriptionID
}

func NewSwitchSystem(d *input.Dispatcher, phys *PhysicsSystem, loco *LocomotionSystem, cam *CameraSystem) *SwitchSystem {
	return &SwitchSystem{dispatcher: d, phys: phys, loco: loco, cam: cam}
}

// Attach subscribes to select and cycle events for w. Calling it again is a
// no-op.
func (s *SwitchSystem) Attach(w *ecs.World) {
	if s == nil || s.dispatcher == nil || len(s.subs) > 0 {
		return
	}
	s.subs = append(s.subs,
		s.dispatcher.OnSelect(func(n int) { s.Select(w, n) }),
		s.dispatcher.OnCycle(func() { s.Cycle(w) }),
	)
}

func (s *SwitchSystem) Detach() {
	if s == nil || s.dispatcher == nil {
		return
	}
	for _, id := range s.subs {
		s.dispatcher.Unsubscribe(id)
	}
	s.subs = nil
}

// Update establishes the initial activation on the first frame the roster is
// usable.
func (s *SwitchSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	roster, ok := s.roster(w)
	if !ok || roster.Initialized {
		return
	}
	s.Init(w)
}

// Init freezes and deactivates every critter except the configured one, which
// is activated where it stands and receives the camera.
func (s *SwitchSystem) Init(w *ecs.World) bool {
	if s == nil || s.switching {
		return false
	}
	roster, ok := s.roster(w)
	if !ok || len(roster.Slots) == 0 {
		return false
	}

	roster.Unlocked = clampInt(roster.Unlocked, 1, len(roster.Slots))
	roster.Active = clampInt(roster.Active, 0, roster.Unlocked-1)

	active := ecs.Entity(roster.Slots[roster.Active])
	s.phys.Sync(w)
	if !s.ready(w, active) {
		return false
	}

	s.switching = true
	defer func() { s.switching = false }()

	for i, slot := range roster.Slots {
		if i == roster.Active {
			continue
		}
		e := ecs.Entity(slot)
		if !w.IsAlive(e) {
			continue
		}
		s.loco.Deactivate(w, e)
		s.phys.Freeze(w, e)
	}

	s.phys.Thaw(w, active)
	s.loco.Activate(w, active)
	s.cam.Snap(w, active)

	roster.Initialized = true
	return true
}

// RequestSwitch hands control to slot target. It reports false, changing
// nothing, when target is already active, locked or out of range, when either
// critter is missing, or when called from inside another switch.
func (s *SwitchSystem) RequestSwitch(w *ecs.World, target int) bool {
	if s == nil || s.switching {
		return false
	}
	roster, ok := s.roster(w)
	if !ok || !roster.Initialized {
		return false
	}
	if target == roster.Active || target < 0 || target >= roster.Unlocked || target >= len(roster.Slots) {
		return false
	}

	from := ecs.Entity(roster.Slots[roster.Active])
	to := ecs.Entity(roster.Slots[target])
	if !s.ready(w, from) || !s.ready(w, to) {
		return false
	}

	s.switching = true
	defer func() { s.switching = false }()

	s.loco.Deactivate(w, from)
	s.phys.Freeze(w, from)

	pose, _ := ecs.Get(w, from, component.TransformComponent)
	x, y, rotation := pose.X, pose.Y, pose.Rotation

	s.phys.Teleport(w, to, x, y, rotation)

	s.phys.Thaw(w, to)
	s.loco.Activate(w, to)

	s.cam.Snap(w, to)

	fromIndex := roster.Active
	roster.Active = target

	w.Events().Push(ecs.Event{
		Type: ecs.EventCritterSwitched,
		Data: ecs.SwitchEvent{From: from, To: to, FromIndex: fromIndex, ToIndex: target},
	})
	return true
}

// Select maps a 1-based select button to a slot. Slot n-1 is only reachable
// once n critters are unlocked.
func (s *SwitchSystem) Select(w *ecs.World, n int) bool {
	roster, ok := s.roster(w)
	if !ok || n < 1 || n > roster.Unlocked {
		return false
	}
	return s.RequestSwitch(w, n-1)
}

// Cycle advances to the next unlocked slot, wrapping to the first.
func (s *SwitchSystem) Cycle(w *ecs.World) bool {
	roster, ok := s.roster(w)
	if !ok || roster.Unlocked <= 1 {
		return false
	}
	return s.RequestSwitch(w, (roster.Active+1)%roster.Unlocked)
}

// Unlock raises the unlocked count to n. The count never decreases.
func (s *SwitchSystem) Unlock(w *ecs.World, n int) bool {
	roster, ok := s.roster(w)
	if !ok {
		return false
	}
	if n > len(roster.Slots) {
		n = len(roster.Slots)
	}
	if n <= roster.Unlocked {
		return false
	}
	roster.Unlocked = n
	w.Events().Push(ecs.Event{Type: ecs.EventUnlocked, Data: ecs.UnlockEvent{Unlocked: n}})
	return true
}

func (s *SwitchSystem) ActiveEntity(w *ecs.World) (ecs.Entity, bool) {
	return ActiveCritter(w)
}

func (s *SwitchSystem) roster(w *ecs.World) (*component.Roster, bool) {
	if s == nil || w == nil {
		return nil, false
	}
	e, ok := w.First(component.RosterComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.RosterComponent)
}

func (s *SwitchSystem) ready(w *ecs.World, e ecs.Entity) bool {
	return w.IsAlive(e) &&
		ecs.Has(w, e, component.TransformComponent) &&
		ecs.Has(w, e, component.PhysicsBodyComponent) &&
		ecs.Has(w, e, component.CritterComponent)
}

// ActiveCritter returns the critter currently holding control, if the roster
// has been initialized.
func ActiveCritter(w *ecs.World) (ecs.Entity, bool) {
	re, ok := w.First(component.RosterComponent.Kind())
	if !ok {
		return 0, false
	}
	roster, ok := ecs.Get(w, re, component.RosterComponent)
	if !ok || !roster.Initialized || roster.Active < 0 || roster.Active >= len(roster.Slots) {
		return 0, false
	}
	e := ecs.Entity(roster.Slots[roster.Active])
	if !w.IsAlive(e) {
		return 0, false
	}
	return e, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
