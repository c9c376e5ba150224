package motion

import (
	"github.com/milk9111/critterswap/common"
	"github.com/milk9111/critterswap/input"
)

type HopPhase uint8

const (
	HopIdle HopPhase = iota
	HopMoving
	HopWaiting
)

func (p HopPhase) String() string {
	switch p {
	case HopMoving:
		return "moving"
	case HopWaiting:
		return "waiting"
	}
	return "idle"
}

type HopTuning struct {
	MovementSpeed float64
	MoveDuration  float64
	WaitDuration  float64
	FlipCooldown  float64
	RotationSpeed float64
}

func DefaultHopTuning() HopTuning {
	return HopTuning{
		MovementSpeed: 1,
		MoveDuration:  0.25,
		WaitDuration:  0.65,
		FlipCooldown:  2,
		RotationSpeed: 5,
	}
}

type HopState struct {
	Phase            HopPhase
	PhaseTimer       float64
	NextHopAllowedAt float64
	LastInputSign    int
}

// AbilityState is the gravity-inverting toggle, orthogonal to locomotion.
type AbilityState struct {
	UsingAbility        bool
	NextToggleAllowedAt float64
	TargetCameraRollDeg float64
}

// Hop moves in discrete hops: a Moving burst followed by a Waiting pause,
// repeated while horizontal input is held. Horizontal motion only happens while
// grounded.
type Hop struct {
	tuning  HopTuning
	state   HopState
	ability AbilityState
	moveX   float64
	current hopState
}

func NewHop(tuning HopTuning) *Hop {
	return &Hop{tuning: tuning, current: hopStateIdle}
}

func (h *Hop) Kind() Kind { return KindHop }

func (h *Hop) Phase() string { return h.state.Phase.String() }

func (h *Hop) State() HopState { return h.state }

func (h *Hop) Ability() AbilityState { return h.ability }

func (h *Hop) Tuning() HopTuning { return h.tuning }

func (h *Hop) OnMove(_ float64, v input.Vector) []Effect {
	h.moveX = v.X
	h.state.LastInputSign = int(common.Sign(v.X))

	effects := []Effect{AnimFlag("move", hasDirection(v.X))}
	return append(effects, facingEffects(v.X)...)
}

// OnUse toggles the ability on a rising edge once the cooldown has elapsed.
func (h *Hop) OnUse(now float64, pressed bool) []Effect {
	if !pressed || now < h.ability.NextToggleAllowedAt {
		return nil
	}

	h.ability.UsingAbility = !h.ability.UsingAbility
	h.ability.NextToggleAllowedAt = now + h.tuning.FlipCooldown

	rotation, gravity := 0.0, 1.0
	if h.ability.UsingAbility {
		rotation, gravity = 180, -1
	}
	h.ability.TargetCameraRollDeg = rotation

	return []Effect{
		Rotation(rotation),
		GravityScale(gravity),
		CameraRoll(rotation, false).WithScale(h.tuning.RotationSpeed),
	}
}

func (h *Hop) OnSprint(float64, bool) []Effect { return nil }

func (h *Hop) Advance(f Frame) Step {
	if !f.Grounded {
		// airborne: timers stay frozen until contact resumes
		return Step{}
	}
	if !hasDirection(h.moveX) {
		h.changeState(hopStateIdle)
		return Step{}
	}
	if h.current == nil {
		h.current = hopStateIdle
	}
	return Step{VelocityX: h.current.Update(h, f)}
}

func (h *Hop) changeState(next hopState) {
	if h.current == next {
		return
	}
	if h.current != nil {
		h.current.Exit(h)
	}
	h.current = next
	h.state.Phase = next.Phase()
	next.Enter(h)
}

func (h *Hop) hopVelocity() float64 {
	return common.Sign(h.moveX) * h.tuning.MovementSpeed
}

func (h *Hop) Reset() []Effect {
	h.state = HopState{}
	h.ability = AbilityState{}
	h.moveX = 0
	h.current = hopStateIdle
	return []Effect{
		AnimFlag("move", false),
		Rotation(0),
		GravityScale(1),
		CameraRoll(0, true),
	}
}
