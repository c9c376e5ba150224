package motion

import (
	"github.com/milk9111/critterswap/common"
	"github.com/milk9111/critterswap/input"
)

type SimpleAccelTuning struct {
	MovementSpeed float64
	Acceleration  float64
}

func DefaultSimpleAccelTuning() SimpleAccelTuning {
	return SimpleAccelTuning{MovementSpeed: 5, Acceleration: 25}
}

type SimpleAccelState struct {
	CurrentVelocityX float64
}

// SimpleAccel eases toward the input speed every frame, with or without ground
// contact.
type SimpleAccel struct {
	tuning SimpleAccelTuning
	state  SimpleAccelState
	moveX  float64
}

func NewSimpleAccel(tuning SimpleAccelTuning) *SimpleAccel {
	return &SimpleAccel{tuning: tuning}
}

func (s *SimpleAccel) Kind() Kind { return KindSimpleAccel }

func (s *SimpleAccel) Phase() string {
	if s.state.CurrentVelocityX != 0 {
		return "swimming"
	}
	return "idle"
}

func (s *SimpleAccel) State() SimpleAccelState { return s.state }

func (s *SimpleAccel) Tuning() SimpleAccelTuning { return s.tuning }

func (s *SimpleAccel) OnMove(_ float64, v input.Vector) []Effect {
	s.moveX = v.X
	return facingEffects(v.X)
}

func (s *SimpleAccel) OnUse(float64, bool) []Effect { return nil }

func (s *SimpleAccel) OnSprint(float64, bool) []Effect { return nil }

func (s *SimpleAccel) Advance(f Frame) Step {
	target := s.moveX * s.tuning.MovementSpeed
	s.state.CurrentVelocityX = common.MoveTowards(s.state.CurrentVelocityX, target, s.tuning.Acceleration*f.Dt)
	return Step{VelocityX: s.state.CurrentVelocityX}
}

func (s *SimpleAccel) Reset() []Effect {
	s.state = SimpleAccelState{}
	s.moveX = 0
	return nil
}
