package system

import (
	"math/rand/v2"

	"github.com/milk9111/critterswap/clock"
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
)

const (
	minCallPitch = 0.95
	maxCallPitch = 1.05
)

// AmbientCallSystem plays the active critter's call on a loop. The call timer
// only runs while the critter is armed, which LocomotionSystem handles on
// activation.
type AmbientCallSystem struct {
	clock     clock.Clock
	presenter component.Presenter
	pitch     func() float64
}

func NewAmbientCallSystem(clk clock.Clock, presenter component.Presenter) *AmbientCallSystem {
	if presenter == nil {
		presenter = component.NopPresenter{}
	}
	return &AmbientCallSystem{
		clock:     clk,
		presenter: presenter,
		pitch: func() float64 {
			return minCallPitch + rand.Float64()*(maxCallPitch-minCallPitch)
		},
	}
}

func (s *AmbientCallSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.clock == nil {
		return
	}

	e, ok := ActiveCritter(w)
	if !ok {
		return
	}
	call, ok := ecs.Get(w, e, component.AmbientCallComponent)
	if !ok || !call.Armed || call.Clip == "" {
		return
	}

	now := s.clock.Now()
	if now < call.NextAt {
		return
	}
	s.presenter.PlayOneShot(uint64(e), call.Clip, s.pitch())
	call.NextAt = now + call.Interval + call.Pause
}
