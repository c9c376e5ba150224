package system

import (
	"github.com/milk9111/critterswap/clock"
	"github.com/milk9111/critterswap/common"
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
)

// AbilityRollSystem eases the camera roll toward its target along the shortest
// arc. It runs whichever critter is active.
type AbilityRollSystem struct {
	clock clock.Clock
}

func NewAbilityRollSystem(clk clock.Clock) *AbilityRollSystem {
	return &AbilityRollSystem{clock: clk}
}

func (s *AbilityRollSystem) Update(w *ecs.World) {
	if s == nil || s.clock == nil {
		return
	}
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		cam.Roll = common.LerpAngle(cam.Roll, cam.RollTarget, cam.RollSpeed*s.clock.Delta())
	})
}
