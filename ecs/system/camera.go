package system

import (
	"math"

	"github.com/milk9111/critterswap/clock"
	"github.com/milk9111/critterswap/common"
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
)

// CameraSystem follows the camera's target with exponential smoothing and
// horizontal clamping to the level bounds.
type CameraSystem struct {
	clock clock.Clock
}

func NewCameraSystem(clk clock.Clock) *CameraSystem {
	return &CameraSystem{clock: clk}
}

// DesiredX clamps targetX so the view never shows past the bounds. When the
// level is narrower than the view the camera is pinned to the level midpoint.
func DesiredX(cam *component.Camera, bounds component.LevelBounds, targetX float64) float64 {
	half := cam.ViewHalfHeight * cam.Aspect
	lo, hi := bounds.MinX+half, bounds.MaxX-half
	if lo > hi {
		return (bounds.MinX + bounds.MaxX) / 2
	}
	return common.Clamp(targetX, lo, hi)
}

// LevelBounds returns the bounds of the loaded level.
func LevelBounds(w *ecs.World) (component.LevelBounds, bool) {
	boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return component.LevelBounds{}, false
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent)
	if !ok {
		return component.LevelBounds{}, false
	}
	return *bounds, true
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}

	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent)
	if !ok {
		return
	}
	if cam.SkipFollow {
		cam.SkipFollow = false
		return
	}

	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent)
	if !ok {
		return
	}
	targetTransform, ok := ecs.Get(w, ecs.Entity(cam.Target), component.TransformComponent)
	if !ok {
		return
	}
	bounds, ok := LevelBounds(w)
	if !ok {
		return
	}

	dt := 0.0
	if cs.clock != nil {
		dt = cs.clock.Delta()
	}
	t := 1.0
	if cam.Smoothing > 0 {
		t = math.Min(1, cam.Smoothing*dt)
	}

	camTransform.X = common.Lerp(camTransform.X, DesiredX(cam, bounds, targetTransform.X), t)
	camTransform.Y = common.Lerp(camTransform.Y, targetTransform.Y+cam.OffsetY, t)
}

// Snap retargets the camera to target with no interpolation. The vertical
// offset is recaptured so framing is preserved, and this frame's follow step is
// skipped.
func (cs *CameraSystem) Snap(w *ecs.World, target ecs.Entity) bool {
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return false
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent)
	if !ok {
		return false
	}
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent)
	if !ok {
		return false
	}
	targetTransform, ok := ecs.Get(w, target, component.TransformComponent)
	if !ok {
		return false
	}
	bounds, ok := LevelBounds(w)
	if !ok {
		return false
	}

	cam.Target = uint64(target)
	cam.OffsetY = camTransform.Y - targetTransform.Y
	camTransform.X = DesiredX(cam, bounds, targetTransform.X)
	camTransform.Y = targetTransform.Y + cam.OffsetY
	cam.SkipFollow = true
	return true
}

func retargetRoll(w *ecs.World, deg, rate float64, snap bool) {
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent)
	if !ok {
		return
	}
	cam.RollTarget = deg
	if rate > 0 {
		cam.RollSpeed = rate
	}
	if snap {
		cam.Roll = deg
	}
}
