package entity

import (
	"fmt"

	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
	"github.com/milk9111/critterswap/ecs/system"
	"github.com/milk9111/critterswap/prefabs"
)

const (
	defaultCameraSmoothing = 8
	defaultRollSpeed       = 5
)

// NewCameraAt creates the session camera at (x, y), clamped horizontally to the
// level bounds. The level must already be spawned.
func NewCameraAt(w *ecs.World, spec prefabs.CameraSpec, x, y float64) (ecs.Entity, error) {
	bounds, ok := system.LevelBounds(w)
	if !ok {
		return 0, fmt.Errorf("camera: no level bounds: %w", prefabs.ErrInvalidSpec)
	}

	smoothing := spec.Smoothing
	if smoothing == 0 {
		smoothing = defaultCameraSmoothing
	}
	rollSpeed := spec.RollSpeed
	if rollSpeed == 0 {
		rollSpeed = defaultRollSpeed
	}

	cam := &component.Camera{
		ViewHalfHeight: spec.ViewHalfHeight,
		Aspect:         spec.Aspect,
		Smoothing:      smoothing,
		OffsetY:        spec.OffsetY,
		Z:              spec.Z,
		RollSpeed:      rollSpeed,
	}

	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraComponent, cam); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent, &component.Transform{
		X: system.DesiredX(cam, bounds, x),
		Y: y,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	return camera, nil
}
