package entity

import (
	"fmt"

	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
	"github.com/milk9111/critterswap/prefabs"
)

// NewCritter spawns a benched critter for roster slot. Its body is created
// frozen; the switch system decides which critter runs.
func NewCritter(w *ecs.World, spec prefabs.CritterSpec, slot int) (ecs.Entity, error) {
	controller, err := spec.Controller()
	if err != nil {
		return 0, fmt.Errorf("critter %s: %w", spec.Name, err)
	}

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.CritterComponent, &component.Critter{
		Name: spec.Name,
		Slot: slot,
	}); err != nil {
		return 0, fmt.Errorf("critter %s: add critter: %w", spec.Name, err)
	}

	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{
		X:        spec.Transform.X,
		Y:        spec.Transform.Y,
		Rotation: spec.Transform.Rotation,
	}); err != nil {
		return 0, fmt.Errorf("critter %s: add transform: %w", spec.Name, err)
	}

	if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:    spec.Body.Width,
		Height:   spec.Body.Height,
		Mass:     spec.Body.Mass,
		Friction: spec.Body.Friction,
	}); err != nil {
		return 0, fmt.Errorf("critter %s: add physics body: %w", spec.Name, err)
	}

	if err := ecs.Add(w, e, component.ContactComponent, &component.Contact{}); err != nil {
		return 0, fmt.Errorf("critter %s: add contact: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.GravityScaleComponent, &component.GravityScale{Scale: 1}); err != nil {
		return 0, fmt.Errorf("critter %s: add gravity scale: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.LocomotionComponent, &component.Locomotion{Controller: controller}); err != nil {
		return 0, fmt.Errorf("critter %s: add locomotion: %w", spec.Name, err)
	}

	if spec.Call != nil && spec.Call.Clip != "" {
		if err := ecs.Add(w, e, component.AmbientCallComponent, &component.AmbientCall{
			Clip:     spec.Call.Clip,
			Interval: spec.Call.Interval,
			Pause:    spec.Call.Pause,
		}); err != nil {
			return 0, fmt.Errorf("critter %s: add ambient call: %w", spec.Name, err)
		}
	}

	return e, nil
}
