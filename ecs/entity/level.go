package entity

import (
	"fmt"

	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
	"github.com/milk9111/critterswap/prefabs"
)

const defaultCollectibleSize = 0.4

// NewLevel spawns the level's static ground, its collectibles and the bounds
// entity. It returns the bounds entity.
func NewLevel(w *ecs.World, spec *prefabs.LevelSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("level: %w", prefabs.ErrInvalidSpec)
	}

	bounds := w.CreateEntity()
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent, &component.LevelBounds{
		MinX: spec.Bounds.MinX,
		MaxX: spec.Bounds.MaxX,
	}); err != nil {
		return 0, fmt.Errorf("level %s: add bounds: %w", spec.Name, err)
	}

	for i, block := range spec.Ground {
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.GroundTagComponent, &component.GroundTag{}); err != nil {
			return 0, fmt.Errorf("level %s: ground %d: add tag: %w", spec.Name, i, err)
		}
		if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: block.X, Y: block.Y}); err != nil {
			return 0, fmt.Errorf("level %s: ground %d: add transform: %w", spec.Name, i, err)
		}
		if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
			Width:    block.Width,
			Height:   block.Height,
			Friction: block.Friction,
			Static:   true,
			Enabled:  true,
		}); err != nil {
			return 0, fmt.Errorf("level %s: ground %d: add physics body: %w", spec.Name, i, err)
		}
	}

	for i, c := range spec.Collectibles {
		width, height := c.Width, c.Height
		if width <= 0 || height <= 0 {
			width, height = defaultCollectibleSize, defaultCollectibleSize
		}
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.CollectibleComponent, &component.Collectible{
			Kind:   c.Kind,
			Width:  width,
			Height: height,
		}); err != nil {
			return 0, fmt.Errorf("level %s: collectible %d: %w", spec.Name, i, err)
		}
		if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: c.X, Y: c.Y}); err != nil {
			return 0, fmt.Errorf("level %s: collectible %d: add transform: %w", spec.Name, i, err)
		}
	}

	return bounds, nil
}
