package prefabs

import (
	"fmt"

	"github.com/milk9111/critterswap/motion"
)

func (s SessionSpec) Validate() error {
	if s.Critters == "" || s.Level == "" {
		return fmt.Errorf("%w: critters and level files are required", ErrInvalidSpec)
	}
	if s.Unlocked < 0 || s.ActiveSlot < 0 {
		return fmt.Errorf("%w: active_slot and unlocked must not be negative", ErrInvalidSpec)
	}
	if s.Gravity < 0 {
		return fmt.Errorf("%w: gravity must not be negative", ErrInvalidSpec)
	}
	c := s.Camera
	if c.ViewHalfHeight < 0 || c.Aspect < 0 || c.Smoothing < 0 || c.RollSpeed < 0 {
		return fmt.Errorf("%w: camera values must not be negative", ErrInvalidSpec)
	}
	return nil
}

func (s RosterSpec) Validate() error {
	if len(s.Critters) == 0 {
		return fmt.Errorf("%w: roster is empty", ErrInvalidSpec)
	}
	seen := make(map[string]bool, len(s.Critters))
	for i, c := range s.Critters {
		if c.Name == "" {
			return fmt.Errorf("%w: critter %d has no name", ErrInvalidSpec, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate critter %q", ErrInvalidSpec, c.Name)
		}
		seen[c.Name] = true
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate rejects negative timing, speed and size values. They are
// configuration mistakes, never runtime states.
func (c CritterSpec) Validate() error {
	if _, err := motion.ParseKind(c.Locomotion); err != nil {
		return fmt.Errorf("%w: critter %q: %v", ErrInvalidSpec, c.Name, err)
	}
	if c.Body.Width < 0 || c.Body.Height < 0 || c.Body.Mass < 0 {
		return fmt.Errorf("%w: critter %q: body size and mass must not be negative", ErrInvalidSpec, c.Name)
	}

	fields := []struct {
		name  string
		value *float64
	}{
		{"movement_speed", c.Tuning.MovementSpeed},
		{"move_duration", c.Tuning.MoveDuration},
		{"wait_duration", c.Tuning.WaitDuration},
		{"flip_cooldown", c.Tuning.FlipCooldown},
		{"rotation_speed", c.Tuning.RotationSpeed},
		{"sprint_speed", c.Tuning.SprintSpeed},
		{"acceleration", c.Tuning.Acceleration},
		{"charge_duration", c.Tuning.ChargeDuration},
		{"sprint_duration", c.Tuning.SprintDuration},
		{"cooldown", c.Tuning.Cooldown},
	}
	for _, f := range fields {
		if f.value != nil && *f.value < 0 {
			return fmt.Errorf("%w: critter %q: %s must not be negative", ErrInvalidSpec, c.Name, f.name)
		}
	}

	if c.Call != nil && (c.Call.Interval < 0 || c.Call.Pause < 0) {
		return fmt.Errorf("%w: critter %q: call timing must not be negative", ErrInvalidSpec, c.Name)
	}
	return nil
}

func (l LevelSpec) Validate() error {
	if l.Bounds.MaxX < l.Bounds.MinX {
		return fmt.Errorf("%w: level %q: max_x is left of min_x", ErrInvalidSpec, l.Name)
	}
	for i, b := range l.Ground {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("%w: level %q: ground block %d has no area", ErrInvalidSpec, l.Name, i)
		}
	}
	return nil
}
