package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SessionSpec wires a playable session together. It names the other prefab
// files rather than embedding them.
type SessionSpec struct {
	Critters     string     `yaml:"critters"`
	Level        string     `yaml:"level"`
	UnlockScript string     `yaml:"unlock_script"`
	ActiveSlot   int        `yaml:"active_slot"`
	Unlocked     int        `yaml:"unlocked"`
	Gravity      float64    `yaml:"gravity"`
	Camera       CameraSpec `yaml:"camera"`
}

type CameraSpec struct {
	ViewHalfHeight float64 `yaml:"view_half_height"`
	Aspect         float64 `yaml:"aspect"`
	Smoothing      float64 `yaml:"smoothing"`
	OffsetY        float64 `yaml:"offset_y"`
	Z              float64 `yaml:"z"`
	RollSpeed      float64 `yaml:"roll_speed"`
}

type RosterSpec struct {
	Critters []CritterSpec `yaml:"critters"`
}

type CritterSpec struct {
	Name       string        `yaml:"name"`
	Locomotion string        `yaml:"locomotion"`
	Transform  TransformSpec `yaml:"transform"`
	Body       BodySpec      `yaml:"body"`
	Tuning     TuningSpec    `yaml:"tuning"`
	Call       *CallSpec     `yaml:"call"`
	Color      string        `yaml:"color"`
	Glyph      string        `yaml:"glyph"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type BodySpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

// TuningSpec holds per-critter movement constants. Unset fields keep the
// locomotion's defaults.
type TuningSpec struct {
	MovementSpeed  *float64 `yaml:"movement_speed"`
	MoveDuration   *float64 `yaml:"move_duration"`
	WaitDuration   *float64 `yaml:"wait_duration"`
	FlipCooldown   *float64 `yaml:"flip_cooldown"`
	RotationSpeed  *float64 `yaml:"rotation_speed"`
	SprintSpeed    *float64 `yaml:"sprint_speed"`
	Acceleration   *float64 `yaml:"acceleration"`
	ChargeDuration *float64 `yaml:"charge_duration"`
	SprintDuration *float64 `yaml:"sprint_duration"`
	Cooldown       *float64 `yaml:"cooldown"`
}

type CallSpec struct {
	Clip     string  `yaml:"clip"`
	Interval float64 `yaml:"interval"`
	Pause    float64 `yaml:"pause"`
}

type LevelSpec struct {
	Name         string            `yaml:"name"`
	Bounds       BoundsSpec        `yaml:"bounds"`
	Ground       []BlockSpec       `yaml:"ground"`
	Collectibles []CollectibleSpec `yaml:"collectibles"`
}

type BoundsSpec struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
}

type BlockSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Friction float64 `yaml:"friction"`
}

type CollectibleSpec struct {
	Kind   string  `yaml:"kind"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func LoadSessionSpec(name string) (*SessionSpec, error) {
	spec, err := LoadSpec[SessionSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

func LoadRosterSpec(name string) (*RosterSpec, error) {
	spec, err := LoadSpec[RosterSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

func LoadLevelSpec(name string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}
