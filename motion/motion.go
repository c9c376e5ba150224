// Package motion implements the per-critter movement state machines. Controllers
// are pure: they consume input and frame timing and return a horizontal velocity
// plus side effects as data. Applying those effects to physics, camera and
// presentation is the caller's job.
package motion

import (
	"fmt"
	"strings"

	"github.com/milk9111/critterswap/input"
)

// Deadzone is the axis magnitude at or below which horizontal input is neutral.
const Deadzone = 0.1

// timeEpsilon absorbs float accumulation when comparing phase timers.
const timeEpsilon = 1e-9

type Kind uint8

const (
	KindHop Kind = iota + 1
	KindChargeSprint
	KindSimpleAccel
)

func (k Kind) String() string {
	switch k {
	case KindHop:
		return "hop"
	case KindChargeSprint:
		return "charge_sprint"
	case KindSimpleAccel:
		return "simple_accel"
	}
	return "unknown"
}

// ParseKind maps a prefab locomotion name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hop", "frog":
		return KindHop, nil
	case "charge_sprint", "sprint", "snail":
		return KindChargeSprint, nil
	case "simple_accel", "swim", "fish":
		return KindSimpleAccel, nil
	}
	return 0, fmt.Errorf("motion: unknown locomotion %q", name)
}

// Frame carries the timing and contact state for one Advance call.
type Frame struct {
	Now      float64
	Dt       float64
	Grounded bool
}

// Step is the result of advancing a controller by one frame.
type Step struct {
	VelocityX float64
	Effects   []Effect
}

// Controller is the capability every locomotion variant shares.
type Controller interface {
	Kind() Kind
	// Phase names the current state for debugging and HUDs.
	Phase() string
	OnMove(now float64, v input.Vector) []Effect
	OnUse(now float64, pressed bool) []Effect
	OnSprint(now float64, pressed bool) []Effect
	Advance(f Frame) Step
	// Reset discards every timer and returns to the neutral state. The returned
	// effects undo anything the controller left applied to its entity.
	Reset() []Effect
}

func hasDirection(x float64) bool {
	return x > Deadzone || x < -Deadzone
}

func elapsed(now, deadline float64) bool {
	return now+timeEpsilon >= deadline
}

// facingEffects reports facing for a horizontal axis value. Zero keeps the
// current facing.
func facingEffects(x float64) []Effect {
	switch {
	case x < 0:
		return []Effect{Facing(true)}
	case x > 0:
		return []Effect{Facing(false)}
	}
	return nil
}
