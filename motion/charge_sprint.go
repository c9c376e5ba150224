package motion

import (
	"github.com/milk9111/critterswap/common"
	"github.com/milk9111/critterswap/input"
)

type SprintPhase uint8

const (
	SprintIdle SprintPhase = iota
	SprintCharging
	SprintCharged
	SprintSprinting
	SprintCooldown

	sprintPhaseCount
)

func (p SprintPhase) String() string {
	switch p {
	case SprintCharging:
		return "charging"
	case SprintCharged:
		return "charged"
	case SprintSprinting:
		return "sprinting"
	case SprintCooldown:
		return "cooldown"
	}
	return "idle"
}

type ChargeSprintTuning struct {
	MovementSpeed  float64
	SprintSpeed    float64
	Acceleration   float64
	ChargeDuration float64
	SprintDuration float64
	Cooldown       float64
}

func DefaultChargeSprintTuning() ChargeSprintTuning {
	return ChargeSprintTuning{
		MovementSpeed:  1,
		SprintSpeed:    10,
		Acceleration:   25,
		ChargeDuration: 1,
		SprintDuration: 0.5,
		Cooldown:       10,
	}
}

type ChargeSprintState struct {
	Phase           SprintPhase
	PhaseEndsAt     float64
	CooldownEndsAt  float64
	SprintDirection float64
	VelocityX       float64
}

func (s ChargeSprintState) Charged() bool { return s.Phase == SprintCharged }

func (s ChargeSprintState) Sprinting() bool { return s.Phase == SprintSprinting }

// ChargeSprint crawls at a slow speed and can charge a short burst sprint that
// is followed by a long recovery.
type ChargeSprint struct {
	tuning ChargeSprintTuning
	state  ChargeSprintState
	moveX  float64

	grounded    bool
	groundKnown bool
	current     sprintState
}

func NewChargeSprint(tuning ChargeSprintTuning) *ChargeSprint {
	return &ChargeSprint{tuning: tuning, current: sprintStateIdle}
}

func (c *ChargeSprint) Kind() Kind { return KindChargeSprint }

func (c *ChargeSprint) Phase() string { return c.state.Phase.String() }

func (c *ChargeSprint) State() ChargeSprintState { return c.state }

func (c *ChargeSprint) Tuning() ChargeSprintTuning { return c.tuning }

func (c *ChargeSprint) OnMove(now float64, v input.Vector) []Effect {
	c.moveX = v.X

	var effects []Effect
	if c.state.Phase == SprintCharged && hasDirection(v.X) {
		effects = append(effects, c.changeState(sprintStateSprinting, now)...)
	}

	if v.X != 0 {
		effects = append(effects, facingEffects(v.X)...)
		effects = append(effects, AnimFlag("move", true), AnimPlay("move"))
	} else {
		effects = append(effects, AnimFlag("move", false))
	}
	return effects
}

func (c *ChargeSprint) OnUse(float64, bool) []Effect { return nil }

// OnSprint begins charging from rest once the cooldown has elapsed. Requests
// while charging, charged or sprinting are ignored.
func (c *ChargeSprint) OnSprint(now float64, pressed bool) []Effect {
	if !pressed {
		return nil
	}
	switch c.state.Phase {
	case SprintCharging, SprintCharged, SprintSprinting:
		return nil
	}
	if now < c.state.CooldownEndsAt {
		return nil
	}
	return c.changeState(sprintStateCharging, now)
}

func (c *ChargeSprint) Advance(f Frame) Step {
	var effects []Effect

	if c.groundKnown && c.grounded && !f.Grounded {
		if c.state.Phase == SprintCharging || c.state.Phase == SprintCharged {
			effects = append(effects, c.changeState(sprintStateIdle, f.Now)...)
		}
	}
	c.grounded = f.Grounded
	c.groundKnown = true

	if c.current == nil {
		c.current = sprintStateIdle
	}
	// Charging, Charged, Sprinting and Cooldown may each complete in one frame.
	for range sprintPhaseCount {
		next := c.current.Update(c, f)
		if next == nil {
			break
		}
		effects = append(effects, c.changeState(next, f.Now)...)
	}

	target := c.moveX * c.tuning.MovementSpeed
	if c.state.Phase == SprintSprinting {
		target = c.state.SprintDirection * c.tuning.SprintSpeed
	}
	c.state.VelocityX = common.MoveTowards(c.state.VelocityX, target, c.tuning.Acceleration*f.Dt)

	return Step{VelocityX: c.state.VelocityX, Effects: effects}
}

func (c *ChargeSprint) changeState(next sprintState, now float64) []Effect {
	if c.current == next {
		return nil
	}
	var effects []Effect
	if c.current != nil {
		effects = append(effects, c.current.Exit(c)...)
	}
	c.current = next
	c.state.Phase = next.Phase()
	return append(effects, next.Enter(c, now)...)
}

func (c *ChargeSprint) Reset() []Effect {
	c.state = ChargeSprintState{}
	c.moveX = 0
	c.current = sprintStateIdle
	c.grounded = false
	c.groundKnown = false
	return []Effect{
		AnimFlag("charge", false),
		AnimFlag("sprint", false),
		AnimFlag("move", false),
	}
}
