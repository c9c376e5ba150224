package motion

import "github.com/milk9111/critterswap/common"

// sprintState is one state of the charge-sprint machine. Update returns the
// state to move to this frame, or nil to stay.
type sprintState interface {
	Phase() SprintPhase
	Enter(c *ChargeSprint, now float64) []Effect
	Exit(c *ChargeSprint) []Effect
	Update(c *ChargeSprint, f Frame) sprintState
}

var (
	sprintStateIdle      sprintState = &sprintIdleState{}
	sprintStateCharging  sprintState = &sprintChargingState{}
	sprintStateCharged   sprintState = &sprintChargedState{}
	sprintStateSprinting sprintState = &sprintSprintingState{}
	sprintStateCooldown  sprintState = &sprintCooldownState{}
)

type sprintIdleState struct{}

type sprintChargingState struct{}

type sprintChargedState struct{}

type sprintSprintingState struct{}

type sprintCooldownState struct{}

func (sprintIdleState) Phase() SprintPhase { return SprintIdle }
func (sprintIdleState) Enter(c *ChargeSprint, _ float64) []Effect {
	c.state.PhaseEndsAt = 0
	return nil
}
func (sprintIdleState) Exit(c *ChargeSprint) []Effect { return nil }
func (sprintIdleState) Update(c *ChargeSprint, f Frame) sprintState { return nil }

func (sprintChargingState) Phase() SprintPhase { return SprintCharging }
func (sprintChargingState) Enter(c *ChargeSprint, now float64) []Effect {
	c.state.PhaseEndsAt = now + c.tuning.ChargeDuration
	return []Effect{AnimFlag("charge", true)}
}
func (sprintChargingState) Exit(c *ChargeSprint) []Effect {
	return []Effect{AnimFlag("charge", false)}
}
func (sprintChargingState) Update(c *ChargeSprint, f Frame) sprintState {
	if elapsed(f.Now, c.state.PhaseEndsAt) {
		return sprintStateCharged
	}
	return nil
}

func (sprintChargedState) Phase() SprintPhase { return SprintCharged }
func (sprintChargedState) Enter(c *ChargeSprint, _ float64) []Effect {
	c.state.PhaseEndsAt = 0
	return nil
}
func (sprintChargedState) Exit(c *ChargeSprint) []Effect { return nil }

// Update releases a held charge as soon as there is a direction to sprint in.
func (sprintChargedState) Update(c *ChargeSprint, f Frame) sprintState {
	if hasDirection(c.moveX) {
		return sprintStateSprinting
	}
	return nil
}

func (sprintSprintingState) Phase() SprintPhase { return SprintSprinting }

// Enter locks the sprint direction for the whole burst.
func (sprintSprintingState) Enter(c *ChargeSprint, now float64) []Effect {
	c.state.SprintDirection = common.Sign(c.moveX)
	c.state.PhaseEndsAt = now + c.tuning.SprintDuration
	return []Effect{AnimFlag("sprint", true), Audio("sprint")}
}
func (sprintSprintingState) Exit(c *ChargeSprint) []Effect {
	return []Effect{AnimFlag("sprint", false)}
}
func (sprintSprintingState) Update(c *ChargeSprint, f Frame) sprintState {
	if elapsed(f.Now, c.state.PhaseEndsAt) {
		return sprintStateCooldown
	}
	return nil
}

func (sprintCooldownState) Phase() SprintPhase { return SprintCooldown }
func (sprintCooldownState) Enter(c *ChargeSprint, now float64) []Effect {
	c.state.PhaseEndsAt = 0
	c.state.CooldownEndsAt = now + c.tuning.Cooldown
	return nil
}
func (sprintCooldownState) Exit(c *ChargeSprint) []Effect { return nil }
func (sprintCooldownState) Update(c *ChargeSprint, f Frame) sprintState {
	if elapsed(f.Now, c.state.CooldownEndsAt) {
		return sprintStateIdle
	}
	return nil
}
