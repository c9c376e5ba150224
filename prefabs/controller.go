package prefabs

import "github.com/milk9111/critterswap/motion"

// Controller builds the locomotion controller described by c, falling back to
// the locomotion's defaults for unset tuning values.
func (c CritterSpec) Controller() (motion.Controller, error) {
	kind, err := motion.ParseKind(c.Locomotion)
	if err != nil {
		return nil, err
	}

	t := c.Tuning
	switch kind {
	case motion.KindHop:
		tuning := motion.DefaultHopTuning()
		override(&tuning.MovementSpeed, t.MovementSpeed)
		override(&tuning.MoveDuration, t.MoveDuration)
		override(&tuning.WaitDuration, t.WaitDuration)
		override(&tuning.FlipCooldown, t.FlipCooldown)
		override(&tuning.RotationSpeed, t.RotationSpeed)
		return motion.NewHop(tuning), nil
	case motion.KindChargeSprint:
		tuning := motion.DefaultChargeSprintTuning()
		override(&tuning.MovementSpeed, t.MovementSpeed)
		override(&tuning.SprintSpeed, t.SprintSpeed)
		override(&tuning.Acceleration, t.Acceleration)
		override(&tuning.ChargeDuration, t.ChargeDuration)
		override(&tuning.SprintDuration, t.SprintDuration)
		override(&tuning.Cooldown, t.Cooldown)
		return motion.NewChargeSprint(tuning), nil
	default:
		tuning := motion.DefaultSimpleAccelTuning()
		override(&tuning.MovementSpeed, t.MovementSpeed)
		override(&tuning.Acceleration, t.Acceleration)
		return motion.NewSimpleAccel(tuning), nil
	}
}

func override(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
