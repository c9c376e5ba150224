package component

import (
	"github.com/milk9111/critterswap/input"
	"github.com/milk9111/critterswap/motion"
)

// Locomotion binds a critter to its movement controller and to the input
// subscriptions that feed it.
type Locomotion struct {
	Controller    motion.Controller
	Subscriptions []input.SubscriptionID
}

var LocomotionComponent = NewComponent[Locomotion]()
