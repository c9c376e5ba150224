package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Enabled is true only for a body that is simulated; disabled bodies are
// kinematic, motionless and have their shapes out of the space.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Sensor   *cp.Shape
	Width    float64
	Height   float64
	Mass     float64
	Friction float64
	Static   bool
	Enabled  bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
