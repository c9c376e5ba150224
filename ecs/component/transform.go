package component

// Transform is a world-space pose in y-up units. Rotation is in degrees.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
