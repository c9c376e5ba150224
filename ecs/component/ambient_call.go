package component

// AmbientCall repeats a critter's call while it is the active critter.
type AmbientCall struct {
	Clip     string
	Interval float64
	Pause    float64
	NextAt   float64
	Armed    bool
}

var AmbientCallComponent = NewComponent[AmbientCall]()
