package component

// Contact is the ground contact state derived from physics callbacks.
type Contact struct {
	Count    int
	Grounded bool
}

var ContactComponent = NewComponent[Contact]()
