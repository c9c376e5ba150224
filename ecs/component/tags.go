package component

type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()
