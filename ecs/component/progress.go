package component

// Progress counts what the player picked up this session.
type Progress struct {
	Collected int
	Total     int
}

var ProgressComponent = NewComponent[Progress]()
