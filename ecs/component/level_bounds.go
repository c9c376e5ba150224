package component

// LevelBounds is the horizontal extent of the playable world.
type LevelBounds struct {
	MinX float64
	MaxX float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
