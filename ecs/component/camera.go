package component

// Camera tracks Target horizontally inside the level's LevelBounds and
// vertically at a fixed offset captured when tracking began. Position lives in
// the camera entity's Transform.
type Camera struct {
	Target         uint64 // ecs.Entity
	ViewHalfHeight float64
	Aspect         float64
	Smoothing      float64
	OffsetY        float64
	Z              float64

	Roll       float64
	RollTarget float64
	RollSpeed  float64

	// SkipFollow suppresses continuous follow for the frame a snap happened on.
	SkipFollow bool
}

var CameraComponent = NewComponent[Camera]()
