package motion

type EffectKind uint8

const (
	EffectFacing EffectKind = iota + 1
	EffectAnimFlag
	EffectAnimPlay
	EffectAudio
	EffectRotation
	EffectGravityScale
	EffectCameraRoll
)

// Effect is a side effect requested by a controller. Which fields matter
// depends on Kind.
type Effect struct {
	Kind       EffectKind
	FacingLeft bool
	Name       string
	On         bool
	Degrees    float64
	Scale      float64
	Snap       bool
}

func Facing(left bool) Effect {
	return Effect{Kind: EffectFacing, FacingLeft: left}
}

func AnimFlag(name string, on bool) Effect {
	return Effect{Kind: EffectAnimFlag, Name: name, On: on}
}

func AnimPlay(name string) Effect {
	return Effect{Kind: EffectAnimPlay, Name: name}
}

func Audio(clip string) Effect {
	return Effect{Kind: EffectAudio, Name: clip}
}

// Rotation sets the entity rotation instantly, in degrees.
func Rotation(deg float64) Effect {
	return Effect{Kind: EffectRotation, Degrees: deg}
}

func GravityScale(scale float64) Effect {
	return Effect{Kind: EffectGravityScale, Scale: scale}
}

// CameraRoll retargets the camera roll. With snap the roll is applied at once
// instead of being interpolated.
func CameraRoll(deg float64, snap bool) Effect {
	return Effect{Kind: EffectCameraRoll, Degrees: deg, Snap: snap}
}

// WithScale returns a copy of e carrying s. For camera roll effects it is the
// interpolation rate.
func (e Effect) WithScale(s float64) Effect {
	e.Scale = s
	return e
}
