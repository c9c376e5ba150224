package component

// Collectible is an axis-aligned pickup centred on its transform.
type Collectible struct {
	Kind   string
	Width  float64
	Height float64
}

var CollectibleComponent = NewComponent[Collectible]()
