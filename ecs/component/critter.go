package component

// Critter marks a playable roster member.
type Critter struct {
	Name       string
	Slot       int
	Active     bool
	FacingLeft bool
	Visible    bool
}

var CritterComponent = NewComponent[Critter]()
