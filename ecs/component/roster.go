package component

// Roster is the ordered set of playable critters. Only the switch system writes
// Active. Invariant: 0 <= Active < Unlocked <= len(Slots).
type Roster struct {
	Slots       []uint64 // ecs.Entity
	Active      int
	Unlocked    int
	Initialized bool
}

var RosterComponent = NewComponent[Roster]()
