package input

// SubscriptionID identifies a subscriber. The upper 32 bits carry the slot
// generation and the lower 32 bits the slot index plus one, so the zero value is
// never issued.
type SubscriptionID uint64

const slotBits = 32

func makeSubscriptionID(slot, gen uint32) SubscriptionID {
	return SubscriptionID(uint64(gen)<<slotBits | uint64(slot+1))
}

func (id SubscriptionID) slot() (uint32, bool) {
	raw := uint32(uint64(id))
	if raw == 0 {
		return 0, false
	}
	return raw - 1, true
}

func (id SubscriptionID) generation() uint32 {
	return uint32(uint64(id) >> slotBits)
}

func (id SubscriptionID) Valid() bool {
	return id != 0
}

type subscriber struct {
	gen  uint32
	live bool
	kind EventKind
	fn   func(Event)
}

// registry owns every subscriber. Removal is explicit; a stale ID whose slot has
// been recycled no longer matches the slot generation and is ignored.
type registry struct {
	slots []subscriber
	free  []uint32
	order [eventKindCount][]uint32
}

func (r *registry) add(kind EventKind, fn func(Event)) SubscriptionID {
	var slot uint32
	if n := len(r.free); n > 0 {
		slot = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		slot = uint32(len(r.slots))
		r.slots = append(r.slots, subscriber{})
	}

	sub := &r.slots[slot]
	sub.live = true
	sub.kind = kind
	sub.fn = fn
	r.order[kind] = append(r.order[kind], slot)
	return makeSubscriptionID(slot, sub.gen)
}

func (r *registry) remove(id SubscriptionID) bool {
	slot, ok := id.slot()
	if !ok || int(slot) >= len(r.slots) {
		return false
	}
	sub := &r.slots[slot]
	if !sub.live || sub.gen != id.generation() {
		return false
	}

	order := r.order[sub.kind]
	for i, s := range order {
		if s == slot {
			r.order[sub.kind] = append(order[:i:i], order[i+1:]...)
			break
		}
	}

	sub.live = false
	sub.fn = nil
	sub.gen++
	r.free = append(r.free, slot)
	return true
}

func (r *registry) alive(id SubscriptionID) bool {
	slot, ok := id.slot()
	if !ok || int(slot) >= len(r.slots) {
		return false
	}
	sub := r.slots[slot]
	return sub.live && sub.gen == id.generation()
}

func (r *registry) count(kind EventKind) int {
	return len(r.order[kind])
}
