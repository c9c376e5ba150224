package ecs

// store is the type-erased view the world keeps of each component table.
type store interface {
	remove(id entityID) bool
	has(id entityID) bool
	ids() []entityID
	len() int
}

// sparseSet stores components densely, indexed by entity id.
type sparseSet[T any] struct {
	dense  []entityID
	values []*T
	// sparse holds dense index + 1; zero means absent
	sparse []int
}

func newSparseSet[T any]() *sparseSet[T] {
	return &sparseSet[T]{}
}

func (s *sparseSet[T]) has(id entityID) bool {
	return id > 0 && int(id) <= len(s.sparse) && s.sparse[id-1] > 0
}

func (s *sparseSet[T]) get(id entityID) *T {
	if !s.has(id) {
		return nil
	}
	return s.values[s.sparse[id-1]-1]
}

func (s *sparseSet[T]) set(id entityID, v *T) {
	if id == 0 {
		return
	}
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, 0)
	}
	if idx := s.sparse[id-1]; idx > 0 {
		s.values[idx-1] = v
		return
	}
	s.dense = append(s.dense, id)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense)
}

func (s *sparseSet[T]) remove(id entityID) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id-1] - 1
	last := len(s.dense) - 1
	lastID := s.dense[last]

	s.dense[idx] = lastID
	s.values[idx] = s.values[last]
	s.sparse[lastID-1] = idx + 1

	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[id-1] = 0
	return true
}

// ids returns a copy so callers may mutate the set while iterating.
func (s *sparseSet[T]) ids() []entityID {
	out := make([]entityID, len(s.dense))
	copy(out, s.dense)
	return out
}

func (s *sparseSet[T]) len() int {
	return len(s.dense)
}
