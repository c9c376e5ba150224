package ecs

import "github.com/milk9111/critterswap/ecs/component"

// Add stores value on e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	kind := handle.Kind()
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	storeFor(w, kind, true).set(e.id(), value)
	return nil
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s := storeFor(w, handle.Kind(), false)
	if s == nil {
		return nil, false
	}
	v := s.get(e.id())
	return v, v != nil
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	_, ok := Get(w, e, handle)
	return ok
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	s := storeFor(w, handle.Kind(), false)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

// First returns the lowest-stored live entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := storeFor(w, kind, false)
	if s == nil {
		return 0, false
	}
	for _, id := range s.dense {
		if e, ok := w.entityFor(id); ok {
			return e, true
		}
	}
	return 0, false
}

func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	if s == nil || fn == nil {
		return
	}
	for _, id := range s.ids() {
		e, ok := w.entityFor(id)
		if !ok {
			continue
		}
		if v := s.get(id); v != nil {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := storeFor(w, ka, false), storeFor(w, kb, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, id := range smaller(sa, sb).ids() {
		e, ok := w.entityFor(id)
		if !ok {
			continue
		}
		a, b := sa.get(id), sb.get(id)
		if a == nil || b == nil {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := storeFor(w, ka, false), storeFor(w, kb, false), storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, id := range smaller(smaller(sa, sb), sc).ids() {
		e, ok := w.entityFor(id)
		if !ok {
			continue
		}
		a, b, c := sa.get(id), sb.get(id), sc.get(id)
		if a == nil || b == nil || c == nil {
			continue
		}
		fn(e, a, b, c)
	}
}

// Count reports how many live entities carry kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	s := storeFor(w, kind, false)
	if s == nil {
		return 0
	}
	return s.len()
}

func smaller(a, b store) store {
	if a.len() <= b.len() {
		return a
	}
	return b
}
