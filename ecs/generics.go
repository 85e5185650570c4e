package ecs

import "github.com/milk9111/gemrunner/ecs/component"

// Add attaches a component value to an entity.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	w.store(kind.ID()).Set(int(e.id()), value)
	return nil
}

// Remove detaches a component from an entity. Returns true if it was present.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !IsAlive(w, e) {
		return false
	}
	set := w.peekStore(kind.ID())
	return set.Remove(int(e.id()))
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !IsAlive(w, e) {
		return false
	}
	return w.peekStore(kind.ID()).Has(int(e.id()))
}

// Get returns the component for the entity, or (nil, false).
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !IsAlive(w, e) {
		return nil, false
	}
	v := w.peekStore(kind.ID()).Get(int(e.id()))
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// First returns an arbitrary live entity carrying the component.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	set := w.peekStore(kind.ID())
	for _, id := range set.Entities() {
		if e, ok := w.entityFor(id); ok {
			return e, true
		}
	}
	return 0, false
}

// Count returns the number of live entities carrying the component.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	if w == nil {
		return 0
	}
	n := 0
	set := w.peekStore(kind.ID())
	for _, id := range set.Entities() {
		if _, ok := w.entityFor(id); ok {
			n++
		}
	}
	return n
}

// ForEach visits every live entity carrying the component.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	set := w.peekStore(kind.ID())
	ids := append([]int(nil), set.Entities()...)
	for _, id := range ids {
		e, ok := w.entityFor(id)
		if !ok {
			continue
		}
		if v, ok := set.Get(id).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.peekStore(ka.ID())
	sb := w.peekStore(kb.ID())
	if sa.Len() == 0 || sb.Len() == 0 {
		return
	}
	ids := append([]int(nil), sa.Entities()...)
	for _, id := range ids {
		if !sb.Has(id) {
			continue
		}
		e, ok := w.entityFor(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 visits every live entity carrying all three components.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.peekStore(ka.ID())
	sb := w.peekStore(kb.ID())
	sc := w.peekStore(kc.ID())
	if sa.Len() == 0 || sb.Len() == 0 || sc.Len() == 0 {
		return
	}
	ids := append([]int(nil), sa.Entities()...)
	for _, id := range ids {
		if !sb.Has(id) || !sc.Has(id) {
			continue
		}
		e, ok := w.entityFor(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		c, okC := sc.Get(id).(*C)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}
