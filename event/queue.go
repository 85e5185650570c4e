// Package event provides the tick-scoped event queues that decouple the
// gameplay systems. Producers publish during a tick, consumers that run later
// in the same tick read, and the game loop clears every queue at the tick
// boundary. Events never survive into the next tick.
package event

// Queue is a single-tick event queue for one event type. Reads are
// non-destructive so multiple systems can consume the same events.
type Queue[T any] struct {
	items []T
}

// Publish appends an event for consumers running later in this tick.
func (q *Queue[T]) Publish(e T) {
	if q == nil {
		return
	}
	q.items = append(q.items, e)
}

// Events returns the events published so far this tick.
func (q *Queue[T]) Events() []T {
	if q == nil {
		return nil
	}
	return q.items
}

// Len returns the number of pending events.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Clear drops all events. Called once per tick by the game loop.
func (q *Queue[T]) Clear() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
