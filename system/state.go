// Package system contains the gameplay systems and the shared resources they
// mutate. Every resource has exactly one writer system per tick by
// convention; the game loop owns system order.
package system

// GameState is the process-wide game state.
type GameState int

const (
	StateLoading GameState = iota
	StateMainMenu
	StateInGame
)

func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateMainMenu:
		return "MainMenu"
	case StateInGame:
		return "InGame"
	}
	return "Unknown"
}

// GameStateStore holds the current game state. Transitions requested during a
// tick are deferred and applied at the tick boundary, so every system in a
// tick observes the same state.
type GameStateStore struct {
	current GameState
	next    *GameState
}

// NewGameStateStore creates a store starting in the given state.
func NewGameStateStore(initial GameState) *GameStateStore {
	return &GameStateStore{current: initial}
}

// Current returns the active state.
func (s *GameStateStore) Current() GameState {
	if s == nil {
		return StateLoading
	}
	return s.current
}

// Set requests a transition. The last request in a tick wins.
func (s *GameStateStore) Set(next GameState) {
	if s == nil {
		return
	}
	s.next = &next
}

// Apply commits a pending transition. Returns the entered state and true when
// a transition happened.
func (s *GameStateStore) Apply() (GameState, bool) {
	if s == nil || s.next == nil {
		return 0, false
	}
	entered := *s.next
	s.next = nil
	if entered == s.current {
		return 0, false
	}
	s.current = entered
	return entered, true
}

// Clock carries the tick delta in seconds. The game loop updates it before
// running systems.
type Clock struct {
	Dt float64
}
