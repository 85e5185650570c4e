package component

// Player marks the player-controlled entity.
type Player struct{}

// Enemy marks an enemy entity.
type Enemy struct{}

// Gem marks a collectible gem entity.
type Gem struct{}

var PlayerComponent = NewComponent[Player]()
var EnemyComponent = NewComponent[Enemy]()
var GemComponent = NewComponent[Gem]()
