package component

import "github.com/milk9111/gemrunner/level"

// Door marks an entity that loads another level when the player touches it.
type Door struct {
	Target level.ID
}

var DoorComponent = NewComponent[Door]()
