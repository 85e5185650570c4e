package system

import (
	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/ecs/component"
	"github.com/milk9111/gemrunner/event"
)

// DoorSystem publishes a level-load request for every door/player contact.
// No debouncing: the level manager treats repeated requests for the same
// level as most-recent-wins.
type DoorSystem struct {
	Bus *event.Bus
}

func NewDoorSystem(bus *event.Bus) *DoorSystem {
	return &DoorSystem{Bus: bus}
}

func (s *DoorSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Bus == nil {
		return
	}
	ecs.ForEach2(w, component.DoorComponent.Kind(), component.CollisionsComponent.Kind(), func(_ ecs.Entity, door *component.Door, col *component.Collisions) {
		for _, other := range col.Recent {
			if ecs.Has(w, ecs.Entity(other), component.PlayerComponent.Kind()) {
				s.Bus.LoadLevel.Publish(event.LoadLevel{Level: door.Target})
			}
		}
	})
}
