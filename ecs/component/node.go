package component

import "github.com/milk9111/gemrunner/engine"

// NodeRef ties an entity to its engine scene node. The handle is weak; it
// becomes invalid when the node is freed or the scene is swapped.
type NodeRef struct {
	Handle engine.NodeHandle
}

// BodyRef holds the player's physics body handle.
type BodyRef struct {
	Body engine.PhysicsBody
}

// SpriteRef holds the animated sprite handle driven by the animation system.
type SpriteRef struct {
	Sprite engine.Sprite
}

// Collisions records the entities that collided with this entity during the
// current tick. Entity ids are uint64 (ecs.Entity is uint64); the component
// package cannot import ecs.
type Collisions struct {
	Recent []uint64
}

var NodeRefComponent = NewComponent[NodeRef]()
var BodyRefComponent = NewComponent[BodyRef]()
var SpriteRefComponent = NewComponent[SpriteRef]()
var CollisionsComponent = NewComponent[Collisions]()
