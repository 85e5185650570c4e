// Package entity builds ECS entities from mounted scene nodes. Entities
// created here live exactly as long as the scene nodes they reference; the
// spawn system destroys and rebuilds them on every scene mount.
package entity

import (
	"fmt"

	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/ecs/component"
	"github.com/milk9111/gemrunner/engine"
	"github.com/milk9111/gemrunner/level"
)

// PlayerAttributes are the movement attributes attached at construction and
// read-only during simulation.
type PlayerAttributes struct {
	Speed        float64
	JumpVelocity float64
	Gravity      float64
}

// NewPlayer builds the player entity around its physics body node.
func NewPlayer(w *ecs.World, body engine.PhysicsBody, attrs PlayerAttributes) (ecs.Entity, error) {
	if w == nil || body == nil {
		return 0, fmt.Errorf("entity: player requires a physics body")
	}
	if attrs.Speed == 0 {
		attrs.Speed = component.DefaultSpeed
	}
	if attrs.JumpVelocity == 0 {
		attrs.JumpVelocity = component.DefaultJumpVelocity
	}
	if attrs.Gravity == 0 {
		attrs.Gravity = component.DefaultGravity
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{}); err != nil {
		return 0, fmt.Errorf("entity: player tag: %w", err)
	}
	if err := ecs.Add(w, e, component.NodeRefComponent.Kind(), &component.NodeRef{Handle: body}); err != nil {
		return 0, fmt.Errorf("entity: player node: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyRefComponent.Kind(), &component.BodyRef{Body: body}); err != nil {
		return 0, fmt.Errorf("entity: player body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpeedComponent.Kind(), &component.Speed{Value: attrs.Speed}); err != nil {
		return 0, fmt.Errorf("entity: player speed: %w", err)
	}
	if err := ecs.Add(w, e, component.JumpVelocityComponent.Kind(), &component.JumpVelocity{Value: attrs.JumpVelocity}); err != nil {
		return 0, fmt.Errorf("entity: player jump velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.GravityComponent.Kind(), &component.Gravity{Value: attrs.Gravity}); err != nil {
		return 0, fmt.Errorf("entity: player gravity: %w", err)
	}
	return e, nil
}

// AttachSprite wires the player's animated sprite handle.
func AttachSprite(w *ecs.World, e ecs.Entity, sprite engine.Sprite) error {
	if w == nil || sprite == nil {
		return fmt.Errorf("entity: nil sprite")
	}
	return ecs.Add(w, e, component.SpriteRefComponent.Kind(), &component.SpriteRef{Sprite: sprite})
}

// NewGem builds a gem entity around its area node.
func NewGem(w *ecs.World, node engine.NodeHandle) (ecs.Entity, error) {
	if w == nil || node == nil {
		return 0, fmt.Errorf("entity: gem requires a node")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GemComponent.Kind(), &component.Gem{}); err != nil {
		return 0, fmt.Errorf("entity: gem tag: %w", err)
	}
	if err := ecs.Add(w, e, component.NodeRefComponent.Kind(), &component.NodeRef{Handle: node}); err != nil {
		return 0, fmt.Errorf("entity: gem node: %w", err)
	}
	if err := ecs.Add(w, e, component.CollisionsComponent.Kind(), &component.Collisions{}); err != nil {
		return 0, fmt.Errorf("entity: gem collisions: %w", err)
	}
	return e, nil
}

// NewDoor builds a door entity targeting another level.
func NewDoor(w *ecs.World, node engine.NodeHandle, target level.ID) (ecs.Entity, error) {
	if w == nil || node == nil {
		return 0, fmt.Errorf("entity: door requires a node")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.DoorComponent.Kind(), &component.Door{Target: target}); err != nil {
		return 0, fmt.Errorf("entity: door tag: %w", err)
	}
	if err := ecs.Add(w, e, component.NodeRefComponent.Kind(), &component.NodeRef{Handle: node}); err != nil {
		return 0, fmt.Errorf("entity: door node: %w", err)
	}
	if err := ecs.Add(w, e, component.CollisionsComponent.Kind(), &component.Collisions{}); err != nil {
		return 0, fmt.Errorf("entity: door collisions: %w", err)
	}
	return e, nil
}

// NewEnemy builds an enemy entity. Enemies carry no behavior yet; the marker
// keeps scene enemies addressable.
func NewEnemy(w *ecs.World, node engine.NodeHandle) (ecs.Entity, error) {
	if w == nil || node == nil {
		return 0, fmt.Errorf("entity: enemy requires a node")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{}); err != nil {
		return 0, fmt.Errorf("entity: enemy tag: %w", err)
	}
	if err := ecs.Add(w, e, component.NodeRefComponent.Kind(), &component.NodeRef{Handle: node}); err != nil {
		return 0, fmt.Errorf("entity: enemy node: %w", err)
	}
	return e, nil
}
