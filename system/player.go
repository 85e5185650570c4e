package system

import (
	"math"

	"github.com/milk9111/gemrunner/ecs"
	"github.com/milk9111/gemrunner/ecs/component"
	"github.com/milk9111/gemrunner/engine"
	"github.com/milk9111/gemrunner/event"
)

// The player pipeline is three strictly ordered stages. Input detection only
// polls and publishes, movement only consumes input events and drives the
// body, animation only consumes movement events. Each stage silently skips
// the tick when the body handle is invalid (mid scene swap).

// PlayerInputSystem polls the host input and publishes exactly one
// PlayerInput event per tick, even when all-neutral, so the movement system
// keeps decelerating after keys are released.
type PlayerInputSystem struct {
	Input engine.Input
	Bus   *event.Bus
}

func NewPlayerInputSystem(input engine.Input, bus *event.Bus) *PlayerInputSystem {
	return &PlayerInputSystem{Input: input, Bus: bus}
}

func (s *PlayerInputSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Input == nil || s.Bus == nil {
		return
	}
	body, ok := playerBody(w)
	if !ok {
		return
	}
	s.Bus.PlayerInput.Publish(event.PlayerInput{
		Direction:   s.Input.Axis("move_left", "move_right"),
		JumpPressed: s.Input.JustPressed("jump"),
		OnFloor:     body.IsOnFloor(),
	})
}

// PlayerMovementSystem turns the tick's input events into a velocity update
// and runs the body's move-and-slide.
type PlayerMovementSystem struct {
	Bus   *event.Bus
	Clock *Clock
}

func NewPlayerMovementSystem(bus *event.Bus, clock *Clock) *PlayerMovementSystem {
	return &PlayerMovementSystem{Bus: bus, Clock: clock}
}

func (s *PlayerMovementSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Bus == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	ref, ok := ecs.Get(w, player, component.BodyRefComponent.Kind())
	if !ok || ref.Body == nil || !ref.Body.Valid() {
		return
	}
	speed, _ := ecs.Get(w, player, component.SpeedComponent.Kind())
	jumpVel, _ := ecs.Get(w, player, component.JumpVelocityComponent.Kind())
	gravity, _ := ecs.Get(w, player, component.GravityComponent.Kind())
	if speed == nil || jumpVel == nil || gravity == nil {
		return
	}

	dt := 1.0 / 60.0
	if s.Clock != nil && s.Clock.Dt > 0 {
		dt = s.Clock.Dt
	}

	body := ref.Body
	vel := body.Velocity()

	// Gravity applies whenever the body is airborne, input or not.
	if !body.IsOnFloor() {
		vel.Y += gravity.Value * dt
	}

	moving := false
	lastDirection := 0.0
	processedInput := false
	for _, in := range s.Bus.PlayerInput.Events() {
		processedInput = true
		lastDirection = in.Direction

		if in.JumpPressed && in.OnFloor {
			vel.Y = jumpVel.Value
			s.Bus.Sfx.Publish(event.SfxPlayerJump)
		}

		if in.Direction != 0 {
			vel.X = in.Direction * speed.Value
			moving = true
		} else {
			vel.X = moveToward(vel.X, 0, speed.Value/2)
		}
	}

	// Horizontal velocity must never stay unchanged with no input signal.
	if !processedInput {
		vel.X = moveToward(vel.X, 0, speed.Value/2)
	}

	body.SetVelocity(vel)
	body.MoveAndSlide(dt)

	s.Bus.PlayerMovement.Publish(event.PlayerMovement{
		Moving:     moving,
		OnFloor:    body.IsOnFloor(),
		FacingLeft: lastDirection < 0,
	})
}

// PlayerAnimationSystem picks the sprite animation from movement events.
// Airborne wins over moving wins over idle.
type PlayerAnimationSystem struct {
	Bus *event.Bus
}

func NewPlayerAnimationSystem(bus *event.Bus) *PlayerAnimationSystem {
	return &PlayerAnimationSystem{Bus: bus}
}

func (s *PlayerAnimationSystem) Update(w *ecs.World) {
	if w == nil || s == nil || s.Bus == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	ref, ok := ecs.Get(w, player, component.SpriteRefComponent.Kind())
	if !ok || ref.Sprite == nil || !ref.Sprite.Valid() {
		return
	}
	sprite := ref.Sprite
	for _, mv := range s.Bus.PlayerMovement.Events() {
		sprite.SetFlipH(mv.FacingLeft)
		switch {
		case !mv.OnFloor:
			sprite.PlayAnimation("jump")
		case mv.Moving:
			sprite.PlayAnimation("run")
		default:
			sprite.PlayAnimation("idle")
		}
	}
}

func playerBody(w *ecs.World) (engine.PhysicsBody, bool) {
	player, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return nil, false
	}
	ref, ok := ecs.Get(w, player, component.BodyRefComponent.Kind())
	if !ok || ref.Body == nil || !ref.Body.Valid() {
		return nil, false
	}
	return ref.Body, true
}

// moveToward steps current toward target by at most delta, never
// overshooting.
func moveToward(current, target, delta float64) float64 {
	if math.Abs(target-current) <= delta {
		return target
	}
	if target > current {
		return current + delta
	}
	return current - delta
}
