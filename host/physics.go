package host

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/gemrunner/engine"
)

// physicsSpace owns the Chipmunk space for one mounted scene: static box
// shapes for the level geometry plus the single player body. Gravity lives in
// the gameplay layer, so the space itself applies none.
type physicsSpace struct {
	space *cp.Space
}

func newPhysicsSpace(statics []rect) *physicsSpace {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	for _, r := range statics {
		shape := cp.NewBox2(space.StaticBody, cp.BB{L: r.x, B: r.y, R: r.x + r.w, T: r.y + r.h}, 0)
		shape.SetFriction(0)
		shape.SetElasticity(0)
		space.AddShape(shape)
	}
	return &physicsSpace{space: space}
}

type bodyNode struct {
	baseNode
	space    *physicsSpace
	body     *cp.Body
	shape    *cp.Shape
	w, h     float64
	grounded bool
}

func newBodyNode(base baseNode, space *physicsSpace, bounds rect) *bodyNode {
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: bounds.x + bounds.w/2, Y: bounds.y + bounds.h/2})

	shape := cp.NewBox(body, bounds.w, bounds.h, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)

	space.space.AddBody(body)
	space.space.AddShape(shape)

	return &bodyNode{
		baseNode: base,
		space:    space,
		body:     body,
		shape:    shape,
		w:        bounds.w,
		h:        bounds.h,
	}
}

func (b *bodyNode) Velocity() engine.Vec2 {
	if !b.Valid() {
		return engine.Vec2{}
	}
	v := b.body.Velocity()
	return engine.Vec2{X: v.X, Y: v.Y}
}

func (b *bodyNode) SetVelocity(v engine.Vec2) {
	if !b.Valid() {
		return
	}
	b.body.SetVelocity(v.X, v.Y)
}

func (b *bodyNode) IsOnFloor() bool {
	return b.Valid() && b.grounded
}

func (b *bodyNode) MoveAndSlide(dt float64) {
	if !b.Valid() || dt <= 0 {
		return
	}
	b.space.space.Step(dt)
	b.updateGrounded()
}

// updateGrounded samples contact points after a solver step; contacts near
// the bottom edge of the body count as floor.
func (b *bodyNode) updateGrounded() {
	b.grounded = false
	bottom := b.body.Position().Y + b.h/4
	b.body.EachArbiter(func(arb *cp.Arbiter) {
		set := arb.ContactPointSet()
		for i := 0; i < set.Count; i++ {
			if set.Points[i].PointA.Y > bottom || set.Points[i].PointB.Y > bottom {
				b.grounded = true
			}
		}
	})
}

func (b *bodyNode) bounds() rect {
	pos := b.body.Position()
	return rect{x: pos.X - b.w/2, y: pos.Y - b.h/2, w: b.w, h: b.h}
}
