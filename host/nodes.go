package host

import "github.com/milk9111/gemrunner/engine"

type rect struct {
	x, y, w, h float64
}

func (r rect) intersects(o rect) bool {
	return r.x < o.x+o.w && o.x < r.x+r.w && r.y < o.y+o.h && o.y < r.y+r.h
}

type node interface {
	engine.NodeHandle
	base() *baseNode
}

type baseNode struct {
	path  string
	tree  *SceneTree
	freed bool
}

func (n *baseNode) base() *baseNode { return n }

func (n *baseNode) Valid() bool { return n != nil && !n.freed }

func (n *baseNode) Path() string { return n.path }

func (n *baseNode) QueueFree() {
	if n == nil || n.freed || n.tree == nil {
		return
	}
	n.tree.queueFree(n.path)
}

// plainNode covers structural nodes (roots, containers).
type plainNode struct {
	baseNode
}

type staticNode struct {
	baseNode
	bounds rect
}

type labelNode struct {
	baseNode
	pos  engine.Vec2
	text string
}

func (n *labelNode) SetText(text string) {
	if !n.Valid() {
		return
	}
	n.text = text
}

type spriteNode struct {
	baseNode
	animation string
	flipH     bool
}

func (n *spriteNode) PlayAnimation(name string) {
	if !n.Valid() {
		return
	}
	n.animation = name
}

func (n *spriteNode) SetFlipH(flip bool) {
	if !n.Valid() {
		return
	}
	n.flipH = flip
}

type areaNode struct {
	baseNode
	bounds rect
}

func (n *areaNode) Overlaps(body engine.PhysicsBody) bool {
	if !n.Valid() || body == nil || !body.Valid() {
		return false
	}
	b, ok := body.(*bodyNode)
	if !ok {
		return false
	}
	return n.bounds.intersects(b.bounds())
}

type buttonNode struct {
	baseNode
	pos   engine.Vec2
	label string
}
