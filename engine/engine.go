// Package engine declares the capabilities the gameplay layer requires from
// the host engine. The gameplay systems never own engine objects; they hold
// opaque handles that may be invalidated at any time (scene swaps free
// nodes), so every access starts with a Valid check and skips on failure.
package engine

import "time"

// Vec2 is a 2D vector in screen space (Y grows downward).
type Vec2 struct {
	X float64
	Y float64
}

// NodeHandle is an opaque, possibly-invalidated reference to an engine-owned
// scene node. Handles are weak: QueueFree and scene swaps invalidate them.
type NodeHandle interface {
	// Valid reports whether the underlying node still exists.
	Valid() bool
	// Path returns the node's scene-tree path.
	Path() string
	// QueueFree removes the node from the scene at the end of the tick.
	QueueFree()
}

// Label is a text node.
type Label interface {
	NodeHandle
	SetText(text string)
}

// Sprite is an animated sprite node.
type Sprite interface {
	NodeHandle
	PlayAnimation(name string)
	SetFlipH(flip bool)
}

// PhysicsBody is a kinematic 2D body owned by the host physics engine.
type PhysicsBody interface {
	NodeHandle
	Velocity() Vec2
	SetVelocity(v Vec2)
	IsOnFloor() bool
	// MoveAndSlide applies the current velocity, resolves collisions, and
	// updates floor contact.
	MoveAndSlide(dt float64)
}

// Area is a non-solid collision probe (gems, doors).
type Area interface {
	NodeHandle
	// Overlaps reports whether the area currently overlaps the body.
	Overlaps(body PhysicsBody) bool
}

// Input is the host's polling input source. Actions are named in the host's
// input map ("move_left", "jump", ...).
type Input interface {
	// Axis returns the combined state of two opposing actions in [-1, 1].
	Axis(negative, positive string) float64
	// JustPressed reports whether the action was pressed this tick.
	JustPressed(action string) bool
}

// AssetHandle identifies an in-flight or completed asset load.
type AssetHandle interface {
	Path() string
}

// AssetServer loads scene assets asynchronously. Loads are never cancelled;
// a superseded load simply completes unobserved.
type AssetServer interface {
	Load(path string) AssetHandle
	IsReady(h AssetHandle) bool
}

// NodeEvent is one entry of the scene tree's node-added feed.
type NodeEvent struct {
	Path string
	Type string
}

// SceneNode describes one node of the currently mounted scene.
type SceneNode struct {
	Handle     NodeHandle
	Type       string
	Properties map[string]string
}

// SceneTree is the host scene graph. All mutations of it must funnel through
// a single caller per tick.
type SceneTree interface {
	ReloadCurrent()
	ChangeToPath(path string)
	// ChangeToLoaded swaps to a previously loaded scene asset. It fails when
	// the handle does not resolve to a scene resource.
	ChangeToLoaded(h AssetHandle) error
	// NodesAdded drains the node-added feed. Each event is observed once.
	NodesAdded() []NodeEvent
	FindNode(path string) (NodeHandle, bool)
	// CurrentSceneNodes lists the mounted scene's nodes for entity spawning.
	CurrentSceneNodes() []SceneNode
	// Quit requests application shutdown.
	Quit()
}

// Signal is one UI signal occurrence (e.g. a button press).
type Signal struct {
	Target NodeHandle
	Name   string
}

// SignalFeed delivers UI signals. Connect must be idempotent per
// (node, signal) pair; Signals drains the feed once per tick.
type SignalFeed interface {
	Connect(node NodeHandle, signal string)
	Signals() []Signal
}

// PlayOptions configure one playback on an audio channel.
type PlayOptions struct {
	Volume float64
	Loop   bool
	FadeIn time.Duration
}

// AudioChannel is an independent named mixer channel.
type AudioChannel interface {
	Play(clip string, opts PlayOptions)
	Stop()
}

// Window exposes display-mode control for the menu's fullscreen toggle.
type Window interface {
	IsFullscreen() bool
	SetFullscreen(enabled bool)
}

// Host aggregates every capability the gameplay layer consumes.
type Host struct {
	Input   Input
	Assets  AssetServer
	Tree    SceneTree
	Signals SignalFeed
	Music   AudioChannel
	Sfx     AudioChannel
	Window  Window
}
