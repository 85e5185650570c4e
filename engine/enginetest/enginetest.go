// Package enginetest provides an in-memory, scriptable implementation of the
// engine capability interfaces for tests. Tests drive the fake directly:
// mark assets ready, mount scenes, inject signals, and tick the systems.
package enginetest

import (
	"fmt"

	"github.com/milk9111/gemrunner/engine"
)

// Node is a fake scene node.
type Node struct {
	NodePath string
	Freed    bool

	Text        string
	Animation   string
	FlippedH    bool
	Overlapping bool

	Vel     engine.Vec2
	OnFloor bool
	Moves   int
}

func (n *Node) Valid() bool {
	return n != nil && !n.Freed
}

func (n *Node) Path() string {
	if n == nil {
		return ""
	}
	return n.NodePath
}

func (n *Node) QueueFree() {
	if n == nil {
		return
	}
	n.Freed = true
}

func (n *Node) SetText(text string) {
	if n == nil {
		return
	}
	n.Text = text
}

func (n *Node) PlayAnimation(name string) {
	if n == nil {
		return
	}
	n.Animation = name
}

func (n *Node) SetFlipH(flip bool) {
	if n == nil {
		return
	}
	n.FlippedH = flip
}

func (n *Node) Velocity() engine.Vec2 {
	return n.Vel
}

func (n *Node) SetVelocity(v engine.Vec2) {
	if n == nil {
		return
	}
	n.Vel = v
}

func (n *Node) IsOnFloor() bool {
	return n != nil && n.OnFloor
}

func (n *Node) MoveAndSlide(dt float64) {
	if n == nil {
		return
	}
	n.Moves++
}

func (n *Node) Overlaps(body engine.PhysicsBody) bool {
	return n != nil && !n.Freed && n.Overlapping
}

// Input is a scriptable input source.
type Input struct {
	AxisValue float64
	Pressed   map[string]bool
}

func NewInput() *Input {
	return &Input{Pressed: map[string]bool{}}
}

func (i *Input) Axis(negative, positive string) float64 {
	if i == nil {
		return 0
	}
	return i.AxisValue
}

func (i *Input) JustPressed(action string) bool {
	if i == nil {
		return false
	}
	return i.Pressed[action]
}

// Press marks an action just-pressed for the current tick.
func (i *Input) Press(action string) {
	i.Pressed[action] = true
}

// Release clears all just-pressed actions.
func (i *Input) Release() {
	i.Pressed = map[string]bool{}
}

// AssetHandle is a fake asset load handle.
type AssetHandle struct {
	AssetPath string
	IsScene   bool
}

func (h *AssetHandle) Path() string {
	if h == nil {
		return ""
	}
	return h.AssetPath
}

// Assets is a scriptable asset server. Loads stay pending until the test
// calls Finish.
type Assets struct {
	Loads []*AssetHandle
	ready map[*AssetHandle]bool
}

func NewAssets() *Assets {
	return &Assets{ready: map[*AssetHandle]bool{}}
}

func (a *Assets) Load(path string) engine.AssetHandle {
	h := &AssetHandle{AssetPath: path, IsScene: true}
	a.Loads = append(a.Loads, h)
	return h
}

func (a *Assets) IsReady(h engine.AssetHandle) bool {
	fh, ok := h.(*AssetHandle)
	if !ok {
		return false
	}
	return a.ready[fh]
}

// Finish marks a pending load as completed.
func (a *Assets) Finish(h engine.AssetHandle) {
	if fh, ok := h.(*AssetHandle); ok {
		a.ready[fh] = true
	}
}

// FinishAll marks every pending load as completed.
func (a *Assets) FinishAll() {
	for _, h := range a.Loads {
		a.ready[h] = true
	}
}

// Tree is a scriptable scene tree.
type Tree struct {
	Nodes map[string]engine.NodeHandle
	Scene []engine.SceneNode

	added []engine.NodeEvent

	Reloads       int
	PathChanges   []string
	LoadedChanges []engine.AssetHandle
	QuitRequested bool
}

func NewTree() *Tree {
	return &Tree{Nodes: map[string]engine.NodeHandle{}}
}

func (t *Tree) ReloadCurrent() {
	t.Reloads++
}

func (t *Tree) ChangeToPath(path string) {
	t.PathChanges = append(t.PathChanges, path)
}

func (t *Tree) ChangeToLoaded(h engine.AssetHandle) error {
	fh, ok := h.(*AssetHandle)
	if !ok || fh == nil {
		return fmt.Errorf("enginetest: asset not found")
	}
	if !fh.IsScene {
		return fmt.Errorf("enginetest: %s is not a scene resource", fh.AssetPath)
	}
	t.LoadedChanges = append(t.LoadedChanges, h)
	return nil
}

// AddNode registers a node and emits a node-added event for it.
func (t *Tree) AddNode(nodeType string, node engine.NodeHandle) {
	t.Nodes[node.Path()] = node
	t.added = append(t.added, engine.NodeEvent{Path: node.Path(), Type: nodeType})
}

func (t *Tree) NodesAdded() []engine.NodeEvent {
	out := t.added
	t.added = nil
	return out
}

func (t *Tree) FindNode(path string) (engine.NodeHandle, bool) {
	n, ok := t.Nodes[path]
	if !ok || n == nil || !n.Valid() {
		return nil, false
	}
	return n, true
}

func (t *Tree) CurrentSceneNodes() []engine.SceneNode {
	return t.Scene
}

func (t *Tree) Quit() {
	t.QuitRequested = true
}

// Signals is a scriptable UI signal feed.
type Signals struct {
	Connected map[string]int
	queue     []engine.Signal
}

func NewSignals() *Signals {
	return &Signals{Connected: map[string]int{}}
}

func (s *Signals) Connect(node engine.NodeHandle, signal string) {
	if node == nil {
		return
	}
	s.Connected[node.Path()+":"+signal]++
}

// Emit queues a signal for the next drain.
func (s *Signals) Emit(target engine.NodeHandle, name string) {
	s.queue = append(s.queue, engine.Signal{Target: target, Name: name})
}

func (s *Signals) Signals() []engine.Signal {
	out := s.queue
	s.queue = nil
	return out
}

// Play records one audio channel playback.
type Play struct {
	Clip string
	Opts engine.PlayOptions
}

// Channel is a recording audio channel.
type Channel struct {
	Plays []Play
	Stops int
}

func (c *Channel) Play(clip string, opts engine.PlayOptions) {
	c.Plays = append(c.Plays, Play{Clip: clip, Opts: opts})
}

func (c *Channel) Stop() {
	c.Stops++
}

// Window is a fake display-mode holder.
type Window struct {
	Fullscreen bool
}

func (w *Window) IsFullscreen() bool {
	return w != nil && w.Fullscreen
}

func (w *Window) SetFullscreen(enabled bool) {
	if w == nil {
		return
	}
	w.Fullscreen = enabled
}
