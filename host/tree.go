package host

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/gemrunner/engine"
	"github.com/milk9111/gemrunner/scenes"
)

type sceneInstance struct {
	def   *scenes.Scene
	nodes map[string]node
	order []string
	space *physicsSpace
	ui    *ebitenui.UI
}

// SceneTree mounts scene definitions into live nodes. Mounting frees every
// node of the previous scene, so handles held across a swap go invalid.
type SceneTree struct {
	assets  *AssetServer
	signals *SignalFeed

	current   *sceneInstance
	added     []engine.NodeEvent
	freeQueue []string
	quit      bool
}

func NewSceneTree(assets *AssetServer, signals *SignalFeed) *SceneTree {
	return &SceneTree{assets: assets, signals: signals}
}

func (t *SceneTree) ReloadCurrent() {
	if t.current == nil {
		log.Printf("SceneTree: reload requested with no scene mounted")
		return
	}
	t.mount(t.current.def)
}

func (t *SceneTree) ChangeToPath(path string) {
	def, err := scenes.LoadScene(path)
	if err != nil {
		log.Printf("SceneTree: change to %s: %v", path, err)
		return
	}
	t.mount(def)
}

func (t *SceneTree) ChangeToLoaded(h engine.AssetHandle) error {
	def, err := t.assets.resolve(h)
	if err != nil {
		return err
	}
	t.mount(def)
	return nil
}

func (t *SceneTree) NodesAdded() []engine.NodeEvent {
	out := t.added
	t.added = nil
	return out
}

func (t *SceneTree) FindNode(path string) (engine.NodeHandle, bool) {
	if t.current == nil {
		return nil, false
	}
	n, ok := t.current.nodes[path]
	if !ok || !n.Valid() {
		return nil, false
	}
	return n, true
}

func (t *SceneTree) CurrentSceneNodes() []engine.SceneNode {
	if t.current == nil {
		return nil
	}
	out := make([]engine.SceneNode, 0, len(t.current.order))
	for i, path := range t.current.order {
		n, ok := t.current.nodes[path]
		if !ok || !n.Valid() {
			continue
		}
		def := t.current.def.Nodes[i]
		out = append(out, engine.SceneNode{Handle: n, Type: def.Type, Properties: def.Properties})
	}
	return out
}

func (t *SceneTree) Quit() {
	t.quit = true
}

func (t *SceneTree) mount(def *scenes.Scene) {
	if t.current != nil {
		for _, n := range t.current.nodes {
			n.base().freed = true
		}
	}

	inst := &sceneInstance{
		def:   def,
		nodes: make(map[string]node, len(def.Nodes)),
		order: make([]string, 0, len(def.Nodes)),
	}

	var statics []rect
	for _, dn := range def.Nodes {
		if dn.Type == "StaticBody" {
			statics = append(statics, rect{x: dn.X, y: dn.Y, w: dn.W, h: dn.H})
		}
	}
	inst.space = newPhysicsSpace(statics)

	var buttons []*buttonNode
	for _, dn := range def.Nodes {
		base := baseNode{path: dn.Path, tree: t}
		bounds := rect{x: dn.X, y: dn.Y, w: dn.W, h: dn.H}

		var n node
		switch dn.Type {
		case "StaticBody":
			n = &staticNode{baseNode: base, bounds: bounds}
		case "Player":
			n = newBodyNode(base, inst.space, bounds)
		case "Sprite":
			n = &spriteNode{baseNode: base}
		case "Gem", "Door":
			n = &areaNode{baseNode: base, bounds: bounds}
		case "Label":
			n = &labelNode{baseNode: base, pos: engine.Vec2{X: dn.X, Y: dn.Y}, text: dn.Text}
		case "Button":
			btn := &buttonNode{baseNode: base, pos: engine.Vec2{X: dn.X, Y: dn.Y}, label: dn.Text}
			buttons = append(buttons, btn)
			n = btn
		default:
			n = &plainNode{baseNode: base}
		}

		inst.nodes[dn.Path] = n
		inst.order = append(inst.order, dn.Path)
		t.added = append(t.added, engine.NodeEvent{Path: dn.Path, Type: dn.Type})
	}

	if len(buttons) > 0 {
		inst.ui = newMenuUI(def.Name, buttons, t.signals)
	}

	t.current = inst
	t.freeQueue = nil
	log.Printf("SceneTree: mounted %s (%d nodes)", def.Root, len(def.Nodes))
}

func (t *SceneTree) queueFree(path string) {
	t.freeQueue = append(t.freeQueue, path)
}

func (t *SceneTree) processFrees() {
	if t.current == nil || len(t.freeQueue) == 0 {
		t.freeQueue = nil
		return
	}
	for _, path := range t.freeQueue {
		n, ok := t.current.nodes[path]
		if !ok {
			continue
		}
		n.base().freed = true
		delete(t.current.nodes, path)
	}
	t.freeQueue = nil
}

func (t *SceneTree) update() {
	if t.current != nil && t.current.ui != nil {
		t.current.ui.Update()
	}
}

func (t *SceneTree) draw(screen *ebiten.Image) {
	if t.current == nil {
		return
	}

	staticColor := color.NRGBA{R: 0x4a, G: 0x4a, B: 0x52, A: 0xff}
	gemColor := color.NRGBA{R: 0x2e, G: 0xc4, B: 0xb6, A: 0xff}
	doorColor := color.NRGBA{R: 0x8a, G: 0x5a, B: 0x2b, A: 0xff}
	playerColor := color.NRGBA{R: 0xe8, G: 0xe8, B: 0xf0, A: 0xff}

	for i, path := range t.current.order {
		n, ok := t.current.nodes[path]
		if !ok || !n.Valid() {
			continue
		}
		switch v := n.(type) {
		case *staticNode:
			fillRect(screen, v.bounds, staticColor)
		case *areaNode:
			c := gemColor
			if t.current.def.Nodes[i].Type == "Door" {
				c = doorColor
			}
			fillRect(screen, v.bounds, c)
		case *bodyNode:
			fillRect(screen, v.bounds(), playerColor)
		case *labelNode:
			drawLabel(screen, v)
		}
	}

	if t.current.ui != nil {
		t.current.ui.Draw(screen)
	}
}

func fillRect(screen *ebiten.Image, r rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), c, false)
}
