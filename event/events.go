package event

import (
	"github.com/milk9111/gemrunner/engine"
	"github.com/milk9111/gemrunner/level"
)

// PlayerInput is the player's polled input state for one tick. Exactly one is
// published per tick while the player body is valid, including all-neutral
// ticks, so the movement system can keep decelerating on released keys.
type PlayerInput struct {
	Direction   float64
	JumpPressed bool
	OnFloor     bool
}

// PlayerMovement is the movement outcome consumed by the animation system.
type PlayerMovement struct {
	Moving     bool
	OnFloor    bool
	FacingLeft bool
}

// GemCollected is published once per collected gem.
type GemCollected struct {
	Player uint64
	Gem    uint64
}

// Sfx identifies a one-shot sound effect.
type Sfx int

const (
	SfxPlayerJump Sfx = iota
	SfxGemCollected
)

// HudUpdate requests a HUD refresh with the new gem total.
type HudUpdate struct {
	Gems int64
}

// LoadLevel requests loading a level. Duplicate requests are allowed; the
// most recent one wins.
type LoadLevel struct {
	Level level.ID
}

// LevelLoaded announces that a level's scene root has been confirmed in the
// scene tree. Consumers that need level-local node handles wait for this, not
// for LoadLevel.
type LevelLoaded struct {
	Level level.ID
}

// ResetLevel requests a reset of the current level.
type ResetLevel struct{}

// ReturnToMenu requests leaving gameplay for the main menu.
type ReturnToMenu struct{}

// SceneOpKind discriminates scene operations.
type SceneOpKind int

const (
	SceneOpReload SceneOpKind = iota
	SceneOpChangeToPath
	SceneOpChangeToLoaded
)

// SceneOp is a queued scene-tree mutation. All scene mutations funnel through
// the scene dispatcher so no two systems touch the tree in the same tick.
type SceneOp struct {
	Kind  SceneOpKind
	Path  string
	Asset engine.AssetHandle
}

// ReloadScene builds a reload-current-scene operation.
func ReloadScene() SceneOp {
	return SceneOp{Kind: SceneOpReload}
}

// ChangeScenePath builds a change-to-file operation.
func ChangeScenePath(path string) SceneOp {
	return SceneOp{Kind: SceneOpChangeToPath, Path: path}
}

// ChangeSceneLoaded builds a change-to-loaded-asset operation.
func ChangeSceneLoaded(h engine.AssetHandle) SceneOp {
	return SceneOp{Kind: SceneOpChangeToLoaded, Asset: h}
}

// Bus collects every queue in the game. One writer stage per queue per tick
// by convention.
type Bus struct {
	PlayerInput    Queue[PlayerInput]
	PlayerMovement Queue[PlayerMovement]
	GemCollected   Queue[GemCollected]
	Sfx            Queue[Sfx]
	HudUpdate      Queue[HudUpdate]
	LoadLevel      Queue[LoadLevel]
	LevelLoaded    Queue[LevelLoaded]
	ResetLevel     Queue[ResetLevel]
	ReturnToMenu   Queue[ReturnToMenu]
	SceneOps       Queue[SceneOp]
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Flush clears every queue. Called once at the end of each tick.
func (b *Bus) Flush() {
	if b == nil {
		return
	}
	b.PlayerInput.Clear()
	b.PlayerMovement.Clear()
	b.GemCollected.Clear()
	b.Sfx.Clear()
	b.HudUpdate.Clear()
	b.LoadLevel.Clear()
	b.LevelLoaded.Clear()
	b.ResetLevel.Clear()
	b.ReturnToMenu.Clear()
	b.SceneOps.Clear()
}
