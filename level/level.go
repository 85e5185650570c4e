// Package level is the data-only registry mapping level ids to scene files
// and display strings. No logic lives here.
package level

// ID identifies one of the game's levels.
type ID int

const (
	None ID = iota
	Level1
	Level2
	Level3
)

// ScenePath returns the scene file for this level.
func (id ID) ScenePath() string {
	switch id {
	case Level1:
		return "scenes/levels/level_1.yaml"
	case Level2:
		return "scenes/levels/level_2.yaml"
	case Level3:
		return "scenes/levels/level_3.yaml"
	}
	return ""
}

// DisplayName returns the label shown in the HUD.
func (id ID) DisplayName() string {
	switch id {
	case Level1:
		return "Level 1"
	case Level2:
		return "Level 2"
	case Level3:
		return "Level 3"
	}
	return ""
}

// RootPath returns the scene-tree path of the level's root node once the
// scene is mounted. The level manager waits for this node before announcing
// the level as loaded.
func (id ID) RootPath() string {
	switch id {
	case Level1:
		return "/root/Level1"
	case Level2:
		return "/root/Level2"
	case Level3:
		return "/root/Level3"
	}
	return ""
}

func (id ID) String() string {
	if s := id.DisplayName(); s != "" {
		return s
	}
	return "None"
}

// ParseID resolves a level name as used in scene files ("level_1", "Level 2",
// "Level3") to an ID.
func ParseID(s string) (ID, bool) {
	switch s {
	case "level_1", "Level 1", "Level1":
		return Level1, true
	case "level_2", "Level 2", "Level2":
		return Level2, true
	case "level_3", "Level 3", "Level3":
		return Level3, true
	}
	return None, false
}

// All lists every playable level.
func All() []ID {
	return []ID{Level1, Level2, Level3}
}

// MainMenuScenePath is the scene file for the main menu.
const MainMenuScenePath = "scenes/main_menu.yaml"
