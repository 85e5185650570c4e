package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/gemrunner/ecs/entity"
	"github.com/milk9111/gemrunner/prefabs"
)

func main() {
	watch := flag.Bool("watch", false, "reload prefab specs on change")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	flag.Parse()

	attrs := loadPlayerAttributes()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 960)
	ebiten.SetWindowTitle("gemrunner")
	if *fullscreen {
		ebiten.SetFullscreen(true)
	}

	game := NewGame(attrs)

	if *watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("prefab watcher: %v", err)
		} else {
			defer watcher.Close()
			go func() {
				for range watcher.Events {
					game.SetPlayerAttributes(loadPlayerAttributes())
					log.Printf("prefabs: reloaded player spec")
				}
			}()
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func loadPlayerAttributes() entity.PlayerAttributes {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Printf("prefabs: load player spec: %v (using defaults)", err)
		return entity.PlayerAttributes{}
	}
	return entity.PlayerAttributes{
		Speed:        spec.MoveSpeed,
		JumpVelocity: spec.JumpVelocity,
		Gravity:      spec.Gravity,
	}
}
