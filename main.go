package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/critterswap/common"
	"github.com/milk9111/critterswap/prefabs"
	"github.com/milk9111/critterswap/settings"
)

func main() {
	debug := flag.Bool("debug", false, "draw colliders and controller state")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	sessionName := flag.String("session", "session.yaml", "session prefab to load")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory whose prefabs override the embedded ones")
	watch := flag.Bool("watch", false, "rebuild the session when prefabs change on disk")
	flag.Parse()

	prefabs.Dir = *prefabDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("critterswap")

	store := settings.Open("critterswap")

	var watcher *prefabs.Watcher
	if *watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("prefabs: watch %s: %v (hot reload disabled)", prefabs.Dir, err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	game, err := NewGame(*sessionName, *debug, store, watcher)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
