package core

import (
	"fmt"
	"log"
	"os"

	cfg "github.com/automoto/lazertag/config"
	"github.com/automoto/lazertag/shared/leveldata"
)

// LoadArena loads the .tmx levels under assetsDir/levels and returns the one
// called name, or the first in name order when name is empty.
func LoadArena(assetsDir, name string) (*leveldata.Arena, error) {
	arenas, names, err := leveldata.LoadAllArenas(os.DirFS(assetsDir), "levels", cfg.Arena.PixelsPerUnit)
	if err != nil {
		return nil, fmt.Errorf("load all levels: %w", err)
	}

	if name == "" {
		name = names[0]
	}
	arena, ok := arenas[name]
	if !ok {
		return nil, fmt.Errorf("level %q not found (have %v)", name, names)
	}

	log.Printf("[server] loaded level %s: %d walls, %d spawn points, %vx%v",
		arena.Name, len(arena.Walls), len(arena.SpawnPoints), arena.Width, arena.Depth)
	return arena, nil
}

// DefaultArena is the built-in open arena sized from the arena config.
func DefaultArena() *leveldata.Arena {
	return leveldata.OpenArena(float64(cfg.Arena.Width), float64(cfg.Arena.Depth), cfg.Arena.WallThickness)
}
