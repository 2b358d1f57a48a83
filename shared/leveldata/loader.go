package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	WallLayer  = "walls"
	SpawnGroup = "PlayerSpawn"
)

// LoadArena parses a TMX file. Map pixels are divided by pixelsPerUnit to get
// world units. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string, pixelsPerUnit float64) (*Arena, error) {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth) / pixelsPerUnit
	tileD := float64(levelMap.TileHeight) / pixelsPerUnit

	arena := &Arena{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width) * tileW,
		Depth: float64(levelMap.Height) * tileD,
	}

	// Consecutive solid tiles in a row become one wall.
	for _, layer := range levelMap.Layers {
		if layer.Name != WallLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			runStart := -1
			for x := 0; x <= levelMap.Width; x++ {
				solid := x < levelMap.Width && !layer.Tiles[y*levelMap.Width+x].IsNil()
				if solid && runStart < 0 {
					runStart = x
				}
				if !solid && runStart >= 0 {
					arena.Walls = append(arena.Walls, Wall{
						X: float64(runStart) * tileW,
						Z: float64(y) * tileD,
						W: float64(x-runStart) * tileW,
						D: tileD,
					})
					runStart = -1
				}
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			arena.SpawnPoints = append(arena.SpawnPoints, SpawnPoint{
				X:     o.X / pixelsPerUnit,
				Z:     o.Y / pixelsPerUnit,
				Yaw:   o.Properties.GetFloat("yaw"),
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	sort.SliceStable(arena.SpawnPoints, func(i, j int) bool {
		return arena.SpawnPoints[i].Index < arena.SpawnPoints[j].Index
	})

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in levelsDir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, levelsDir string, pixelsPerUnit float64) (map[string]*Arena, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", levelsDir, ErrNoLevels)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		arena, err := LoadArena(fsys, path, pixelsPerUnit)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
