package leveldata

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// DefaultSpawn is used when a map has no usable spawn object.
var DefaultSpawn = SpawnPoint{X: 400, Y: 1300}

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// the embedded assets or an os.DirFS.
//
// A missing spawn or collision layer is not an error: the level falls back
// to DefaultSpawn and no colliders, and a warning is logged.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return FromMap(levelMap, NameFromPath(tmxPath)), nil
}

// NameFromPath is the level name for a TMX path: its base name without the
// .tmx extension.
func NameFromPath(tmxPath string) string {
	return strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
}

// FromMap extracts level data from an already parsed map.
func FromMap(levelMap *tiled.Map, name string) *Level {
	level := &Level{
		Name:       name,
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		level.TileLayers = append(level.TileLayers, layer.Name)
	}

	level.Spawn, level.SpawnFound = findSpawn(levelMap, name)
	level.Colliders = findColliders(levelMap)
	level.CollisionFound = len(level.Colliders) > 0
	if !level.CollisionFound {
		log.Printf("Warning: level %s has no objects in the %q layer, skipping collision volumes", name, CollisionLayer)
	}

	return level
}

func objectGroup(levelMap *tiled.Map, name string) *tiled.ObjectGroup {
	for _, og := range levelMap.ObjectGroups {
		if og.Name == name {
			return og
		}
	}
	return nil
}

func findSpawn(levelMap *tiled.Map, name string) (SpawnPoint, bool) {
	og := objectGroup(levelMap, SpawnLayer)
	if og == nil {
		log.Printf("Warning: level %s has no %q layer, using default spawn (%.0f, %.0f)",
			name, SpawnLayer, DefaultSpawn.X, DefaultSpawn.Y)
		return DefaultSpawn, false
	}
	for _, o := range og.Objects {
		if o.Name == SpawnObject {
			return SpawnPoint{X: o.X, Y: o.Y}, true
		}
	}
	log.Printf("Warning: level %s has no %q object in the %q layer, using default spawn (%.0f, %.0f)",
		name, SpawnObject, SpawnLayer, DefaultSpawn.X, DefaultSpawn.Y)
	return DefaultSpawn, false
}

func findColliders(levelMap *tiled.Map) []CollisionRect {
	og := objectGroup(levelMap, CollisionLayer)
	if og == nil {
		return nil
	}
	rects := make([]CollisionRect, 0, len(og.Objects))
	for _, o := range og.Objects {
		if o.Width <= 0 || o.Height <= 0 {
			continue
		}
		rects = append(rects, CollisionRect{
			X:    o.X,
			Y:    o.Y,
			W:    o.Width,
			H:    o.Height,
			Name: o.Name,
		})
	}
	return rects
}

// LoadAll discovers all .tmx files in levelsDir within fsys and loads each.
// It returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
