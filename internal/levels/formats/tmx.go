package formats

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Object group names read from Tiled maps.
const (
	GroupPlatforms = "platforms"
	GroupEnemies   = "enemies"
	GroupPowerUps  = "powerups"
)

// ParseTMX parses a Tiled map. Rectangle objects in the "platforms" group
// become platforms; objects in "enemies" and "powerups" are spawns whose
// kind is the object name, or its "kind" property when the name is empty.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func ParseTMX(fsys fs.FS, path string) (Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", path, err)
	}

	level := Level{Index: IndexFromFilename(path)}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupEnemies:
			for _, o := range og.Objects {
				level.Enemies = append(level.Enemies, Spawn{Kind: objectKind(o), X: o.X, Y: o.Y})
			}
		case GroupPowerUps:
			for _, o := range og.Objects {
				level.PowerUps = append(level.PowerUps, Spawn{Kind: objectKind(o), X: o.X, Y: o.Y})
			}
		}
	}

	if len(level.Platforms) == 0 {
		return Level{}, fmt.Errorf("TMX %s: no %q object group", path, GroupPlatforms)
	}
	return level, nil
}

func objectKind(o *tiled.Object) string {
	if o.Name != "" {
		return o.Name
	}
	return o.Properties.GetString("kind")
}
