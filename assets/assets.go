// Package assets embeds the level files shipped with the game.
package assets

import (
	"embed"
	"fmt"

	"github.com/splitsecond/splitsecond/shared/leveldata"
)

//go:embed levels/*.tmx
var assetFS embed.FS

// Levels parses every embedded level, ordered by file name.
func Levels() ([]*leveldata.Level, error) {
	levels, err := leveldata.LoadAll(assetFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("load embedded levels: %w", err)
	}
	return levels, nil
}

// LevelIDs returns the IDs of the embedded levels.
func LevelIDs() ([]string, error) {
	levels, err := Levels()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, l := range levels {
		ids[i] = l.ID
	}
	return ids, nil
}
