package core

import (
	"fmt"
	"log"
	"os"

	"github.com/splitsecond/splitsecond/shared/leveldata"
)

// LoadLevelIDs parses every .tmx level under assetsDir/levels and returns
// their IDs in play order.
func LoadLevelIDs(assetsDir string) ([]string, error) {
	levels, err := leveldata.LoadAll(os.DirFS(assetsDir), "levels")
	if err != nil {
		return nil, fmt.Errorf("load all levels: %w", err)
	}

	ids := make([]string, 0, len(levels))
	for _, l := range levels {
		ids = append(ids, l.ID)
	}
	log.Printf("[highscore] accepting scores for %d levels: %v", len(ids), ids)
	return ids, nil
}
