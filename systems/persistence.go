package systems

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	cfg "github.com/splitsecond/splitsecond/config"
)

const (
	userNameKey  = "user_name"
	bestTimesKey = "best_times"
	settingsKey  = "settings"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Sensitivity float64 `json:"sensitivity"`
	Fullscreen  bool    `json:"fullscreen"`
}

// itemStore is the subset of *gdata.Manager the game uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var saveData itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "splitsecond",
	})
	if err != nil {
		return err
	}
	saveData = m
	return nil
}

func loadItem(key string) []byte {
	if saveData == nil {
		return nil
	}
	data, err := saveData.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return nil
	}
	return data
}

func saveItem(key string, data []byte) error {
	if saveData == nil {
		return nil
	}
	if err := saveData.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns the defaults when nothing
// was saved yet.
func LoadSettings() *SavedSettings {
	settings := &SavedSettings{Sensitivity: cfg.Camera.Sensitivity}

	data := loadItem(settingsKey)
	if len(data) == 0 {
		return settings
	}
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return &SavedSettings{Sensitivity: cfg.Camera.Sensitivity}
	}
	settings.Sensitivity = clampSensitivity(settings.Sensitivity)
	return settings
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	return saveItem(settingsKey, data)
}

// ApplySavedSettings applies loaded settings that live outside the ECS.
// Sensitivity is picked up by the camera when a level starts.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

func clampSensitivity(v float64) float64 {
	if v <= 0 {
		return cfg.Camera.Sensitivity
	}
	return min(max(v, cfg.Settings.SensitivityMin), cfg.Settings.SensitivityMax)
}

// LoadUserName returns the saved player name, or "" when none was saved.
func LoadUserName() string {
	return strings.TrimSpace(string(loadItem(userNameKey)))
}

func SaveUserName(name string) error {
	return saveItem(userNameKey, []byte(strings.TrimSpace(name)))
}

// LoadBestTimes returns the best time in milliseconds per level ID.
func LoadBestTimes() map[string]int64 {
	times := map[string]int64{}
	data := loadItem(bestTimesKey)
	if len(data) == 0 {
		return times
	}
	if err := json.Unmarshal(data, &times); err != nil {
		log.Printf("Warning: Could not parse best times: %v", err)
		return map[string]int64{}
	}
	return times
}

// BestTime returns the saved best time for a level.
func BestTime(levelID string) (time.Duration, bool) {
	ms, ok := LoadBestTimes()[levelID]
	if !ok || ms <= 0 {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}

// RecordBestTime stores elapsed if it beats the saved time for the level and
// returns the best time after the update.
func RecordBestTime(levelID string, elapsed time.Duration) (best time.Duration, improved bool) {
	times := LoadBestTimes()
	ms, improved := recordBest(times, levelID, elapsed.Milliseconds())
	if improved {
		data, err := json.Marshal(times)
		if err != nil {
			log.Printf("Warning: Could not serialize best times: %v", err)
		} else {
			_ = saveItem(bestTimesKey, data)
		}
	}
	return time.Duration(ms) * time.Millisecond, improved
}

func recordBest(times map[string]int64, levelID string, ms int64) (int64, bool) {
	if ms <= 0 {
		return times[levelID], false
	}
	prev, ok := times[levelID]
	if ok && prev > 0 && prev <= ms {
		return prev, false
	}
	times[levelID] = ms
	return ms, true
}
