package systems

import (
	"errors"
	"testing"
	"time"

	cfg "github.com/splitsecond/splitsecond/config"
)

type memoryStore struct {
	items   map[string][]byte
	failing bool
}

func (m *memoryStore) LoadItem(key string) ([]byte, error) {
	if m.failing {
		return nil, errors.New("disk on fire")
	}
	return m.items[key], nil
}

func (m *memoryStore) SaveItem(key string, data []byte) error {
	if m.failing {
		return errors.New("disk on fire")
	}
	m.items[key] = data
	return nil
}

func useMemoryStore(t *testing.T) *memoryStore {
	t.Helper()
	store := &memoryStore{items: map[string][]byte{}}
	prev := saveData
	saveData = store
	t.Cleanup(func() { saveData = prev })
	return store
}

func TestRecordBest(t *testing.T) {
	tests := []struct {
		name         string
		saved        map[string]int64
		ms           int64
		wantBest     int64
		wantImproved bool
	}{
		{"first run", map[string]int64{}, 5000, 5000, true},
		{"faster", map[string]int64{"a": 5000}, 4000, 4000, true},
		{"slower", map[string]int64{"a": 5000}, 6000, 5000, false},
		{"tie keeps the old run", map[string]int64{"a": 5000}, 5000, 5000, false},
		{"zero is ignored", map[string]int64{"a": 5000}, 0, 5000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, improved := recordBest(tt.saved, "a", tt.ms)
			if best != tt.wantBest || improved != tt.wantImproved {
				t.Errorf("recordBest() = %d, %v, want %d, %v", best, improved, tt.wantBest, tt.wantImproved)
			}
			if tt.saved["a"] != tt.wantBest && tt.wantImproved {
				t.Errorf("map not updated: %v", tt.saved)
			}
		})
	}
}

func TestBestTimesPersist(t *testing.T) {
	useMemoryStore(t)

	if _, ok := BestTime("01_warmup"); ok {
		t.Fatal("best time before any run")
	}
	if best, improved := RecordBestTime("01_warmup", 42*time.Second); !improved || best != 42*time.Second {
		t.Fatalf("first record = %v, %v", best, improved)
	}
	if best, improved := RecordBestTime("01_warmup", 50*time.Second); improved || best != 42*time.Second {
		t.Fatalf("slower record = %v, %v", best, improved)
	}
	if best, ok := BestTime("01_warmup"); !ok || best != 42*time.Second {
		t.Errorf("BestTime = %v, %v", best, ok)
	}
	if _, ok := BestTime("02_rooftops"); ok {
		t.Error("unrelated level has a best time")
	}
}

func TestUserName(t *testing.T) {
	useMemoryStore(t)

	if got := LoadUserName(); got != "" {
		t.Fatalf("LoadUserName() = %q before saving", got)
	}
	if err := SaveUserName("  Ada  "); err != nil {
		t.Fatal(err)
	}
	if got := LoadUserName(); got != "Ada" {
		t.Errorf("LoadUserName() = %q, want Ada", got)
	}
}

func TestSettings(t *testing.T) {
	store := useMemoryStore(t)

	if got := LoadSettings(); got.Sensitivity != cfg.Camera.Sensitivity || got.Fullscreen {
		t.Fatalf("defaults = %+v", got)
	}
	if err := SaveSettings(&SavedSettings{Sensitivity: 0.3, Fullscreen: true}); err != nil {
		t.Fatal(err)
	}
	if got := LoadSettings(); got.Sensitivity != 0.3 || !got.Fullscreen {
		t.Errorf("LoadSettings() = %+v", got)
	}

	store.items[settingsKey] = []byte(`{"sensitivity": 9}`)
	if got := LoadSettings(); got.Sensitivity != cfg.Settings.SensitivityMax {
		t.Errorf("sensitivity not clamped: %v", got.Sensitivity)
	}

	store.items[settingsKey] = []byte(`not json`)
	if got := LoadSettings(); got.Sensitivity != cfg.Camera.Sensitivity {
		t.Errorf("corrupt settings = %+v, want defaults", got)
	}
}

func TestPersistenceFailuresFallBack(t *testing.T) {
	store := useMemoryStore(t)
	store.failing = true

	if got := LoadUserName(); got != "" {
		t.Errorf("LoadUserName() = %q", got)
	}
	if _, ok := BestTime("a"); ok {
		t.Error("BestTime reported a time from a failing store")
	}
	if err := SaveUserName("Ada"); err == nil {
		t.Error("SaveUserName() succeeded on a failing store")
	}
}

func TestNoStore(t *testing.T) {
	prev := saveData
	saveData = nil
	t.Cleanup(func() { saveData = prev })

	if err := SaveUserName("Ada"); err != nil {
		t.Errorf("SaveUserName() without a store = %v", err)
	}
	if best, improved := RecordBestTime("a", time.Second); !improved || best != time.Second {
		t.Errorf("RecordBestTime() without a store = %v, %v", best, improved)
	}
}
