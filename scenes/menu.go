package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/splitsecond/splitsecond/network"
	"github.com/splitsecond/splitsecond/shared/leveldata"
	"github.com/splitsecond/splitsecond/shared/score"
	"github.com/splitsecond/splitsecond/systems"
	"github.com/splitsecond/splitsecond/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session is what every scene shares for the lifetime of the game.
type Session struct {
	Levels []*leveldata.Level
	// Leaderboard is nil when scores are not submitted.
	Leaderboard *network.Client
}

// MenuScene displays the main menu
type MenuScene struct {
	sceneChanger SceneChanger
	session      *Session
	profileUI    *ui.ProfileUI
	once         sync.Once

	next interface{}
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, session *Session) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: session}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.profileUI.Update()

	if ms.next != nil {
		ms.sceneChanger.ChangeScene(ms.next)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.profileUI == nil {
		return
	}
	ms.profileUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)

	best := systems.LoadBestTimes()
	entries := make([]ui.LevelEntry, len(ms.session.Levels))
	for i, l := range ms.session.Levels {
		entries[i] = ui.LevelEntry{Name: l.Name}
		if t, ok := best[l.ID]; ok && t > 0 {
			entries[i].Best = score.FormatTime(msToDuration(t))
		}
	}

	ms.profileUI = ui.NewProfileUI(
		systems.LoadUserName(),
		entries,
		func(levelIndex int, name string) { ms.play(levelIndex, name) },
		func() { os.Exit(0) },
	)
}

func (ms *MenuScene) play(levelIndex int, name string) {
	if err := systems.SaveUserName(name); err != nil {
		ms.profileUI.SetStatus("Could not save your name")
	}
	ms.next = NewWorldScene(ms.sceneChanger, ms.session, levelIndex, name)
}
