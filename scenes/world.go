package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/splitsecond/splitsecond/components"
	cfg "github.com/splitsecond/splitsecond/config"
	"github.com/splitsecond/splitsecond/shared/leveldata"
	"github.com/splitsecond/splitsecond/systems"
	"github.com/splitsecond/splitsecond/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene plays one level.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	levelIndex   int
	playerName   string
	once         sync.Once

	next interface{}
}

// NewWorldScene creates the scene for session.Levels[levelIndex]. Scores are
// submitted under playerName.
func NewWorldScene(sc SceneChanger, session *Session, levelIndex int, playerName string) *WorldScene {
	return &WorldScene{
		sceneChanger: sc,
		session:      session,
		levelIndex:   levelIndex,
		playerName:   playerName,
	}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if ws.next != nil {
		ws.sceneChanger.ChangeScene(ws.next)
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdatePause(
		func() { systems.RestartPlayer(ws.ecs) },
		ws.toMenu,
	))

	// Game systems wrapped with pause and level complete checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLook))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlatforms))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTimer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFinishLine))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	ecs.AddSystem(systems.NewUpdateLevelComplete(ws.continueAfterLevel))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawLevelComplete)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	ws.ecs = ecs

	// Create the level entity and load level data FIRST.
	levelEntry := factory.CreateLevelAtIndex(ws.ecs, ws.session.Levels, ws.levelIndex)
	levelData := components.Level.Get(levelEntry)
	ws.levelIndex = levelData.LevelIndex
	levelData.PlayerName = ws.playerName
	levelData.Leaderboard = ws.session.Leaderboard
	if best, ok := systems.BestTime(levelData.CurrentLevel.ID); ok {
		levelData.Best = best
	}
	level := levelData.CurrentLevel

	spaceEntry := factory.CreateSpace(ws.ecs, level)
	space := components.Space.Get(spaceEntry).Space

	camera := factory.CreateCamera(ws.ecs, level.Spawn, level.SpawnYaw)
	systems.SetSensitivity(ws.ecs, systems.LoadSettings().Sensitivity)

	factory.CreatePlayer(ws.ecs, space, level, components.Camera.Get(camera).Rig)

	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}

func (ws *WorldScene) toMenu() {
	ws.next = NewMenuScene(ws.sceneChanger, ws.session)
}

// continueAfterLevel moves on to the level named by Next, or back to the menu
// after the last one.
func (ws *WorldScene) continueAfterLevel() {
	next := leveldata.NextIndex(ws.session.Levels, ws.levelIndex)
	if next < 0 {
		ws.toMenu()
		return
	}
	ws.next = NewWorldScene(ws.sceneChanger, ws.session, next, ws.playerName)
}

func msToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
