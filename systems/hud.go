package systems

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/splitsecond/splitsecond/components"
	cfg "github.com/splitsecond/splitsecond/config"
	"github.com/splitsecond/splitsecond/fonts"
	"github.com/splitsecond/splitsecond/shared/grapple"
	"github.com/splitsecond/splitsecond/shared/movement"
	"github.com/splitsecond/splitsecond/shared/score"
	"github.com/splitsecond/splitsecond/tags"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudPanelWidth = 190
	crosshairSize = 6
)

// hudState is everything the HUD prints.
type hudState struct {
	Elapsed time.Duration
	Best    time.Duration
	Name    string
	Move    movement.Snapshot
	Grapple grapple.State
	FOV     float64
}

// DrawHUD renders the run timer and movement readout in the top-left corner
// and a crosshair in the middle of the screen.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	state := hudState{
		Elapsed: components.Timer.Get(playerEntry).Elapsed,
		Move:    player.Last,
		Grapple: components.Physics.Get(playerEntry).Grapple.State(),
		FOV:     cfg.Camera.BaseFOV,
	}
	if rig := cameraRig(e); rig != nil {
		state.FOV = rig.FOV()
	}
	if entry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(entry)
		state.Best = level.Best
		state.Name = level.PlayerName
	}

	lines := hudLines(state)
	margin := float32(cfg.HUD.Margin)
	panelHeight := float32(cfg.HUD.LineGap)*float32(len(lines)) + margin
	vector.DrawFilledRect(screen, margin, margin, hudPanelWidth, panelHeight, cfg.HUD.BgColor, false)

	face := fonts.Regular.Get()
	for i, line := range lines {
		y := cfg.HUD.Margin + cfg.HUD.LineGap*float64(i+1)
		text.Draw(screen, line, face, int(cfg.HUD.Margin*1.5), int(y), cfg.HUD.TextColor)
	}

	drawCrosshair(screen)
}

func hudLines(s hudState) []string {
	best := "--:--:---"
	if s.Best > 0 {
		best = score.FormatTime(s.Best)
	}
	lines := []string{
		score.FormatTime(s.Elapsed),
		"Best  " + best,
		fmt.Sprintf("Speed %.1f", s.Move.Speed),
		fmt.Sprintf("Mode  %s", s.Move.Mode),
		fmt.Sprintf("FOV   %.0f", s.FOV),
	}
	if s.Grapple != grapple.Idle {
		lines = append(lines, "Hook  "+s.Grapple.String())
	}
	if s.Name != "" {
		lines = append(lines, s.Name)
	}
	return lines
}

func drawCrosshair(screen *ebiten.Image) {
	cx := float32(screen.Bounds().Dx()) / 2
	cy := float32(screen.Bounds().Dy()) / 2
	vector.StrokeLine(screen, cx-crosshairSize, cy, cx+crosshairSize, cy, 1, cfg.HUD.Crosshair, false)
	vector.StrokeLine(screen, cx, cy-crosshairSize, cx, cy+crosshairSize, 1, cfg.HUD.Crosshair, false)
}
