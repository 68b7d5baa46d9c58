package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/splitsecond/splitsecond/components"
	cfg "github.com/splitsecond/splitsecond/config"
	"github.com/splitsecond/splitsecond/fonts"
	"github.com/splitsecond/splitsecond/network"
	"github.com/splitsecond/splitsecond/shared/leveldata"
	"github.com/splitsecond/splitsecond/shared/score"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewUpdateLevelComplete returns the system that waits on the level complete
// overlay. onContinue runs when the player confirms.
func NewUpdateLevelComplete(onContinue func()) ecs.System {
	return func(e *ecs.ECS) {
		levelComplete := GetOrCreateLevelComplete(e)
		if !levelComplete.IsComplete {
			return
		}

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuSelect).JustPressed && onContinue != nil {
			onContinue()
		}
	}
}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.LevelComplete.OverlayColor,
		false,
	)

	// Draw title
	titleFont := fonts.Title.Get()
	title := cfg.LevelComplete.Title
	titleX := centerTextX(title, titleFont, width)
	text.Draw(screen, title, titleFont, titleX, int(cfg.LevelComplete.TitleY), cfg.LevelComplete.TitleColor)

	boldFont := fonts.Bold.Get()
	msg := "Time " + score.FormatTime(levelComplete.FinalTime)
	text.Draw(screen, msg, boldFont, centerTextX(msg, boldFont, width), int(cfg.LevelComplete.TimeY), cfg.LevelComplete.TextColor)

	best := bestLine(levelComplete)
	text.Draw(screen, best, boldFont, centerTextX(best, boldFont, width), int(cfg.LevelComplete.TimeY+cfg.LevelComplete.BoardLineGap), cfg.LevelComplete.BestColor)

	regular := fonts.Regular.Get()
	for i, line := range boardLines(levelComplete.Board) {
		y := cfg.LevelComplete.BoardY + float64(i)*cfg.LevelComplete.BoardLineGap
		text.Draw(screen, line, regular, centerTextX(line, regular, width), int(y), cfg.LevelComplete.TextColor)
	}

	// Draw continue hint
	hintFont := fonts.Small.Get()
	input := getOrCreateInput(e)
	hint := getLevelCompleteHint(input.LastInputMethod, isLastLevel(e))
	hintX := centerTextX(hint, hintFont, width)
	text.Draw(screen, hint, hintFont, hintX, int(cfg.LevelComplete.HintY), cfg.LevelComplete.HintColor)
}

func bestLine(lc *components.LevelCompleteData) string {
	if lc.NewBest {
		return "New best!"
	}
	return "Best " + score.FormatTime(lc.Best)
}

// boardLines describes the leaderboard, one line per score or a status line.
func boardLines(board *network.Board) []string {
	if board == nil {
		return nil
	}
	state, scores, _ := board.Result()
	switch state {
	case network.StateSubmitting:
		return []string{"Submitting score..."}
	case network.StateFetching:
		return []string{"Loading leaderboard..."}
	case network.StateError:
		return []string{"Leaderboard unavailable"}
	case network.StateDone:
		if len(scores) == 0 {
			return []string{"No scores yet"}
		}
		lines := make([]string, 0, len(scores)+1)
		lines = append(lines, "Top times")
		for i, s := range scores {
			lines = append(lines, fmt.Sprintf("%d. %s  %s", i+1, s.Username, score.FormatTime(s.Duration())))
		}
		return lines
	}
	return nil
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}

// getLevelCompleteHint returns the appropriate hint for level complete screen
func getLevelCompleteHint(method components.InputMethod, last bool) string {
	next := "continue"
	if last {
		next = "return to the menu"
	}
	switch method {
	case components.InputPlayStation:
		return "Press Cross to " + next
	case components.InputXbox:
		return "Press A to " + next
	}
	if last {
		return cfg.LevelComplete.LastHint
	}
	return cfg.LevelComplete.NextHint
}

func isLastLevel(e *ecs.ECS) bool {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return true
	}
	level := components.Level.Get(entry)
	return leveldata.NextIndex(level.Levels, level.LevelIndex) < 0
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.LevelComplete))
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	levelComplete := GetOrCreateLevelComplete(e)
	return levelComplete.IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or level is complete
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithLevelCompleteCheck(system))
}
