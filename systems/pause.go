package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/splitsecond/splitsecond/components"
	cfg "github.com/splitsecond/splitsecond/config"
	"github.com/splitsecond/splitsecond/fonts"
	"github.com/yohamta/donburi/ecs"
)

const pauseOptionCount = int(components.MenuExit) + 1

// NewUpdatePause returns the system that handles pause toggle and menu
// navigation. It runs after UpdateInput and before the gameplay systems.
func NewUpdatePause(onRestart, onQuit func()) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		input := getOrCreateInput(e)

		if IsLevelComplete(e) {
			if pause.IsPaused {
				setPaused(pause, false)
			}
			return
		}

		if GetAction(input, cfg.ActionPause).JustPressed {
			setPaused(pause, !pause.IsPaused)
		}

		// Only process menu input while paused
		if !pause.IsPaused {
			return
		}

		// Navigate menu with wrap-around using modulo arithmetic
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) - 1 + pauseOptionCount) % pauseOptionCount,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) + 1) % pauseOptionCount,
			)
		}

		if pause.SelectedOption == components.MenuSensitivity {
			step := 0.0
			if GetAction(input, cfg.ActionMenuLeft).JustPressed {
				step -= cfg.Settings.SensitivityStep
			}
			if GetAction(input, cfg.ActionMenuRight).JustPressed {
				step += cfg.Settings.SensitivityStep
			}
			if step != 0 {
				changeSensitivity(e, step)
			}
		}

		if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}
		switch pause.SelectedOption {
		case components.MenuResume:
			setPaused(pause, false)
		case components.MenuRestart:
			setPaused(pause, false)
			if onRestart != nil {
				onRestart()
			}
		case components.MenuExit:
			setPaused(pause, false)
			if onQuit != nil {
				onQuit()
			}
		}
	}
}

// setPaused flips the pause flag and hands the cursor back to the OS while
// the menu is open.
func setPaused(pause *components.PauseData, paused bool) {
	pause.IsPaused = paused
	if paused {
		pause.SelectedOption = components.MenuResume
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}

func changeSensitivity(e *ecs.ECS, step float64) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	SetSensitivity(e, components.Camera.Get(entry).Sensitivity+step)

	settings := LoadSettings()
	settings.Sensitivity = components.Camera.Get(entry).Sensitivity
	_ = SaveSettings(settings)
}

// pauseOptionLabel is the menu text for an option.
func pauseOptionLabel(option components.PauseMenuOption, sensitivity float64) string {
	switch option {
	case components.MenuResume:
		return "Resume"
	case components.MenuSensitivity:
		return fmt.Sprintf("< Sensitivity %.2f >", sensitivity)
	case components.MenuRestart:
		return "Restart Level"
	case components.MenuExit:
		return "Quit to Menu"
	}
	return ""
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	sensitivity := cfg.Camera.Sensitivity
	if entry, ok := components.Camera.First(e.World); ok {
		sensitivity = components.Camera.Get(entry).Sensitivity
	}

	// Calculate menu positioning
	totalMenuHeight := float64(pauseOptionCount) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Bold.Get()

	for i := 0; i < pauseOptionCount; i++ {
		option := components.PauseMenuOption(i)
		label := pauseOptionLabel(option, sensitivity)
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		// Determine color based on selection
		textColor := cfg.Pause.TextColorNormal
		if option == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		x := centerTextX(label, fontFace, width)
		text.Draw(screen, label, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(e)
	hint := getPauseHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	hintX := centerTextX(hint, hintFont, width)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Left/Right: Adjust   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
