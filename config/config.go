package config

import (
	"image/color"
	"os"

	"github.com/splitsecond/splitsecond/shared/followcam"
	"github.com/splitsecond/splitsecond/shared/grapple"
	"github.com/splitsecond/splitsecond/shared/movement"
)

// Type aliases so game code can keep reading tuning from config.
type MovementConfig = movement.Config
type GrappleConfig = grapple.Config
type CameraConfig = followcam.Config

// PlayerConfig contains the player body dimensions. Heights come from the
// movement tuning.
type PlayerConfig struct {
	Radius     float64
	StepHeight float64
	// MaxDeltaTime caps a single tick so a long frame cannot tunnel the body.
	MaxDeltaTime float64
}

type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
}

type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
	Subtitle        string
	// DefaultName is used when the name field is left blank.
	DefaultName string
}

type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	BestColor    color.RGBA
	HintColor    color.RGBA
	TitleY       float64
	TimeY        float64
	BoardY       float64
	BoardLineGap float64
	HintY        float64
	Title        string
	NextHint     string
	LastHint     string
}

type HUDConfig struct {
	Margin    float64
	LineGap   float64
	TextColor color.RGBA
	BgColor   color.RGBA
	Crosshair color.RGBA
}

// RenderConfig controls the top-down view.
type RenderConfig struct {
	// PixelsPerUnit is the zoom at the base field of view.
	PixelsPerUnit float64
	// HeightRange maps terrain tops onto the low..high color ramp.
	HeightRange float64

	Background   color.RGBA
	TerrainLow   color.RGBA
	TerrainHigh  color.RGBA
	Wall         color.RGBA
	GrapplePoint color.RGBA
	FinishLine   color.RGBA
	Platform     color.RGBA
	Player       color.RGBA
	PlayerSlide  color.RGBA
	Tether       color.RGBA
	Heading      color.RGBA
}

type LeaderboardConfig struct {
	// BaseURL of the score server. Empty disables the leaderboard.
	BaseURL string
	Limit   int
}

// SettingsConfig bounds the values the pause menu can change.
type SettingsConfig struct {
	SensitivityMin  float64
	SensitivityMax  float64
	SensitivityStep float64
}

type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the first level
}

type Config struct {
	Width  int
	Height int
}

var C *Config
var Player PlayerConfig
var Movement MovementConfig
var Grapple GrappleConfig
var Camera CameraConfig
var Pause PauseConfig
var Menu MenuConfig
var LevelComplete LevelCompleteConfig
var HUD HUDConfig
var Render RenderConfig
var Leaderboard LeaderboardConfig
var Settings SettingsConfig
var Debug DebugConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Gray         = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// LeaderboardURLEnv overrides Leaderboard.BaseURL when set.
const LeaderboardURLEnv = "SPLITSECOND_API"

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Player = PlayerConfig{
		Radius:       0.4,
		StepHeight:   0.35,
		MaxDeltaTime: 0.1,
	}

	Movement = movement.DefaultConfig()
	Grapple = grapple.DefaultConfig()
	Camera = followcam.DefaultConfig()

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 20, B: 35, A: 255},
		TitleColor:      Orange,
		TextColor:       White,
		Title:           "SPLIT SECOND",
		Subtitle:        "Run. Slide. Grapple. Beat the clock.",
		DefaultName:     "Runner",
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightGreen,
		TextColor:    White,
		BestColor:    Yellow,
		HintColor:    Gray,
		TitleY:       110,
		TimeY:        170,
		BoardY:       250,
		BoardLineGap: 26,
		HintY:        470,
		Title:        "Level Complete!",
		NextHint:     "Press ENTER for the next level",
		LastHint:     "Press ENTER to return to the menu",
	}

	HUD = HUDConfig{
		Margin:    12,
		LineGap:   18,
		TextColor: White,
		BgColor:   color.RGBA{R: 0, G: 0, B: 0, A: 140},
		Crosshair: color.RGBA{R: 255, G: 255, B: 255, A: 200},
	}

	Render = RenderConfig{
		PixelsPerUnit: 18,
		HeightRange:   8,
		Background:    color.RGBA{R: 8, G: 10, B: 18, A: 255},
		TerrainLow:    color.RGBA{R: 40, G: 55, B: 80, A: 255},
		TerrainHigh:   color.RGBA{R: 150, G: 175, B: 205, A: 255},
		Wall:          color.RGBA{R: 200, G: 90, B: 60, A: 255},
		GrapplePoint:  color.RGBA{R: 80, G: 220, B: 255, A: 255},
		FinishLine:    color.RGBA{R: 60, G: 230, B: 90, A: 160},
		Platform:      color.RGBA{R: 210, G: 190, B: 90, A: 255},
		Player:        BrightOrange,
		PlayerSlide:   Yellow,
		Tether:        LightBlue,
		Heading:       White,
	}

	Leaderboard = LeaderboardConfig{
		BaseURL: "http://localhost:8080",
		Limit:   3,
	}
	if url, ok := os.LookupEnv(LeaderboardURLEnv); ok {
		Leaderboard.BaseURL = url
	}

	Settings = SettingsConfig{
		SensitivityMin:  0.02,
		SensitivityMax:  0.5,
		SensitivityStep: 0.02,
	}
}
