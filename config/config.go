package config

import (
	"image/color"
	"time"

	"github.com/ben256dev/seren/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in ascending order.
const (
	LayerWorld ecs.LayerID = iota
	LayerOverlay
)

// Packed 0xRRGGBB palette
const (
	White   uint32 = 0xD9D0DE
	Pink    uint32 = 0xBC8DA0
	Red     uint32 = 0xA22C29
	Black   uint32 = 0x0C1713
	Magenta uint32 = 0xFF00FF
	Void    uint32 = 0x000000
)

// RGB decodes a packed 0xRRGGBB value into an opaque color.
func RGB(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 0xFF,
	}
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Size  float32
	Speed float32 // pixels per frame
	Pivot gamemath.Vec2
	Color uint32

	// ClampToViewport keeps the player inside [0, viewport-size] on both axes.
	// With it off the player roams freely and the camera keeps tracking.
	ClampToViewport bool
}

// Dimensions returns the player's square size as a vector.
func (p PlayerConfig) Dimensions() gamemath.Vec2 {
	return gamemath.V(p.Size, p.Size)
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Origin       gamemath.Vec2 // normalized pivot inside the viewport
	FollowFactor float32       // How fast camera follows player (0.0-1.0)
}

// RenderConfig contains frame presentation settings
type RenderConfig struct {
	ClearColor    uint32
	GeometryColor uint32
	FrameDelay    time.Duration
	LeafSize      float32
}

// TPS converts the frame delay into ebitengine ticks per second.
func (r RenderConfig) TPS() int {
	if r.FrameDelay <= 0 {
		return 60
	}
	return int(time.Second / r.FrameDelay)
}

// AssetsConfig locates the optional resources on disk, relative to Dir.
type AssetsConfig struct {
	Dir            string
	LeafPath       string
	AshDir         string
	MaxAshSprites  int
	LevelPath      string
	MaxLevelPoints int
	TilemapPath    string
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	Overlay bool // Show the overlay from the first frame
	Color   color.RGBA
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Render RenderConfig
var Assets AssetsConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "seren",
	}

	Player = PlayerConfig{
		Size:            128,
		Speed:           10.0,
		Pivot:           gamemath.Centered,
		Color:           White,
		ClampToViewport: true,
	}

	Camera = CameraConfig{
		Origin:       gamemath.Centered,
		FollowFactor: 0.05,
	}

	Render = RenderConfig{
		ClearColor:    Black,
		GeometryColor: Pink,
		FrameDelay:    16 * time.Millisecond,
		LeafSize:      16,
	}

	Assets = AssetsConfig{
		Dir:            "res",
		LeafPath:       "leaf.png",
		AshDir:         "ash",
		MaxAshSprites:  49,
		LevelPath:      "level",
		MaxLevelPoints: 128,
		TilemapPath:    "level.tmx",
	}

	Debug = DebugConfig{
		Overlay: false,
		Color:   RGB(White),
	}
}
