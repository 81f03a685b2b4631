package config

import (
	"image/color"
	"math"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; every entity and renderer lives on it.
const Default ecs.LayerID = 0

// Config holds the overlay surface configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// OverlayConfig contains the frame loop timings and interaction geometry
type OverlayConfig struct {
	// Character placement and hitbox
	CenterX   float64
	CenterY   float64
	HitRadius float64 // Pointer must be strictly closer than this

	// Hover zoom
	HoverScale  float64
	NormalScale float64

	// Timers
	BubbleDuration  time.Duration // Bubble stays visible while elapsed <= this
	RepaintInterval time.Duration // Next-wakeup delay declared every frame
	WelcomeDelay    float64       // Seconds of animation time before the welcome bubble

	// Messages shown in the bubble, cycled on click
	Messages []string
}

// CharacterConfig contains stickman drawing proportions (all multiplied by scale)
type CharacterConfig struct {
	Color      color.RGBA
	Outline    color.RGBA
	EyeColor   color.RGBA
	PupilColor color.RGBA

	LimbWidth    float32
	OutlineWidth float32
	ShoeWidth    float32

	// Bounce
	IdleBounceFreq    float64 // radians per second
	IdleBounceAmp     float64
	TalkingBounceFreq float64
	TalkingBounceAmp  float64

	// Head
	HeadOffsetY  float64
	HeadRadius   float64
	EyeOffsetX   float64
	EyeOffsetY   float64
	EyeRadius    float64
	PupilOffsetX float64
	PupilRadius  float64
	SmileOffsetY float64
	SmileWidth   float64
	SmileDepth   float64
	SmileSamples int // Points on the smile curve; segments = samples-1

	// Body and limbs
	BodyTopY    float64
	BodyBottomY float64
	ShoulderY   float64
	ArmReachX   float64
	ArmDropY    float64
	FootX       float64
	FootY       float64
	ShoeLength  float64
}

// BubbleConfig contains speech bubble geometry and colors
type BubbleConfig struct {
	Width        float64
	Height       float64
	CornerRadius float64
	CenterY      float64
	PointerHalf  float64 // Half width of the pointer triangle base
	PointerDepth float64
	FillColor    color.NRGBA
	BorderColor  color.RGBA
	BorderWidth  float32
	TextColor    color.RGBA
	FontSize     float64
}

// HintConfig contains the fading startup hint
type HintConfig struct {
	Text     string
	X, Y     float64
	Duration float64 // Seconds until fully transparent
	FontSize float64
	Color    color.NRGBA // Alpha is replaced by the fade value
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled     bool // Draw hitbox ring, bounds and state line
	HitboxColor color.RGBA
	BoundsColor color.RGBA
	StatusColor color.RGBA
	StatusX     float64 // Centre of the state line
	StatusY     float64
}

// PersistenceConfig controls the gdata-backed window state
type PersistenceConfig struct {
	Enabled bool
	AppName string
	ItemKey string
}

// Global configuration instances
var C *Config
var Overlay OverlayConfig
var Character CharacterConfig
var Bubble BubbleConfig
var Hint HintConfig
var Debug DebugConfig
var Persistence PersistenceConfig

// Shared RGBA color constants
var (
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Charcoal = color.RGBA{R: 51, G: 51, B: 51, A: 255}
	Cyan     = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta  = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  300,
		Height: 400,
		Title:  "Deskling Character",
	}

	Overlay = OverlayConfig{
		CenterX:   150,
		CenterY:   250,
		HitRadius: 60,

		HoverScale:  1.1,
		NormalScale: 1.0,

		BubbleDuration:  3 * time.Second,
		RepaintInterval: 16 * time.Millisecond, // ~60 FPS
		WelcomeDelay:    0.5,

		Messages: []string{
			"Hi there!",
			"I'm Deskling, your desktop buddy!",
			"Drag me anywhere you like!",
			"Click me again for another message!",
			"I can show text in speech bubbles!",
			"Having fun yet?",
			"I'm a simple stickman for now!",
			"This is the MVP demo in Go!",
			"More features coming soon!",
			"Built with Ebitengine and Go!",
		},
	}

	Character = CharacterConfig{
		Color:      Charcoal,
		Outline:    Black,
		EyeColor:   White,
		PupilColor: Black,

		LimbWidth:    4,
		OutlineWidth: 2,
		ShoeWidth:    3,

		IdleBounceFreq:    math.Pi,
		IdleBounceAmp:     10,
		TalkingBounceFreq: 12,
		TalkingBounceAmp:  5,

		HeadOffsetY:  -60,
		HeadRadius:   20,
		EyeOffsetX:   8,
		EyeOffsetY:   -2,
		EyeRadius:    3,
		PupilOffsetX: 1,
		PupilRadius:  1.5,
		SmileOffsetY: 5,
		SmileWidth:   40,
		SmileDepth:   5,
		SmileSamples: 20,

		BodyTopY:    -40,
		BodyBottomY: 10,
		ShoulderY:   -25,
		ArmReachX:   25,
		ArmDropY:    20,
		FootX:       20,
		FootY:       50,
		ShoeLength:  10,
	}

	Bubble = BubbleConfig{
		Width:        250,
		Height:       60,
		CornerRadius: 20,
		CenterY:      60,
		PointerHalf:  15,
		PointerDepth: 15,
		FillColor:    color.NRGBA{R: 255, G: 255, B: 255, A: 242},
		BorderColor:  Charcoal,
		BorderWidth:  2,
		TextColor:    Charcoal,
		FontSize:     14,
	}

	Hint = HintConfig{
		Text:     "Drag me around!",
		X:        150,
		Y:        380,
		Duration: 3.0,
		FontSize: 11,
		Color:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled:     false,
		HitboxColor: Magenta,
		BoundsColor: Cyan,
		StatusColor: Magenta,
		StatusX:     150,
		StatusY:     12,
	}

	Persistence = PersistenceConfig{
		Enabled: true,
		AppName: "deskling",
		ItemKey: "window",
	}
}
