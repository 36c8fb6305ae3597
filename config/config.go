package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the cannon uses.
const Default ecs.LayerID = 0

// Config contains window and frame clock configuration
type Config struct {
	Width  int
	Height int
	TPS    int // ticks per second of the frame clock
	Title  string
}

// BurstConfig contains the fallback fire options used when neither the
// cannon instance nor the call supplies a value.
type BurstConfig struct {
	Angle    float64 // degrees, 270 is straight up in screen coordinates
	Amount   int
	Velocity float64 // peak launch speed in px/s
	Spread   float64 // degrees
	Gravity  float64 // px/s^2
	Decay    float64 // seconds
}

// ParticleConfig contains the sampling ranges for freshly spawned confetti.
// Ranges follow lodash semantics: integer bounds sample integers.
type ParticleConfig struct {
	Radius               [2]float64
	Diameter             [2]float64
	Tilt                 [2]float64
	TiltAngleIncremental [2]float64
	Friction             [2]float64
	VelocityFloor        float64 // minimum launch speed as a fraction of the peak
}

// FlutterConfig contains the per-frame cosmetic update constants
type FlutterConfig struct {
	DiameterPhase float64 // tiltAngle gain per unit of diameter
	DriftY        float64
	DriftX        float64
	Rotation      float64 // added to the heading every frame
}

// PhysicsConfig contains the ballistic integrator settings
type PhysicsConfig struct {
	StepsPerSecond float64 // fixed step rate used when friction is applied
	GravityAngle   float64 // degrees, 90 points down the screen
}

// GestureConfig converts a drag length into fire parameters
type GestureConfig struct {
	AmountDivisor  float64 // amount = length/AmountDivisor + AmountBase
	AmountBase     float64
	VelocityFactor float64 // velocity = length*VelocityFactor
	AngleOffset    float64 // fire opposite to the drag direction
}

// OverlayConfig contains styling for the aim vector, power circle and pointer ring.
// Widths and radii are multiplied by the device pixel ratio.
type OverlayConfig struct {
	VectorColor   color.RGBA
	VectorWidth   float64
	PowerColor    color.RGBA
	PowerWidth    float64
	PowerDivisor  float64 // power radius = length/PowerDivisor
	PointerColor  color.RGBA
	PointerWidth  float64
	PointerRadius float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled   bool // log spawn diagnostics and show the HUD
	HUDX      int
	HUDY      int
	HUDColor  color.RGBA
	FontSize  float64
	LineSpace int
}

var C *Config
var Burst BurstConfig
var Particle ParticleConfig
var Flutter FlutterConfig
var Physics PhysicsConfig
var Gesture GestureConfig
var Overlay OverlayConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Pink     = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	DarkGrey = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	Yellow   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 640,
		TPS:    60,
		Title:  "Confetti Cannon",
	}

	Burst = BurstConfig{
		Angle:    270,
		Amount:   100,
		Velocity: 2000,
		Spread:   60,
		Gravity:  1200,
		Decay:    4,
	}

	Particle = ParticleConfig{
		Radius:               [2]float64{4, 6},
		Diameter:             [2]float64{15, 25},
		Tilt:                 [2]float64{-10, 10},
		TiltAngleIncremental: [2]float64{0.05, 0.07},
		Friction:             [2]float64{0.1, 0.25},
		VelocityFloor:        0.25,
	}

	Flutter = FlutterConfig{
		DiameterPhase: 0.0005,
		DriftY:        2,
		DriftX:        0.5,
		Rotation:      0.01,
	}

	Physics = PhysicsConfig{
		StepsPerSecond: 60,
		GravityAngle:   90,
	}

	Gesture = GestureConfig{
		AmountDivisor:  5,
		AmountBase:     5,
		VelocityFactor: 10,
		AngleOffset:    180,
	}

	Overlay = OverlayConfig{
		VectorColor:   Pink,
		VectorWidth:   2,
		PowerColor:    DarkGrey,
		PowerWidth:    2,
		PowerDivisor:  20,
		PointerColor:  White,
		PointerWidth:  2,
		PointerRadius: 15,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled:   false,
		HUDX:      10,
		HUDY:      20,
		HUDColor:  Yellow,
		FontSize:  12,
		LineSpace: 16,
	}
}
