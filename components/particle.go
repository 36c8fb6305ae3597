package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ParticleID identifies a confetti particle for its whole lifetime.
type ParticleID uint64

// ParticleData is a single confetti ribbon. X, Y, Radius and Diameter are in
// device pixels; Angle is written in degrees by the ballistic integrator and
// read as radians by the flutter update.
type ParticleData struct {
	ID ParticleID

	Radius   float64
	Diameter float64

	// Flutter state. TiltAngleIncremental is fixed at spawn.
	Tilt                 float64
	TiltAngle            float64
	TiltAngleIncremental float64

	Color color.RGBA

	X, Y     float64
	Angle    float64
	Velocity float64

	// Fixed for the particle's lifetime
	Gravity  float64
	Friction float64
}

var Particle = donburi.NewComponentType[ParticleData]()
