package systems

import (
	"math"

	"github.com/automoto/confetti-cannon/components"
	cfg "github.com/automoto/confetti-cannon/config"
)

// Flutter applies the per-frame cosmetic update: the tilt oscillation that
// makes a ribbon look like it is spinning, plus a small drift. Angle is the
// same field the ballistic tween writes and is read here as radians.
func Flutter(p *components.ParticleData) {
	p.TiltAngle += cfg.Flutter.DiameterPhase * p.Diameter
	p.TiltAngle += p.TiltAngleIncremental
	p.Tilt = math.Sin(p.TiltAngle-p.Radius/2) * p.Radius * 2
	p.Y += math.Sin(p.Angle+p.Radius/2) * cfg.Flutter.DriftY
	p.X += math.Cos(p.Angle) * cfg.Flutter.DriftX
	p.Angle += cfg.Flutter.Rotation
}
