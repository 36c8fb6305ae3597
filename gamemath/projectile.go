package gamemath

import "math"

// Projectile integrates a 2D ballistic trajectory with constant acceleration.
//
// Without friction the position is the closed-form solution. With friction the
// motion is stepped at a fixed rate: every step adds the acceleration to the
// velocity, scales the velocity by (1 - friction), then moves. Positions between
// whole steps are extrapolated from the current velocity.
//
// At must be called with non-decreasing times.
type Projectile struct {
	startX, startY float64
	stepsPerSecond float64
	retain         float64

	// per second, used by the closed form
	vx0, vy0 float64
	ax, ay   float64
	t        float64

	// per step, used by the stepped form
	x, y     float64
	svx, svy float64
	sax, say float64
	step     int
}

// NewProjectile starts a projectile at (x, y) moving at velocity px/s along
// angle degrees, accelerated by accel px/s^2 along accelAngle degrees.
func NewProjectile(x, y, velocity, angle, accel, accelAngle, friction, stepsPerSecond float64) *Projectile {
	rad := DegToRad(angle)
	arad := DegToRad(accelAngle)
	p := &Projectile{
		startX:         x,
		startY:         y,
		stepsPerSecond: stepsPerSecond,
		retain:         1 - friction,
		vx0:            math.Cos(rad) * velocity,
		vy0:            math.Sin(rad) * velocity,
		ax:             math.Cos(arad) * accel,
		ay:             math.Sin(arad) * accel,
		x:              x,
		y:              y,
	}
	p.svx = p.vx0 / stepsPerSecond
	p.svy = p.vy0 / stepsPerSecond
	p.sax = p.ax / (stepsPerSecond * stepsPerSecond)
	p.say = p.ay / (stepsPerSecond * stepsPerSecond)
	return p
}

// Frictionless reports whether the closed form is in use.
func (p *Projectile) Frictionless() bool {
	return p.retain == 1
}

// At advances the projectile to t seconds after launch and returns its position.
func (p *Projectile) At(t float64) (x, y float64) {
	p.t = t
	if p.Frictionless() {
		half := t * t * 0.5
		return p.startX + p.vx0*t + p.ax*half, p.startY + p.vy0*t + p.ay*half
	}

	steps := t * p.stepsPerSecond
	whole := math.Floor(steps)
	for n := int(whole) - p.step; n > 0; n-- {
		p.svx += p.sax
		p.svy += p.say
		p.svx *= p.retain
		p.svy *= p.retain
		p.x += p.svx
		p.y += p.svy
		p.step++
	}
	rem := steps - whole
	return p.x + p.svx*rem, p.y + p.svy*rem
}

// Heading returns the current direction of travel in degrees [0, 360) and the
// speed in px/s.
func (p *Projectile) Heading() (angle, speed float64) {
	var vx, vy float64
	if p.Frictionless() {
		vx = p.vx0 + p.ax*p.t
		vy = p.vy0 + p.ay*p.t
	} else {
		vx = p.svx * p.stepsPerSecond
		vy = p.svy * p.stepsPerSecond
	}
	return NormalizeDeg(math.Atan2(vy, vx) * 180 / math.Pi), math.Hypot(vx, vy)
}
