package gamemath

import "math"

// Length returns the length of the segment (x0,y0)-(x1,y1).
func Length(x0, y0, x1, y1 float64) float64 {
	x := x1 - x0
	y := y1 - y0
	return math.Sqrt(x*x + y*y)
}

// DegAngle returns the direction of (x0,y0)->(x1,y1) in degrees, in (-180, 180].
func DegAngle(x0, y0, x1, y1 float64) float64 {
	return math.Atan2(y1-y0, x1-x0) * (180 / math.Pi)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeDeg wraps an angle into [0, 360).
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
