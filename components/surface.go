package components

import "github.com/yohamta/donburi"

// SurfaceData describes the drawing surface in device pixels.
type SurfaceData struct {
	Width, Height int
	DPR           float64
}

var Surface = donburi.NewComponentType[SurfaceData]()

// ClockData is the frame clock driving the ballistic tweens.
type ClockData struct {
	TPS   int
	Ticks int64
}

// TickSeconds returns the simulated duration of one tick.
func (c *ClockData) TickSeconds() float64 {
	return 1 / float64(c.TPS)
}

var Clock = donburi.NewComponentType[ClockData]()
