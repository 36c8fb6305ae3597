package tags

import "github.com/yohamta/donburi"

var (
	Confetti = donburi.NewTag().SetName("Confetti")
	Cannon   = donburi.NewTag().SetName("Cannon")
)
