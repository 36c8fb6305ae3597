package systems

import (
	"github.com/automoto/confetti-cannon/components"
	cfg "github.com/automoto/confetti-cannon/config"
	"github.com/automoto/confetti-cannon/gamemath"
	"github.com/automoto/confetti-cannon/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawConfetti renders one frame of the cannon onto the screen.
func DrawConfetti(ecs *ecs.ECS, st *store.Store, screen *ebiten.Image) {
	RenderFrame(ScreenCanvas{Screen: screen, AntiAlias: true}, GetAim(ecs), st, GetSurface(ecs).DPR)
}

// RenderFrame clears c, draws the aim overlay while a gesture is in progress,
// the pointer ring, then every particle in store order. Each particle is
// drawn at its current state and then fluttered, so the update shows up on
// the next frame.
func RenderFrame(c Canvas, aim *components.AimData, st *store.Store, dpr float64) {
	c.Clear()

	// only draw the vector while aiming
	if aim.Drawing {
		drawVectorLine(c, aim, dpr)
		drawPower(c, aim, dpr)
	}
	if aim.HasPointer {
		drawPointer(c, aim, dpr)
	}

	st.Each(func(_ components.ParticleID, p *components.ParticleData) {
		c.StrokeLine(
			p.X+p.Tilt+p.Radius, p.Y,
			p.X+p.Tilt, p.Y+p.Tilt+p.Radius,
			p.Diameter/2, p.Color,
		)
		Flutter(p)
	})
}

func drawVectorLine(c Canvas, aim *components.AimData, dpr float64) {
	c.StrokeLine(aim.Origin.X, aim.Origin.Y, aim.Tip.X, aim.Tip.Y,
		cfg.Overlay.VectorWidth*dpr, cfg.Overlay.VectorColor)
}

func drawPower(c Canvas, aim *components.AimData, dpr float64) {
	length := gamemath.Length(aim.Origin.X, aim.Origin.Y, aim.Tip.X, aim.Tip.Y)
	radius := dpr * length / cfg.Overlay.PowerDivisor
	c.StrokeCircle(aim.Origin.X, aim.Origin.Y, radius,
		cfg.Overlay.PowerWidth*dpr, cfg.Overlay.PowerColor)
}

func drawPointer(c Canvas, aim *components.AimData, dpr float64) {
	c.StrokeCircle(aim.Pointer.X, aim.Pointer.Y, cfg.Overlay.PointerRadius*dpr,
		cfg.Overlay.PointerWidth*dpr, cfg.Overlay.PointerColor)
}
