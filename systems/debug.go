package systems

import (
	"fmt"

	cfg "github.com/automoto/confetti-cannon/config"
	"github.com/automoto/confetti-cannon/fonts"
	"github.com/automoto/confetti-cannon/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug renders the debug HUD when debug is enabled.
func DrawDebug(ecs *ecs.ECS, st *store.Store, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	lines := DebugLines(ecs, st)
	lines = append(lines, fmt.Sprintf("tps: %.1f  fps: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))

	face := fonts.Debug.Get()
	y := cfg.Debug.HUDY
	for _, line := range lines {
		text.Draw(screen, line, face, cfg.Debug.HUDX, y, cfg.Debug.HUDColor)
		y += cfg.Debug.LineSpace
	}
}

// DebugLines describes the simulation state shown in the HUD.
func DebugLines(ecs *ecs.ECS, st *store.Store) []string {
	clock := GetClock(ecs)
	surface := GetSurface(ecs)
	aim := GetAim(ecs)

	lines := []string{
		fmt.Sprintf("particles: %d", st.Len()),
		fmt.Sprintf("tick: %d @ %d/s", clock.Ticks, clock.TPS),
		fmt.Sprintf("surface: %dx%d dpr %.2f", surface.Width, surface.Height, surface.DPR),
		fmt.Sprintf("palette: %s", CurrentPalette(ecs).Name),
	}
	if aim.Drawing {
		opts := GestureOptions(aim.Origin.X, aim.Origin.Y, aim.Tip.X, aim.Tip.Y)
		lines = append(lines, fmt.Sprintf("aim: %.0f deg, %d particles, %.0f px/s",
			*opts.Angle, *opts.Amount, *opts.Velocity))
	}
	return lines
}
