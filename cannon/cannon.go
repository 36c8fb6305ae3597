// Package cannon is the embeddable confetti cannon. A Cannon owns its ECS
// world and runs as an ebiten.Game: every tick advances the decay tweens,
// every frame redraws the particles and the aim overlay.
package cannon

import (
	"errors"
	"math/rand/v2"

	"github.com/automoto/confetti-cannon/burst"
	"github.com/automoto/confetti-cannon/components"
	cfg "github.com/automoto/confetti-cannon/config"
	"github.com/automoto/confetti-cannon/fonts"
	"github.com/automoto/confetti-cannon/gamemath"
	"github.com/automoto/confetti-cannon/store"
	"github.com/automoto/confetti-cannon/systems"
	"github.com/automoto/confetti-cannon/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrNoSurface is returned by New when there is nothing to draw on.
var ErrNoSurface = errors.New("cannon: drawing surface must have a positive width and height")

// Options configure a Cannon. Zero values fall back to config defaults.
type Options struct {
	Width, Height int     // surface size in device pixels
	DPR           float64 // device pixel ratio, 1 if unset
	TPS           int     // frame clock rate

	Debug        bool // log spawn diagnostics and show the HUD
	Trigger      bool // aim with the mouse or touch
	HotKeys      bool // keyboard and gamepad shortcuts
	PaletteIndex int

	// Burst holds instance defaults layered over the global ones for every Fire.
	Burst burst.Options

	IDs  store.IDGenerator
	Rand *rand.Rand

	// OnSettingsChanged is called when a hotkey changes the settings.
	OnSettingsChanged func(components.SettingsData)
}

// Cannon fires confetti bursts and renders them.
type Cannon struct {
	ecs    *ecs.ECS
	store  *store.Store
	rnd    *gamemath.Random
	opts   Options
	closed bool
}

// New creates a cannon and registers its systems with a fresh ECS world.
func New(opts Options) (*Cannon, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrNoSurface
	}
	if opts.DPR <= 0 {
		opts.DPR = 1
	}
	if opts.TPS <= 0 {
		opts.TPS = cfg.C.TPS
	}

	c := &Cannon{
		opts: opts,
		rnd:  gamemath.NewRandom(opts.Rand),
	}
	c.configure()
	return c, nil
}

func (c *Cannon) configure() {
	fonts.LoadDefaults(cfg.Debug.FontSize)

	ecs := ecs.NewECS(donburi.NewWorld())
	c.ecs = ecs

	c.store = store.New(ecs, c.opts.IDs)
	c.store.Subscribe()

	factory.CreateCannon(ecs,
		components.SurfaceData{Width: c.opts.Width, Height: c.opts.Height, DPR: c.opts.DPR},
		components.ClockData{TPS: c.opts.TPS},
		components.SettingsData{Debug: c.opts.Debug, PaletteIndex: c.opts.PaletteIndex},
	)

	// Input runs first so a burst fired this tick starts moving this tick
	if c.opts.Trigger {
		ecs.AddSystem(c.updatePointer)
	}
	if c.opts.HotKeys {
		ecs.AddSystem(c.updateHotkeys)
	}
	ecs.AddSystem(systems.UpdateBallistic)

	ecs.AddRenderer(cfg.Default, c.drawConfetti)
	ecs.AddRenderer(cfg.Default, c.drawDebug)
}

func (c *Cannon) updatePointer(e *ecs.ECS) {
	systems.UpdatePointer(e, c.fire)
}

func (c *Cannon) updateHotkeys(e *ecs.ECS) {
	systems.UpdateInput(e)
	systems.UpdateHotkeys(e, c.store, c.fire, c.opts.OnSettingsChanged)
}

func (c *Cannon) drawConfetti(e *ecs.ECS, screen *ebiten.Image) {
	systems.DrawConfetti(e, c.store, screen)
}

func (c *Cannon) drawDebug(e *ecs.ECS, screen *ebiten.Image) {
	systems.DrawDebug(e, c.store, screen)
}

func (c *Cannon) fire(o burst.Options) {
	c.Fire(o)
}

// Fire launches a burst. Unset options fall back to the cannon's Burst
// options, then to the global defaults: centre of the surface, config
// burst values and the selected palette.
func (c *Cannon) Fire(o burst.Options) []components.ParticleID {
	if c.closed {
		return nil
	}
	surface := systems.GetSurface(c.ecs)
	base := burst.Defaults(surface.Width, surface.Height, surface.DPR, systems.CurrentPalette(c.ecs).Color)
	merged := burst.Merge(burst.Merge(base, c.opts.Burst), o)
	return factory.CreateConfettiBurst(c.ecs, c.store, c.rnd, merged.Params())
}

// Pointer feeds a pointer event from an external input source through the aim
// gesture. It returns the ids of the burst fired when the event completes a
// gesture.
func (c *Cannon) Pointer(ev systems.PointerEvent) []components.ParticleID {
	if c.closed {
		return nil
	}
	if opts, ok := systems.HandlePointer(systems.GetAim(c.ecs), ev); ok {
		return c.Fire(opts)
	}
	return nil
}

// Update advances the simulation by one tick.
func (c *Cannon) Update() error {
	if c.closed {
		return ebiten.Termination
	}
	c.ecs.Update()
	return nil
}

// Draw renders the current frame.
func (c *Cannon) Draw(screen *ebiten.Image) {
	if c.closed {
		return
	}
	c.ecs.Draw(screen)
}

// Render draws the current frame on an arbitrary canvas. Like Draw, it
// applies the per-frame flutter update to every particle.
func (c *Cannon) Render(canvas systems.Canvas) {
	if c.closed {
		return
	}
	systems.RenderFrame(canvas, systems.GetAim(c.ecs), c.store, systems.GetSurface(c.ecs).DPR)
}

// Layout sizes the surface in device pixels.
func (c *Cannon) Layout(outsideWidth, outsideHeight int) (int, int) {
	surface := systems.GetSurface(c.ecs)
	surface.Width = int(float64(outsideWidth) * surface.DPR)
	surface.Height = int(float64(outsideHeight) * surface.DPR)
	return surface.Width, surface.Height
}

// Close stops the cannon: expiry events are no longer consumed and the next
// Update ends the game loop. Close is idempotent.
func (c *Cannon) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.store.Close()
}

// Store exposes the live particles.
func (c *Cannon) Store() *store.Store {
	return c.store
}

// Settings returns a copy of the current settings.
func (c *Cannon) Settings() components.SettingsData {
	return *systems.GetOrCreateSettings(c.ecs)
}

// SetDebug switches spawn diagnostics and the HUD on or off.
func (c *Cannon) SetDebug(debug bool) {
	systems.GetOrCreateSettings(c.ecs).Debug = debug
}

// SetPalette selects a palette by index.
func (c *Cannon) SetPalette(i int) {
	systems.GetOrCreateSettings(c.ecs).PaletteIndex = i
}
