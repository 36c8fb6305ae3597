package archetypes

import (
	"github.com/automoto/confetti-cannon/components"
	cfg "github.com/automoto/confetti-cannon/config"
	"github.com/automoto/confetti-cannon/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Confetti = newArchetype(
		tags.Confetti,
		components.Particle,
		components.Ballistic,
	)
	Cannon = newArchetype(
		tags.Cannon,
		components.Aim,
		components.Surface,
		components.Settings,
		components.Clock,
		components.Input,
		components.Pointer,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
