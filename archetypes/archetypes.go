package archetypes

import (
	"github.com/automoto/squall/components"
	"github.com/automoto/squall/tags"
	"github.com/yohamta/donburi"
)

var (
	Particle = newArchetype(
		components.Particle,
	)
	Cloud = newArchetype(
		tags.Cloud,
		components.Cloud,
	)
	Bolt = newArchetype(
		tags.Bolt,
		components.Bolt,
	)
	Flash = newArchetype(
		tags.Flash,
		components.LightningFlash,
	)
	Layer = newArchetype(
		tags.Layer,
		components.Layer,
	)
	WindStreak = newArchetype(
		tags.WindStreak,
		components.WindStreak,
	)
	Splash = newArchetype(
		tags.Splash,
		components.Splash,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Weather = newArchetype(
		components.Weather,
		components.ParticleField,
		components.ParticlePool,
		components.CloudField,
		components.LightningState,
		components.Frame,
	)
	Viewport = newArchetype(
		components.Viewport,
	)
	Runtime = newArchetype(
		components.Runtime,
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

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
