package simulation

import (
	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/shared/weathermath"
	"github.com/automoto/squall/simulation/factory"
	"github.com/automoto/squall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var liveParticles = donburi.NewQuery(filter.And(
	filter.Contains(components.Particle),
	filter.Not(filter.Contains(tags.Pooled)),
))

var liveRain = donburi.NewQuery(filter.And(
	filter.Contains(components.Particle, tags.Rain),
	filter.Not(filter.Contains(tags.Pooled)),
))

// UpdateParticles spawns rain and mist for this frame, then integrates and
// culls every live particle.
func UpdateParticles(w donburi.World) {
	vp, ok := viewportOf(w)
	if !ok {
		return
	}
	frame := frameOf(w)
	r := randOf(w)
	c := cfg.Particle

	wind := frame.Wind*c.WindScale + c.WindOffset
	live := ParticleCount(w)

	rainCount := int(frame.Rain * c.RainPerIntensity)
	for i := 0; i < rainCount && live < c.MaxParticles; i++ {
		factory.CreateParticle(w, factory.NewRainParticle(r, vp.Width, wind))
		live++
	}

	if live < c.MaxParticles && rng.Chance(r, frame.Fog*c.MistChancePerFog) {
		factory.CreateParticle(w, factory.NewMistParticle(r, vp.Width, vp.Height))
	}

	var culled []*donburi.Entry
	liveParticles.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		stepParticle(p, r, frame.Dt, wind)
		if particleOffscreen(p, vp) || p.Life <= 0 {
			culled = append(culled, e)
		}
	})

	for _, e := range culled {
		factory.RecycleParticle(w, e)
	}
}

func stepParticle(p *components.ParticleData, r rng.Source, dt, wind float64) {
	c := cfg.Particle
	p.Life -= dt

	switch p.Kind {
	case components.ParticleRain:
		p.Velocity.X = wind * c.RainWindFactor
		p.Velocity.Y += c.RainGravity * dt
		p.Position.X += p.Velocity.X * dt
		p.Position.Y += p.Velocity.Y * dt
		p.Opacity = weathermath.LifeRatio(p.Life, p.MaxLife)
	case components.ParticleMist:
		p.Velocity.X += rng.Centered(r, c.MistJitterX)
		p.Velocity.Y += rng.Centered(r, c.MistJitterY)
		p.Position.X += p.Velocity.X * dt
		p.Position.Y += p.Velocity.Y * dt
		p.Opacity = weathermath.LifeRatio(p.Life, p.MaxLife) * c.MistOpacity
		p.Size += c.MistGrowth * dt
	}
}

func particleOffscreen(p *components.ParticleData, vp components.ViewportData) bool {
	c := cfg.Particle
	return p.Position.Y > vp.Height+c.CullMarginBottom ||
		p.Position.X < -c.CullMarginX ||
		p.Position.X > vp.Width+c.CullMarginX
}

// SetIntensity sets rain intensity from a 0-100 value.
func SetIntensity(w donburi.World, v float64) {
	particleFieldOf(w).Intensity = weathermath.ClampPercent(v) / 100
}

// SetWind sets wind strength from a 0-100 value.
func SetWind(w donburi.World, v float64) {
	particleFieldOf(w).Wind = weathermath.ClampPercent(v) / 100
}

// SetFog sets fog intensity from a 0-100 value.
func SetFog(w donburi.World, v float64) {
	particleFieldOf(w).Fog = weathermath.ClampPercent(v) / 100
}

func ParticleCount(w donburi.World) int {
	return liveParticles.Count(w)
}

// ClearParticles removes every live particle. The pool is kept.
func ClearParticles(w donburi.World) {
	var entries []*donburi.Entry
	liveParticles.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	removeAll(entries)
}

// Particles returns a copy of every live particle, mist first then rain.
func Particles(w donburi.World) []components.ParticleData {
	out := make([]components.ParticleData, 0, ParticleCount(w))
	liveParticles.Each(w, func(e *donburi.Entry) {
		if p := components.Particle.Get(e); p.Kind == components.ParticleMist {
			out = append(out, *p)
		}
	})
	liveRain.Each(w, func(e *donburi.Entry) {
		out = append(out, *components.Particle.Get(e))
	})
	return out
}
