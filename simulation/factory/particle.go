package factory

import (
	"github.com/automoto/squall/archetypes"
	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// NewRainParticle returns a drop just above the view. wind is in px per
// frame unit (windStrength*50 - 25).
func NewRainParticle(r rng.Source, width, wind float64) components.ParticleData {
	c := cfg.Particle
	life := rng.Range(r, c.RainLifeMin, c.RainLifeMax)
	return components.ParticleData{
		Position: math.Vec2{
			X: rng.Range(r, -c.RainSpawnMargin, width+c.RainSpawnMargin),
			Y: c.RainSpawnY,
		},
		Velocity: math.Vec2{
			X: wind * c.RainWindFactor,
			Y: rng.Range(r, c.RainSpeedMin, c.RainSpeedMax),
		},
		Life:    life,
		MaxLife: life,
		Size:    rng.Range(r, c.RainSizeMin, c.RainSizeMax),
		Opacity: 1,
		Kind:    components.ParticleRain,
	}
}

// NewMistParticle returns a mist puff anywhere in the view, drifting upward.
func NewMistParticle(r rng.Source, width, height float64) components.ParticleData {
	c := cfg.Particle
	life := rng.Range(r, c.MistLifeMin, c.MistLifeMax)
	return components.ParticleData{
		Position: math.Vec2{
			X: r.Float64() * width,
			Y: r.Float64() * height,
		},
		Velocity: math.Vec2{
			X: rng.Centered(r, c.MistDriftX),
			Y: -rng.Range(r, c.MistRiseMin, c.MistRiseMax),
		},
		Life:    life,
		MaxLife: life,
		Size:    rng.Range(r, c.MistSizeMin, c.MistSizeMax),
		Opacity: c.MistOpacity,
		Kind:    components.ParticleMist,
	}
}

// CreateParticle reuses a pooled entity when one is available.
func CreateParticle(w donburi.World, p components.ParticleData) *donburi.Entry {
	var e *donburi.Entry
	if entity, ok := popPooled(w); ok {
		e = w.Entry(entity)
		e.RemoveComponent(tags.Pooled)
		setKindTag(e, p.Kind)
	} else {
		e = archetypes.Particle.Spawn(w, kindTag(p.Kind))
	}
	components.Particle.SetValue(e, p)
	return e
}

// RecycleParticle parks a culled particle in the pool, or removes it when
// the pool is full.
func RecycleParticle(w donburi.World, e *donburi.Entry) {
	pool := poolOf(w)
	if pool == nil || len(pool.Free) >= cfg.Particle.PoolCapacity {
		e.Remove()
		return
	}
	e.AddComponent(tags.Pooled)
	pool.Free = append(pool.Free, e.Entity())
}

func popPooled(w donburi.World) (donburi.Entity, bool) {
	pool := poolOf(w)
	for pool != nil && len(pool.Free) > 0 {
		last := len(pool.Free) - 1
		entity := pool.Free[last]
		pool.Free = pool.Free[:last]
		if w.Valid(entity) {
			return entity, true
		}
	}
	return donburi.Null, false
}

func poolOf(w donburi.World) *components.ParticlePoolData {
	entry, ok := components.ParticlePool.First(w)
	if !ok {
		return nil
	}
	return components.ParticlePool.Get(entry)
}

func kindTag(k components.ParticleKind) donburi.IComponentType {
	if k == components.ParticleMist {
		return tags.Mist
	}
	return tags.Rain
}

func setKindTag(e *donburi.Entry, k components.ParticleKind) {
	want := kindTag(k)
	if e.HasComponent(want) {
		return
	}
	for _, t := range []donburi.IComponentType{tags.Rain, tags.Mist} {
		if e.HasComponent(t) {
			e.RemoveComponent(t)
		}
	}
	e.AddComponent(want)
}
