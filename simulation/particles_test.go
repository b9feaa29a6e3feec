package simulation

import (
	"testing"

	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/simulation/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func TestUpdateParticlesSpawnsPerIntensity(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(1))
	SetIntensity(w, 100)
	SetFog(w, 0)

	step(w, 0, UpdateParticles)
	if got := ParticleCount(w); got != 15 {
		t.Fatalf("after one frame: %d particles, want 15", got)
	}

	step(w, 0, UpdateParticles)
	if got := ParticleCount(w); got != 30 {
		t.Errorf("after two frames: %d particles, want 30", got)
	}
}

func TestUpdateParticlesZeroIntensitySpawnsNothing(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(2))
	SetIntensity(w, 0)
	SetFog(w, 0)

	for i := 0; i < 50; i++ {
		step(w, 1, UpdateParticles)
	}
	if got := ParticleCount(w); got != 0 {
		t.Errorf("%d particles with zero intensity, want 0", got)
	}
}

func TestUpdateParticlesRespectsCap(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(3))
	SetIntensity(w, 100)
	SetFog(w, 100)

	for i := 0; i < 200; i++ {
		step(w, 0, UpdateParticles)
		if got := ParticleCount(w); got > cfg.Particle.MaxParticles {
			t.Fatalf("frame %d: %d particles exceeds cap %d", i, got, cfg.Particle.MaxParticles)
		}
	}
	if got := ParticleCount(w); got != cfg.Particle.MaxParticles {
		t.Errorf("%d particles, want the cap %d", got, cfg.Particle.MaxParticles)
	}
}

func TestParticleLifeAndOpacity(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(4))
	SetIntensity(w, 100)
	SetFog(w, 0)
	step(w, 1, UpdateParticles)
	SetIntensity(w, 0)

	prev := map[donburi.Entity]float64{}
	for frame := 0; frame < 200; frame++ {
		step(w, 1, UpdateParticles)
		liveParticles.Each(w, func(e *donburi.Entry) {
			p := components.Particle.Get(e)
			if p.Opacity < 0 || p.Opacity > 1 {
				t.Fatalf("opacity %v outside [0,1]", p.Opacity)
			}
			if last, ok := prev[e.Entity()]; ok && p.Life >= last {
				t.Fatalf("life did not decrease: %v -> %v", last, p.Life)
			}
			prev[e.Entity()] = p.Life
		})
	}

	if got := ParticleCount(w); got != 0 {
		t.Errorf("%d particles left after they should all have expired", got)
	}
}

func TestRainFollowsWind(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(5))
	SetIntensity(w, 100)
	SetFog(w, 0)
	SetWind(w, 100)

	step(w, 1, UpdateParticles)
	liveParticles.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		if p.Velocity.X != 12.5 {
			t.Errorf("vx = %v, want (100%%*50-25)*0.5 = 12.5", p.Velocity.X)
		}
	})
}

func TestRainGravityIsTimeScaled(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(6))
	e := factory.CreateParticle(w, components.ParticleData{
		Position: math.Vec2{X: 100, Y: 0},
		Velocity: math.Vec2{Y: 1},
		Life:     50,
		MaxLife:  50,
		Kind:     components.ParticleRain,
	})
	SetIntensity(w, 0)
	SetFog(w, 0)

	step(w, 2, UpdateParticles)
	p := components.Particle.Get(e)
	if got, want := p.Velocity.Y, 1+cfg.Particle.RainGravity*2; got != want {
		t.Errorf("vy = %v, want %v", got, want)
	}
	if p.Life != 48 {
		t.Errorf("Life = %v, want 48", p.Life)
	}
	if p.Opacity != 48.0/50.0 {
		t.Errorf("Opacity = %v, want %v", p.Opacity, 48.0/50.0)
	}
}

func TestMistGrowsAndFades(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(7))
	e := factory.CreateParticle(w, components.ParticleData{
		Position: math.Vec2{X: 100, Y: 300},
		Velocity: math.Vec2{Y: -20},
		Life:     100,
		MaxLife:  100,
		Size:     10,
		Kind:     components.ParticleMist,
	})
	SetIntensity(w, 0)
	SetFog(w, 0)

	step(w, 1, UpdateParticles)
	p := components.Particle.Get(e)
	if p.Size != 10.1 {
		t.Errorf("Size = %v, want 10.1", p.Size)
	}
	if want := 0.99 * cfg.Particle.MistOpacity; p.Opacity != want {
		t.Errorf("Opacity = %v, want %v", p.Opacity, want)
	}
	if p.Position.Y >= 300 {
		t.Errorf("mist y = %v, want upward drift from 300", p.Position.Y)
	}
}

func TestCulledParticlesReturnToPool(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(8))
	SetIntensity(w, 100)
	SetFog(w, 0)
	for i := 0; i < 20; i++ {
		step(w, 1, UpdateParticles)
	}
	SetIntensity(w, 0)
	for i := 0; i < 100; i++ {
		step(w, 2, UpdateParticles)
	}

	if got := ParticleCount(w); got != 0 {
		t.Fatalf("%d live particles, want 0", got)
	}
	pool := components.ParticlePool.Get(GetOrCreateWeather(w))
	if len(pool.Free) != cfg.Particle.PoolCapacity {
		t.Errorf("pool holds %d, want %d", len(pool.Free), cfg.Particle.PoolCapacity)
	}

	SetIntensity(w, 100)
	step(w, 0, UpdateParticles)
	if got := len(pool.Free); got != cfg.Particle.PoolCapacity-15 {
		t.Errorf("pool holds %d after reuse, want %d", got, cfg.Particle.PoolCapacity-15)
	}
}

func TestClearParticles(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(9))
	SetIntensity(w, 100)
	step(w, 1, UpdateParticles)
	if ParticleCount(w) == 0 {
		t.Fatal("expected particles before clearing")
	}

	ClearParticles(w)
	SetIntensity(w, 0)
	SetFog(w, 0)
	step(w, 1, UpdateParticles)

	if got := ParticleCount(w); got != 0 {
		t.Errorf("%d particles after clear, want 0", got)
	}
}

func TestParticleSettersClamp(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(10))
	field := particleFieldOf(w)

	SetIntensity(w, 150)
	SetWind(w, -20)
	SetFog(w, 50)

	if field.Intensity != 1 {
		t.Errorf("Intensity = %v, want 1", field.Intensity)
	}
	if field.Wind != 0 {
		t.Errorf("Wind = %v, want 0", field.Wind)
	}
	if field.Fog != 0.5 {
		t.Errorf("Fog = %v, want 0.5", field.Fog)
	}
}

func TestParticlesOrderMistFirst(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(11))
	factory.CreateParticle(w, components.ParticleData{Life: 10, MaxLife: 10, Kind: components.ParticleRain})
	factory.CreateParticle(w, components.ParticleData{Life: 10, MaxLife: 10, Kind: components.ParticleMist})

	ps := Particles(w)
	if len(ps) != 2 {
		t.Fatalf("%d particles, want 2", len(ps))
	}
	if ps[0].Kind != components.ParticleMist || ps[1].Kind != components.ParticleRain {
		t.Errorf("order = %v, %v; want mist then rain", ps[0].Kind, ps[1].Kind)
	}
}
