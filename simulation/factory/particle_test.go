package factory

import (
	"testing"

	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/tags"
	"github.com/yohamta/donburi"
)

func TestNewRainParticle(t *testing.T) {
	r := rng.New(1)
	for i := 0; i < 200; i++ {
		p := NewRainParticle(r, 800, 10)
		if p.Life != p.MaxLife {
			t.Fatalf("Life %v != MaxLife %v at spawn", p.Life, p.MaxLife)
		}
		if p.Life < cfg.Particle.RainLifeMin || p.Life >= cfg.Particle.RainLifeMax {
			t.Errorf("Life %v outside [%v, %v)", p.Life, cfg.Particle.RainLifeMin, cfg.Particle.RainLifeMax)
		}
		if p.Position.X < -cfg.Particle.RainSpawnMargin || p.Position.X >= 800+cfg.Particle.RainSpawnMargin {
			t.Errorf("spawn x %v outside margin band", p.Position.X)
		}
		if p.Position.Y != cfg.Particle.RainSpawnY {
			t.Errorf("spawn y = %v, want %v", p.Position.Y, cfg.Particle.RainSpawnY)
		}
		if p.Velocity.X != 5 {
			t.Errorf("vx = %v, want wind*0.5 = 5", p.Velocity.X)
		}
		if p.Kind != components.ParticleRain {
			t.Errorf("Kind = %v, want rain", p.Kind)
		}
	}
}

func TestNewMistParticle(t *testing.T) {
	r := rng.New(2)
	for i := 0; i < 200; i++ {
		p := NewMistParticle(r, 800, 600)
		if p.Velocity.Y > -cfg.Particle.MistRiseMin || p.Velocity.Y <= -cfg.Particle.MistRiseMax {
			t.Errorf("vy %v not an upward drift in (-%v, -%v]", p.Velocity.Y, cfg.Particle.MistRiseMax, cfg.Particle.MistRiseMin)
		}
		if p.Position.X < 0 || p.Position.X >= 800 || p.Position.Y < 0 || p.Position.Y >= 600 {
			t.Errorf("mist spawned outside view at %v", p.Position)
		}
		if p.Opacity < 0 || p.Opacity > 1 {
			t.Errorf("Opacity %v outside [0,1]", p.Opacity)
		}
	}
}

func TestParticlePoolReuse(t *testing.T) {
	w := donburi.NewWorld()
	CreateWeather(w)
	r := rng.New(3)

	rain := CreateParticle(w, NewRainParticle(r, 800, 0))
	entity := rain.Entity()
	RecycleParticle(w, rain)

	if !rain.HasComponent(tags.Pooled) {
		t.Fatal("recycled particle should be tagged as pooled")
	}

	mist := CreateParticle(w, NewMistParticle(r, 800, 600))
	if mist.Entity() != entity {
		t.Errorf("expected pooled entity %v to be reused, got %v", entity, mist.Entity())
	}
	if mist.HasComponent(tags.Pooled) {
		t.Error("reused particle still tagged as pooled")
	}
	if !mist.HasComponent(tags.Mist) || mist.HasComponent(tags.Rain) {
		t.Error("reused particle should carry only the mist tag")
	}
	if got := components.Particle.Get(mist).Kind; got != components.ParticleMist {
		t.Errorf("Kind = %v, want mist", got)
	}
}

func TestParticlePoolCapacity(t *testing.T) {
	w := donburi.NewWorld()
	CreateWeather(w)
	r := rng.New(4)

	capacity := cfg.Particle.PoolCapacity
	entries := make([]*donburi.Entry, 0, capacity+5)
	for i := 0; i < capacity+5; i++ {
		entries = append(entries, CreateParticle(w, NewRainParticle(r, 800, 0)))
	}
	for _, e := range entries {
		RecycleParticle(w, e)
	}

	pool := components.ParticlePool.Get(components.ParticlePool.MustFirst(w))
	if len(pool.Free) != capacity {
		t.Errorf("pool size = %d, want %d", len(pool.Free), capacity)
	}

	removed := 0
	for _, e := range entries {
		if !w.Valid(e.Entity()) {
			removed++
		}
	}
	if removed != 5 {
		t.Errorf("removed %d entities past capacity, want 5", removed)
	}
}
