package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ParticleKind distinguishes rain drops from mist puffs
type ParticleKind int

const (
	ParticleRain ParticleKind = iota
	ParticleMist
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleRain:
		return "rain"
	case ParticleMist:
		return "mist"
	}
	return "unknown"
}

type ParticleData struct {
	Position math.Vec2
	Velocity math.Vec2
	Life     float64 // frame units remaining
	MaxLife  float64
	Size     float64
	Opacity  float64 // 0..1, derived from Life/MaxLife
	Kind     ParticleKind
}

var Particle = donburi.NewComponentType[ParticleData]()

// ParticleFieldData holds the normalized inputs of the particle system (singleton)
type ParticleFieldData struct {
	Intensity float64 // rain, 0..1
	Wind      float64 // 0..1
	Fog       float64 // 0..1
}

var ParticleField = donburi.NewComponentType[ParticleFieldData]()

// ParticlePoolData holds culled particle entities waiting for reuse (singleton)
type ParticlePoolData struct {
	Free []donburi.Entity
}

var ParticlePool = donburi.NewComponentType[ParticlePoolData]()
