package factory

import (
	"github.com/automoto/squall/archetypes"
	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/shared/simclock"
	"github.com/yohamta/donburi"
)

// CreateWeather spawns the controller singleton with the startup settings.
func CreateWeather(w donburi.World) *donburi.Entry {
	e := archetypes.Weather.Spawn(w)

	settings := components.WeatherSettings{
		RainIntensity: cfg.Weather.DefaultRain,
		WindStrength:  cfg.Weather.DefaultWind,
		CloudCoverage: cfg.Weather.DefaultCloud,
		FogIntensity:  cfg.Weather.DefaultFog,
	}
	components.Weather.SetValue(e, components.WeatherData{Settings: settings})
	components.ParticleField.SetValue(e, components.ParticleFieldData{
		Intensity: settings.RainIntensity / 100,
		Wind:      settings.WindStrength / 100,
		Fog:       settings.FogIntensity / 100,
	})
	components.ParticlePool.SetValue(e, components.ParticlePoolData{
		Free: make([]donburi.Entity, 0, cfg.Particle.PoolCapacity),
	})
	components.CloudField.SetValue(e, components.CloudFieldData{
		Coverage:  settings.CloudCoverage / 100,
		WindSpeed: settings.WindStrength / cfg.Cloud.WindDivisor,
	})
	components.LightningState.SetValue(e, components.LightningStateData{
		AutoLightning: true,
	})
	return e
}

func CreateViewport(w donburi.World, width, height float64) *donburi.Entry {
	e := archetypes.Viewport.Spawn(w)
	components.Viewport.SetValue(e, components.ViewportData{Width: width, Height: height})
	return e
}

// CreateRuntime registers the random source and clock. Nil arguments fall
// back to an entropy-seeded source and the system clock.
func CreateRuntime(w donburi.World, r rng.Source, clock simclock.TimeProvider) *donburi.Entry {
	if r == nil {
		r = rng.NewEntropy()
	}
	if clock == nil {
		clock = simclock.SystemTime{}
	}
	e := archetypes.Runtime.Spawn(w)
	components.Runtime.SetValue(e, components.RuntimeData{Rand: r, Clock: clock})
	return e
}
