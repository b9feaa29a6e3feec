package simulation

import (
	"github.com/automoto/squall/components"
	"github.com/yohamta/donburi"
)

// Snapshot is a copy of everything a renderer needs for one frame. It
// shares no memory with the world.
type Snapshot struct {
	Width  float64
	Height float64

	Particles   []components.ParticleData // mist first, then rain
	Clouds      []components.CloudData    // largest first
	Bolts       []components.BoltData
	Flashes     []components.LightningFlashData
	Layers      []components.LayerData
	WindStreaks []components.WindStreakData
	Splashes    []components.SplashData

	Settings      components.WeatherSettings
	Preset        string
	Status        string
	ParticleCount int
	AutoLightning bool
	Strikes       int
	SimTime       float64
}

// TakeSnapshot copies the current world state.
func TakeSnapshot(w donburi.World) Snapshot {
	vp, _ := viewportOf(w)
	weather := weatherOf(w)
	lightning := lightningStateOf(w)

	return Snapshot{
		Width:  vp.Width,
		Height: vp.Height,

		Particles:   Particles(w),
		Clouds:      Clouds(w),
		Bolts:       Bolts(w),
		Flashes:     Flashes(w),
		Layers:      Layers(w),
		WindStreaks: WindStreaks(w),
		Splashes:    Splashes(w),

		Settings:      weather.Settings,
		Preset:        weather.Preset,
		Status:        WeatherStatus(weather.Settings.RainIntensity),
		ParticleCount: ParticleCount(w),
		AutoLightning: lightning.AutoLightning,
		Strikes:       lightning.Strikes,
		SimTime:       frameOf(w).SimTime,
	}
}
