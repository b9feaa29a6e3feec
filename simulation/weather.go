package simulation

import (
	"log"
	"time"

	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/simclock"
	"github.com/automoto/squall/shared/weathermath"
	"github.com/yohamta/donburi"
)

// ApplyPreset replaces the settings vector with the named preset and
// forwards it to every system. Unknown names are ignored.
func ApplyPreset(w donburi.World, name string) bool {
	p, ok := cfg.Preset(name)
	if !ok {
		log.Printf("Warning: unknown weather preset %q", name)
		return false
	}

	weather := weatherOf(w)
	weather.Settings = components.WeatherSettings{
		RainIntensity: p.RainIntensity,
		WindStrength:  p.WindStrength,
		CloudCoverage: p.CloudCoverage,
		FogIntensity:  p.FogIntensity,
	}
	weather.Preset = name

	SetIntensity(w, p.RainIntensity)
	SetWind(w, p.WindStrength)
	SetFog(w, p.FogIntensity)
	SetWindSpeed(w, p.WindStrength)
	ApplyCloudPreset(w, name)
	ApplyLayerPreset(w, name)
	return true
}

// SetSetting updates one setting, clamped to [0,100]. Rain intensity also
// drives cloud storminess.
func SetSetting(w donburi.World, key cfg.SettingKey, value float64) bool {
	v := weathermath.ClampPercent(value)
	weather := weatherOf(w)

	switch key {
	case cfg.SettingRain:
		weather.Settings.RainIntensity = v
		SetIntensity(w, v)
		SetStorminess(w, v/100)
	case cfg.SettingWind:
		weather.Settings.WindStrength = v
		SetWind(w, v)
		SetWindSpeed(w, v)
	case cfg.SettingCloud:
		weather.Settings.CloudCoverage = v
		SetCoverage(w, v)
	case cfg.SettingFog:
		weather.Settings.FogIntensity = v
		SetFog(w, v)
	default:
		log.Printf("Warning: unknown weather setting %q", key)
		return false
	}

	weather.Preset = ""
	return true
}

// Settings returns the current settings vector.
func Settings(w donburi.World) components.WeatherSettings {
	return weatherOf(w).Settings
}

// Setting returns a single setting by key.
func Setting(w donburi.World, key cfg.SettingKey) (float64, bool) {
	s := Settings(w)
	switch key {
	case cfg.SettingRain:
		return s.RainIntensity, true
	case cfg.SettingWind:
		return s.WindStrength, true
	case cfg.SettingCloud:
		return s.CloudCoverage, true
	case cfg.SettingFog:
		return s.FogIntensity, true
	}
	return 0, false
}

// WeatherStatus maps rain intensity to a display label.
func WeatherStatus(rain float64) string {
	c := cfg.Weather
	switch {
	case rain <= 0:
		return "Clear Sky"
	case rain < c.LightRainBelow:
		return "Light Rain"
	case rain < c.ModerateRainBelow:
		return "Moderate Rain"
	case rain < c.HeavyRainBelow:
		return "Heavy Rain"
	default:
		return "Thunderstorm"
	}
}

// BeginFrame snapshots every system input into the Frame singleton. All
// systems run in a tick read this snapshot and nothing else.
func BeginFrame(w donburi.World, dt float64) *components.FrameData {
	dt = simclock.ClampDelta(dt)

	weather := weatherOf(w)
	particles := particleFieldOf(w)
	clouds := cloudFieldOf(w)
	lightning := lightningStateOf(w)
	frame := frameOf(w)

	*frame = components.FrameData{
		Dt:      dt,
		Now:     clockOf(w).Now(),
		SimTime: frame.SimTime + dt*float64(simclock.TargetFrame)/float64(time.Millisecond),

		Rain:       particles.Intensity,
		Wind:       particles.Wind,
		Fog:        particles.Fog,
		Coverage:   clouds.Coverage,
		WindSpeed:  clouds.WindSpeed,
		Storminess: clouds.Storminess,

		StormIntensity: weather.Settings.RainIntensity / 100,
		AutoLightning:  lightning.AutoLightning,
	}
	return frame
}
