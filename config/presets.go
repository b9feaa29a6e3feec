package config

import "image/color"

// PresetID names a weather preset
type PresetID string

const (
	PresetClear     PresetID = "clear"
	PresetLightRain PresetID = "light-rain"
	PresetHeavyRain PresetID = "heavy-rain"
	PresetStorm     PresetID = "storm"
)

// LayerPreset describes one atmospheric band
type LayerPreset struct {
	Intensity float64
	Height    float64 // wave amplitude in px
	Speed     float64 // px per frame unit
	Color     color.NRGBA
}

// PresetConfig is the full weather state a preset applies
type PresetConfig struct {
	Label string

	// Settings, each in [0,100]
	RainIntensity float64
	WindStrength  float64
	CloudCoverage float64
	FogIntensity  float64

	// Cloud preset
	Coverage   float64 // [0,100]
	Storminess float64 // [0,1]

	Layers []LayerPreset
}

// WeatherConfig contains the preset table and startup settings
type WeatherConfig struct {
	Presets       map[PresetID]PresetConfig
	Order         []PresetID // display and shortcut order
	DefaultPreset PresetID

	// Settings before any preset is applied
	DefaultRain  float64
	DefaultWind  float64
	DefaultCloud float64
	DefaultFog   float64

	// Status label thresholds on rain intensity
	LightRainBelow    float64
	ModerateRainBelow float64
	HeavyRainBelow    float64
}

var Weather WeatherConfig

// Preset looks up a preset by name
func Preset(name string) (PresetConfig, bool) {
	p, ok := Weather.Presets[PresetID(name)]
	return p, ok
}

func init() {
	Weather = WeatherConfig{
		Order:         []PresetID{PresetClear, PresetLightRain, PresetHeavyRain, PresetStorm},
		DefaultPreset: PresetLightRain,

		DefaultRain:  60,
		DefaultWind:  30,
		DefaultCloud: 70,
		DefaultFog:   20,

		LightRainBelow:    30,
		ModerateRainBelow: 70,
		HeavyRainBelow:    90,

		Presets: map[PresetID]PresetConfig{
			PresetClear: {
				Label:         "Clear",
				RainIntensity: 0,
				WindStrength:  10,
				CloudCoverage: 20,
				FogIntensity:  5,
				Coverage:      20,
				Storminess:    0,
				Layers: []LayerPreset{
					{Intensity: 0.1, Height: 10, Speed: 0.5, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 26}},
				},
			},
			PresetLightRain: {
				Label:         "Light Rain",
				RainIntensity: 40,
				WindStrength:  25,
				CloudCoverage: 60,
				FogIntensity:  15,
				Coverage:      60,
				Storminess:    0.3,
				Layers: []LayerPreset{
					{Intensity: 0.3, Height: 15, Speed: 1, Color: color.NRGBA{R: 200, G: 220, B: 255, A: 51}},
				},
			},
			PresetHeavyRain: {
				Label:         "Heavy Rain",
				RainIntensity: 80,
				WindStrength:  50,
				CloudCoverage: 85,
				FogIntensity:  30,
				Coverage:      85,
				Storminess:    0.6,
				Layers: []LayerPreset{
					{Intensity: 0.6, Height: 25, Speed: 2, Color: color.NRGBA{R: 150, G: 180, B: 220, A: 77}},
					{Intensity: 0.4, Height: 20, Speed: 1.5, Color: color.NRGBA{R: 180, G: 200, B: 240, A: 51}},
				},
			},
			PresetStorm: {
				Label:         "Storm",
				RainIntensity: 95,
				WindStrength:  70,
				CloudCoverage: 95,
				FogIntensity:  40,
				Coverage:      95,
				Storminess:    0.9,
				Layers: []LayerPreset{
					{Intensity: 0.8, Height: 35, Speed: 3, Color: color.NRGBA{R: 100, G: 120, B: 180, A: 102}},
					{Intensity: 0.6, Height: 25, Speed: 2.5, Color: color.NRGBA{R: 120, G: 140, B: 200, A: 77}},
					{Intensity: 0.4, Height: 15, Speed: 2, Color: color.NRGBA{R: 150, G: 170, B: 220, A: 51}},
				},
			},
		},
	}
}
