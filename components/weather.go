package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// WeatherSettings is the user-facing settings vector, each value in [0,100]
type WeatherSettings struct {
	RainIntensity float64
	WindStrength  float64
	CloudCoverage float64
	FogIntensity  float64
}

// WeatherData is the preset controller state (singleton)
type WeatherData struct {
	Settings WeatherSettings
	Preset   string // last applied preset, empty if settings were edited since
}

var Weather = donburi.NewComponentType[WeatherData]()

// FrameData is the per-tick snapshot every system reads (singleton).
// It is rebuilt at the start of each update so a tick never sees a
// half-applied settings change.
type FrameData struct {
	Dt      float64   // frame units, 1 = 16.67ms
	Now     time.Time // wall or mock clock at tick start
	SimTime float64   // accumulated simulation time in ms

	Rain       float64 // 0..1
	Wind       float64 // 0..1
	Fog        float64 // 0..1
	Coverage   float64 // 0..1
	WindSpeed  float64
	Storminess float64

	StormIntensity float64 // rain/100, drives auto lightning
	AutoLightning  bool
}

var Frame = donburi.NewComponentType[FrameData]()

// ViewportData is the simulated area in pixels (singleton)
type ViewportData struct {
	Width  float64
	Height float64
}

var Viewport = donburi.NewComponentType[ViewportData]()
