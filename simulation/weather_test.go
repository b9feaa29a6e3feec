package simulation

import (
	"testing"
	"time"

	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/shared/simclock"
)

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		name   cfg.PresetID
		want   components.WeatherSettings
		layers int
	}{
		{cfg.PresetClear, components.WeatherSettings{RainIntensity: 0, WindStrength: 10, CloudCoverage: 20, FogIntensity: 5}, 1},
		{cfg.PresetLightRain, components.WeatherSettings{RainIntensity: 40, WindStrength: 25, CloudCoverage: 60, FogIntensity: 15}, 1},
		{cfg.PresetHeavyRain, components.WeatherSettings{RainIntensity: 80, WindStrength: 50, CloudCoverage: 85, FogIntensity: 30}, 2},
		{cfg.PresetStorm, components.WeatherSettings{RainIntensity: 95, WindStrength: 70, CloudCoverage: 95, FogIntensity: 40}, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			w, _ := newTestWorld(t, rng.New(1))
			if !ApplyPreset(w, string(tt.name)) {
				t.Fatalf("ApplyPreset(%q) = false", tt.name)
			}
			if got := Settings(w); got != tt.want {
				t.Errorf("Settings = %+v, want %+v", got, tt.want)
			}
			if got := len(Layers(w)); got != tt.layers {
				t.Errorf("%d layers, want %d", got, tt.layers)
			}
			if got := weatherOf(w).Preset; got != string(tt.name) {
				t.Errorf("Preset = %q, want %q", got, tt.name)
			}

			p, _ := cfg.Preset(string(tt.name))
			frame := BeginFrame(w, 1)
			if frame.Rain != p.RainIntensity/100 {
				t.Errorf("frame rain = %v, want %v", frame.Rain, p.RainIntensity/100)
			}
			if frame.Storminess != p.Storminess {
				t.Errorf("frame storminess = %v, want %v", frame.Storminess, p.Storminess)
			}
			if frame.Coverage != p.Coverage/100 {
				t.Errorf("frame coverage = %v, want %v", frame.Coverage, p.Coverage/100)
			}
		})
	}
}

func TestApplyUnknownPreset(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(1))
	ApplyPreset(w, string(cfg.PresetStorm))
	before := Settings(w)

	if ApplyPreset(w, "blizzard") {
		t.Fatal("ApplyPreset accepted an unknown name")
	}
	if got := Settings(w); got != before {
		t.Errorf("Settings changed to %+v", got)
	}
	if got := weatherOf(w).Preset; got != string(cfg.PresetStorm) {
		t.Errorf("Preset = %q, want storm", got)
	}
}

func TestSetSettingClamps(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(1))

	tests := []struct {
		key   cfg.SettingKey
		value float64
		want  float64
	}{
		{cfg.SettingRain, 150, 100},
		{cfg.SettingWind, -20, 0},
		{cfg.SettingCloud, 42, 42},
		{cfg.SettingFog, 100, 100},
	}
	for _, tt := range tests {
		if !SetSetting(w, tt.key, tt.value) {
			t.Fatalf("SetSetting(%s) = false", tt.key)
		}
		if got, _ := Setting(w, tt.key); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestSetSettingUnknownKey(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(1))
	before := Settings(w)

	if SetSetting(w, "humidity", 50) {
		t.Error("SetSetting accepted an unknown key")
	}
	if got := Settings(w); got != before {
		t.Errorf("Settings changed to %+v", got)
	}
	if _, ok := Setting(w, "humidity"); ok {
		t.Error("Setting reported an unknown key")
	}
}

func TestSetSettingClearsPreset(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(1))
	ApplyPreset(w, string(cfg.PresetHeavyRain))

	SetSetting(w, cfg.SettingFog, 10)
	if got := weatherOf(w).Preset; got != "" {
		t.Errorf("Preset = %q after a manual change, want empty", got)
	}
}

func TestRainSettingDrivesStorminess(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(1))

	SetSetting(w, cfg.SettingRain, 80)
	frame := BeginFrame(w, 1)
	if frame.Storminess != 0.8 {
		t.Errorf("Storminess = %v, want 0.8", frame.Storminess)
	}
	if frame.StormIntensity != 0.8 {
		t.Errorf("StormIntensity = %v, want 0.8", frame.StormIntensity)
	}
	if frame.Rain != 0.8 {
		t.Errorf("Rain = %v, want 0.8", frame.Rain)
	}
}

func TestWindSettingDrivesClouds(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(1))

	SetSetting(w, cfg.SettingWind, 100)
	frame := BeginFrame(w, 1)
	if want := 100 / cfg.Cloud.WindDivisor; frame.WindSpeed != want {
		t.Errorf("WindSpeed = %v, want %v", frame.WindSpeed, want)
	}
	if frame.Wind != 1 {
		t.Errorf("Wind = %v, want 1", frame.Wind)
	}
}

func TestWeatherStatus(t *testing.T) {
	tests := []struct {
		rain float64
		want string
	}{
		{0, "Clear Sky"},
		{1, "Light Rain"},
		{29, "Light Rain"},
		{30, "Moderate Rain"},
		{69, "Moderate Rain"},
		{70, "Heavy Rain"},
		{89, "Heavy Rain"},
		{90, "Thunderstorm"},
		{96, "Thunderstorm"},
	}
	for _, tt := range tests {
		if got := WeatherStatus(tt.rain); got != tt.want {
			t.Errorf("WeatherStatus(%v) = %q, want %q", tt.rain, got, tt.want)
		}
	}
}

func TestBeginFrame(t *testing.T) {
	w, clock := newTestWorld(t, rng.New(1))
	frame := BeginFrame(w, 5)
	if frame.Dt != simclock.MaxDelta {
		t.Errorf("Dt = %v, want clamped to %v", frame.Dt, simclock.MaxDelta)
	}
	if want := simclock.MaxDelta * float64(simclock.TargetFrame) / float64(time.Millisecond); frame.SimTime != want {
		t.Errorf("SimTime = %v, want %v", frame.SimTime, want)
	}

	clock.Advance(time.Second)
	prev := frame.SimTime
	frame = BeginFrame(w, -1)
	if frame.Dt != 0 {
		t.Errorf("Dt = %v, want 0", frame.Dt)
	}
	if frame.SimTime != prev {
		t.Errorf("SimTime moved on a zero frame: %v -> %v", prev, frame.SimTime)
	}
	if !frame.Now.Equal(testEpoch.Add(time.Second)) {
		t.Errorf("Now = %v, want %v", frame.Now, testEpoch.Add(time.Second))
	}
	if frame.AutoLightning {
		t.Error("AutoLightning = true, test world disables it")
	}
}
