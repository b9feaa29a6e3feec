package simulation

import (
	"github.com/automoto/squall/components"
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/shared/simclock"
	"github.com/automoto/squall/simulation/factory"
	"github.com/yohamta/donburi"
)

// GetOrCreateWeather returns the controller singleton entry, creating it if needed
func GetOrCreateWeather(w donburi.World) *donburi.Entry {
	entry, ok := components.Weather.First(w)
	if !ok {
		entry = factory.CreateWeather(w)
	}
	return entry
}

// GetOrCreateRuntime returns the random source and clock, falling back to
// entropy and the system clock when none were registered
func GetOrCreateRuntime(w donburi.World) *components.RuntimeData {
	entry, ok := components.Runtime.First(w)
	if !ok {
		entry = factory.CreateRuntime(w, nil, nil)
	}
	return components.Runtime.Get(entry)
}

// SetViewport creates or resizes the simulated area.
func SetViewport(w donburi.World, width, height float64) {
	if entry, ok := components.Viewport.First(w); ok {
		components.Viewport.SetValue(entry, components.ViewportData{Width: width, Height: height})
		return
	}
	factory.CreateViewport(w, width, height)
}

func viewportOf(w donburi.World) (components.ViewportData, bool) {
	entry, ok := components.Viewport.First(w)
	if !ok {
		return components.ViewportData{}, false
	}
	vp := *components.Viewport.Get(entry)
	if vp.Width <= 0 || vp.Height <= 0 {
		return vp, false
	}
	return vp, true
}

func randOf(w donburi.World) rng.Source {
	return GetOrCreateRuntime(w).Rand
}

func clockOf(w donburi.World) simclock.TimeProvider {
	return GetOrCreateRuntime(w).Clock
}

func frameOf(w donburi.World) *components.FrameData {
	return components.Frame.Get(GetOrCreateWeather(w))
}

func weatherOf(w donburi.World) *components.WeatherData {
	return components.Weather.Get(GetOrCreateWeather(w))
}

func particleFieldOf(w donburi.World) *components.ParticleFieldData {
	return components.ParticleField.Get(GetOrCreateWeather(w))
}

func cloudFieldOf(w donburi.World) *components.CloudFieldData {
	return components.CloudField.Get(GetOrCreateWeather(w))
}

func lightningStateOf(w donburi.World) *components.LightningStateData {
	return components.LightningState.Get(GetOrCreateWeather(w))
}

// removeAll deletes every entry in entries. Callers collect first so no
// entity is removed while a query is iterating.
func removeAll(entries []*donburi.Entry) {
	for _, e := range entries {
		if e.Valid() {
			e.Remove()
		}
	}
}
