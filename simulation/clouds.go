package simulation

import (
	gomath "math"
	"sort"

	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/shared/weathermath"
	"github.com/automoto/squall/simulation/factory"
	"github.com/yohamta/donburi"
)

// InitializeClouds replaces the cloud population with floor(coverage*15)
// clouds spread across and beyond the view.
func InitializeClouds(w donburi.World) {
	ClearClouds(w)

	vp, ok := viewportOf(w)
	if !ok {
		return
	}
	r := randOf(w)
	c := cfg.Cloud

	count := targetCloudCount(cloudFieldOf(w).Coverage)
	for i := 0; i < count; i++ {
		x := rng.Range(r, -c.InitialMargin, vp.Width+c.InitialMargin)
		y := r.Float64() * vp.Height * c.UpperBand
		factory.CreateCloud(w, r, x, y)
	}
}

// UpdateClouds drifts, bobs and wraps every cloud, applies the storm
// coupling, then grows or trims the population toward the coverage target.
func UpdateClouds(w donburi.World) {
	vp, ok := viewportOf(w)
	if !ok {
		return
	}
	frame := frameOf(w)
	r := randOf(w)
	c := cfg.Cloud

	components.Cloud.Each(w, func(e *donburi.Entry) {
		cloud := components.Cloud.Get(e)
		cloud.Position.X += cloud.Speed * frame.WindSpeed * frame.Dt
		cloud.Position.Y += gomath.Sin(frame.SimTime*c.BobTimeScale+cloud.Position.X*c.BobPhaseScale) * c.BobAmplitude * frame.Dt

		if cloud.Position.X > vp.Width+cloud.Size*2 {
			cloud.Position.X = -cloud.Size * 2
			cloud.Position.Y = r.Float64() * vp.Height * c.UpperBand
		}

		cloud.Darkening = frame.Storminess
		cloud.Opacity = c.BaseOpacity + c.StormOpacity*frame.Storminess
	})

	reconcileClouds(w, r, vp, targetCloudCount(frame.Coverage))
}

func reconcileClouds(w donburi.World, r rng.Source, vp components.ViewportData, target int) {
	c := cfg.Cloud
	count := CloudCount(w)

	for ; count < target; count++ {
		x := -rng.Range(r, c.SpawnOffsetMin, c.SpawnOffsetMax)
		y := r.Float64() * vp.Height * c.UpperBand
		factory.CreateCloud(w, r, x, y)
	}

	if count <= target {
		return
	}

	// Trim the most recently added clouds first.
	entries := make([]*donburi.Entry, 0, count)
	components.Cloud.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	sort.Slice(entries, func(i, j int) bool {
		return components.Cloud.Get(entries[i]).Seq > components.Cloud.Get(entries[j]).Seq
	})
	removeAll(entries[:count-target])
}

func targetCloudCount(coverage float64) int {
	return int(gomath.Floor(coverage * cfg.Cloud.CountPerCoverage))
}

func CloudCount(w donburi.World) int {
	return components.Cloud.Count(w)
}

// Clouds returns copies of every cloud in draw order, largest first.
func Clouds(w donburi.World) []components.CloudData {
	out := make([]components.CloudData, 0, CloudCount(w))
	components.Cloud.Each(w, func(e *donburi.Entry) {
		cloud := *components.Cloud.Get(e)
		cloud.Segments = append([]components.CloudSegment(nil), cloud.Segments...)
		out = append(out, cloud)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Size != out[j].Size {
			return out[i].Size > out[j].Size
		}
		return out[i].Seq < out[j].Seq
	})
	return out
}

func ClearClouds(w donburi.World) {
	var entries []*donburi.Entry
	components.Cloud.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	removeAll(entries)
}

// SetCoverage sets cloud coverage from a 0-100 value.
func SetCoverage(w donburi.World, v float64) {
	cloudFieldOf(w).Coverage = weathermath.ClampPercent(v) / 100
}

// SetWindSpeed sets cloud drift from a 0-100 wind strength.
func SetWindSpeed(w donburi.World, v float64) {
	cloudFieldOf(w).WindSpeed = weathermath.ClampPercent(v) / cfg.Cloud.WindDivisor
}

// SetStorminess sets cloud darkening, 0-1.
func SetStorminess(w donburi.World, level float64) {
	cloudFieldOf(w).Storminess = weathermath.Clamp01(level)
}

// ApplyCloudPreset sets coverage and storminess from the named preset.
// Unknown names leave the clouds untouched.
func ApplyCloudPreset(w donburi.World, name string) bool {
	p, ok := cfg.Preset(name)
	if !ok {
		return false
	}
	SetCoverage(w, p.Coverage)
	SetStorminess(w, p.Storminess)
	return true
}
