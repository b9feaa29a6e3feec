package simulation

import (
	"sort"

	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/simulation/factory"
	"github.com/yohamta/donburi"
)

// ApplyLayerPreset replaces every atmospheric layer with the preset's bands.
func ApplyLayerPreset(w donburi.World, name string) bool {
	p, ok := cfg.Preset(name)
	if !ok {
		return false
	}
	ClearLayers(w)
	for i, lp := range p.Layers {
		factory.CreateLayer(w, lp, i)
	}
	return true
}

// UpdateAtmosphere scrolls each layer, wrapping its offset past the view width.
func UpdateAtmosphere(w donburi.World) {
	vp, ok := viewportOf(w)
	if !ok {
		return
	}
	frame := frameOf(w)

	components.Layer.Each(w, func(e *donburi.Entry) {
		layer := components.Layer.Get(e)
		layer.Offset += layer.Speed * frame.Dt
		if layer.Offset > vp.Width {
			layer.Offset = 0
		}
	})
}

// Layers returns copies of the active layers in preset order.
func Layers(w donburi.World) []components.LayerData {
	out := make([]components.LayerData, 0, components.Layer.Count(w))
	components.Layer.Each(w, func(e *donburi.Entry) {
		out = append(out, *components.Layer.Get(e))
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func ClearLayers(w donburi.World) {
	var entries []*donburi.Entry
	components.Layer.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	removeAll(entries)
}
