package factory

import (
	"github.com/automoto/squall/archetypes"
	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/yohamta/donburi"
)

// NewLayer converts a preset band into live layer state.
func NewLayer(p cfg.LayerPreset, index int) components.LayerData {
	return components.LayerData{
		Intensity: p.Intensity,
		Height:    p.Height,
		Speed:     p.Speed,
		Color:     p.Color,
		Opacity:   cfg.Atmosphere.BaseOpacity + p.Intensity*cfg.Atmosphere.IntensityOpacity,
		Index:     index,
	}
}

func CreateLayer(w donburi.World, p cfg.LayerPreset, index int) *donburi.Entry {
	e := archetypes.Layer.Spawn(w)
	components.Layer.SetValue(e, NewLayer(p, index))
	return e
}
