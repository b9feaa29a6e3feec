package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type LayerData struct {
	Intensity float64
	Height    float64
	Speed     float64
	Color     color.NRGBA
	Offset    float64
	Opacity   float64
	Index     int // draw order within the active preset
}

var Layer = donburi.NewComponentType[LayerData]()
