package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CloudSegment is one lobe of a cloud, relative to the cloud centre
type CloudSegment struct {
	Offset  math.Vec2
	Radius  float64
	Opacity float64
}

type CloudData struct {
	Position  math.Vec2
	Size      float64
	Speed     float64
	Opacity   float64
	Darkening float64 // 0..1
	Tint      color.RGBA
	Segments  []CloudSegment
	Seq       int // spawn order, used when trimming the population
}

var Cloud = donburi.NewComponentType[CloudData]()

// CloudFieldData holds the cloud system inputs (singleton)
type CloudFieldData struct {
	Coverage   float64 // 0..1
	WindSpeed  float64 // windStrength/50
	Storminess float64 // 0..1
	NextSeq    int
}

var CloudField = donburi.NewComponentType[CloudFieldData]()
