package components

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type BoltData struct {
	Points     []math.Vec2
	Branches   [][]math.Vec2
	Life       float64
	MaxLife    float64
	Width      float64
	Brightness float64
	Color      color.RGBA
}

var Bolt = donburi.NewComponentType[BoltData]()

// Opacity returns the remaining life fraction
func (b *BoltData) Opacity() float64 {
	if b.MaxLife <= 0 || b.Life <= 0 {
		return 0
	}
	return min(b.Life/b.MaxLife, 1)
}

// LightningFlashData is the full-screen brightening that accompanies a bolt
type LightningFlashData struct {
	Life      float64
	MaxLife   float64
	Intensity float64
	FadeRate  float64
}

var LightningFlash = donburi.NewComponentType[LightningFlashData]()

// LightningStateData tracks auto-trigger state (singleton)
type LightningStateData struct {
	AutoLightning bool
	LastLightning time.Time // zero until the first strike
	Strikes       int
}

var LightningState = donburi.NewComponentType[LightningStateData]()
