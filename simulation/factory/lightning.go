package factory

import (
	"image/color"
	gomath "math"

	"github.com/automoto/squall/archetypes"
	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/shared/weathermath"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// NewBolt generates a jagged path of segments+1 points from start to end
// with 3-6 side branches.
func NewBolt(r rng.Source, start, end math.Vec2, segments int) components.BoltData {
	c := cfg.Lightning
	if segments < 3 {
		segments = 3
	}

	bolt := components.BoltData{
		Points:     make([]math.Vec2, 0, segments+1),
		Life:       c.BoltLife,
		MaxLife:    c.BoltLife,
		Width:      rng.Range(r, c.WidthMin, c.WidthMax),
		Brightness: rng.Range(r, c.BrightnessMin, c.BrightnessMax),
		Color:      boltColor(r),
	}

	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		x := start.X + (end.X-start.X)*t + rng.Centered(r, c.JitterX)*weathermath.EdgeTaper(t)
		y := start.Y + (end.Y-start.Y)*t + rng.Centered(r, c.JitterY)
		bolt.Points = append(bolt.Points, math.Vec2{X: x, Y: y})
	}

	branches := c.BranchesMin + r.IntN(c.BranchesSpread)
	bolt.Branches = make([][]math.Vec2, 0, branches)
	for i := 0; i < branches; i++ {
		bolt.Branches = append(bolt.Branches, newBranch(r, bolt.Points, segments))
	}

	return bolt
}

// newBranch forks off an interior point. Each branch point draws its own
// heading and distance from the shared origin.
func newBranch(r rng.Source, points []math.Vec2, segments int) []math.Vec2 {
	c := cfg.Lightning
	origin := points[r.IntN(segments-2)+1]
	n := c.BranchPtsMin + r.IntN(c.BranchPtsSpan)

	branch := make([]math.Vec2, 0, n)
	for j := 0; j < n; j++ {
		angle := rng.Centered(r, c.BranchSpread)
		distance := rng.Range(r, c.BranchDistMin, c.BranchDistMax)
		step := distance * float64(j+1) / float64(n)
		branch = append(branch, math.Vec2{
			X: origin.X + gomath.Cos(angle)*step,
			Y: origin.Y + gomath.Sin(angle)*step,
		})
	}
	return branch
}

func boltColor(r rng.Source) color.RGBA {
	c := cfg.Lightning
	hue := rng.Range(r, c.HueMin, c.HueMax)
	light := rng.Range(r, c.LightnessMin, c.LightnessMax)
	cr, cg, cb := colorful.Hsl(hue, c.Saturation, light).Clamped().RGB255()
	return color.RGBA{R: cr, G: cg, B: cb, A: 255}
}

func NewFlash(r rng.Source) components.LightningFlashData {
	c := cfg.Lightning
	return components.LightningFlashData{
		Life:      c.FlashLife,
		MaxLife:   c.FlashLife,
		Intensity: rng.Range(r, c.FlashIntensityMin, c.FlashIntensityMax),
		FadeRate:  c.FlashFadeRate,
	}
}

func CreateBolt(w donburi.World, bolt components.BoltData) *donburi.Entry {
	e := archetypes.Bolt.Spawn(w)
	components.Bolt.SetValue(e, bolt)
	return e
}

func CreateFlash(w donburi.World, flash components.LightningFlashData) *donburi.Entry {
	e := archetypes.Flash.Spawn(w)
	components.LightningFlash.SetValue(e, flash)
	return e
}
