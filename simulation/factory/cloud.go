package factory

import (
	"image/color"
	gomath "math"

	"github.com/automoto/squall/archetypes"
	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// NewCloud builds a cloud with freshly generated segments and tint.
func NewCloud(r rng.Source, x, y, size, speed float64) components.CloudData {
	c := cfg.Cloud
	return components.CloudData{
		Position: math.Vec2{X: x, Y: y},
		Size:     size,
		Speed:    speed,
		Opacity:  rng.Range(r, c.InitialOpacityMin, c.InitialOpacityMax),
		Segments: NewCloudSegments(r, size),
		Tint:     cloudTint(r),
	}
}

// NewCloudSegments lays count lobes around an ellipse, count in
// [SegmentsMin, SegmentsMin+SegmentsSpread).
func NewCloudSegments(r rng.Source, size float64) []components.CloudSegment {
	c := cfg.Cloud
	count := c.SegmentsMin + r.IntN(c.SegmentsSpread)
	segments := make([]components.CloudSegment, 0, count)

	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * gomath.Pi * 2
		radius := size * rng.Range(r, c.RingRadiusMin, c.RingRadiusMax)
		offsetX := gomath.Cos(angle) * radius * rng.Range(r, c.OffsetXScaleMin, c.OffsetXScaleMax)
		offsetY := gomath.Sin(angle) * radius * rng.Range(r, c.OffsetYScaleMin, c.OffsetYScaleMax)

		segments = append(segments, components.CloudSegment{
			Offset:  math.Vec2{X: offsetX, Y: offsetY},
			Radius:  size * rng.Range(r, c.SegmentRadiusMin, c.SegmentRadiusMax),
			Opacity: rng.Range(r, c.SegmentOpacityMin, c.SegmentOpacityMax),
		})
	}
	return segments
}

func cloudTint(r rng.Source) color.RGBA {
	c := cfg.Cloud
	hue := rng.Range(r, c.TintHueMin, c.TintHueMax)
	light := rng.Range(r, c.TintLightnessMin, c.TintLightnessMax)
	cr, cg, cb := colorful.Hsl(hue, c.TintSaturation, light).Clamped().RGB255()
	return color.RGBA{R: cr, G: cg, B: cb, A: 255}
}

// CreateCloud spawns a cloud with a random size and speed at (x, y).
func CreateCloud(w donburi.World, r rng.Source, x, y float64) *donburi.Entry {
	c := cfg.Cloud
	size := rng.Range(r, c.SizeMin, c.SizeMax)
	speed := rng.Range(r, c.SpeedMin, c.SpeedMax)

	cloud := archetypes.Cloud.Spawn(w)
	data := NewCloud(r, x, y, size, speed)

	if fieldEntry, ok := components.CloudField.First(w); ok {
		field := components.CloudField.Get(fieldEntry)
		data.Seq = field.NextSeq
		field.NextSeq++
	}

	components.Cloud.SetValue(cloud, data)
	return cloud
}
