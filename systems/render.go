package systems

import (
	"image/color"
	gomath "math"

	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

const blobSize = 64

var (
	// blob is a white disc fading to transparent at its rim. Clouds, mist
	// and layer ellipses are all drawn by scaling and tinting it.
	blob       *ebiten.Image
	discSprite *ebiten.Image
	blobDrawOp = &ebiten.DrawImageOptions{}
)

// DrawWeather renders the snapshot onto the persistent canvas, then copies
// the canvas to the screen. The canvas is only partially cleared each frame
// so fast rain leaves short trails.
func DrawWeather(e *ecs.ECS, screen *ebiten.Image) {
	snap := &getSim(e).Snapshot
	canvas := getCanvas(e, screen)
	loadSprites()

	b := canvas.Bounds()
	vector.FillRect(canvas, 0, 0, float32(b.Dx()), float32(b.Dy()), withAlpha(cfg.Render.Background, 0.1), false)

	drawClouds(canvas, snap.Clouds)
	drawFlashes(canvas, snap.Flashes)
	drawBolts(canvas, snap.Bolts)
	drawParticles(canvas, snap.Particles)
	drawLayers(canvas, snap)
	drawWindStreaks(canvas, snap.WindStreaks)
	drawSplashes(canvas, snap.Splashes)
	drawFog(canvas, snap.Settings.FogIntensity/100)

	screen.DrawImage(canvas, nil)
}

func getCanvas(e *ecs.ECS, screen *ebiten.Image) *ebiten.Image {
	render := Render.Get(Render.MustFirst(e.World))
	sb := screen.Bounds()
	if render.Canvas == nil || render.Canvas.Bounds().Size() != sb.Size() {
		if render.Canvas != nil {
			render.Canvas.Deallocate()
		}
		render.Canvas = ebiten.NewImage(sb.Dx(), sb.Dy())
		render.Canvas.Fill(cfg.Render.Background)
	}
	return render.Canvas
}

func loadSprites() {
	if blob != nil {
		return
	}

	pix := make([]byte, blobSize*blobSize*4)
	r := float64(blobSize) / 2
	for y := 0; y < blobSize; y++ {
		for x := 0; x < blobSize; x++ {
			d := gomath.Hypot(float64(x)+0.5-r, float64(y)+0.5-r) / r
			a := uint8(255 * max(0, 1-d))
			i := (y*blobSize + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = a, a, a, a
		}
	}
	blob = ebiten.NewImage(blobSize, blobSize)
	blob.WritePixels(pix)

	discSprite = ebiten.NewImage(blobSize, blobSize)
	vector.FillCircle(discSprite, float32(r), float32(r), float32(r), color.White, true)
}

// drawSprite draws img centred on (x, y) with radii rx, ry.
func drawSprite(dst, img *ebiten.Image, x, y, rx, ry float64, c color.Color, alpha float64) {
	if alpha <= 0 || rx <= 0 || ry <= 0 {
		return
	}
	half := float64(blobSize) / 2
	blobDrawOp.GeoM.Reset()
	blobDrawOp.GeoM.Translate(-half, -half)
	blobDrawOp.GeoM.Scale(rx/half, ry/half)
	blobDrawOp.GeoM.Translate(x, y)
	blobDrawOp.ColorScale.Reset()
	blobDrawOp.ColorScale.ScaleWithColor(c)
	blobDrawOp.ColorScale.ScaleAlpha(float32(min(alpha, 1)))
	blobDrawOp.Filter = ebiten.FilterLinear
	dst.DrawImage(img, blobDrawOp)
}

// cloudColor greys a cloud's tint by how dark the storm has made it.
func cloudColor(cloud components.CloudData, shade float64) color.Color {
	rc := cfg.Render
	l := (rc.CloudLightness - cloud.Darkening*rc.CloudDarkening - shade) / 255
	grey := colorful.Color{R: l, G: l, B: l + 20.0/255}
	tint, _ := colorful.MakeColor(cloud.Tint)
	r, g, b := grey.BlendRgb(tint, 0.25).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func drawClouds(dst *ebiten.Image, clouds []components.CloudData) {
	for _, cloud := range clouds {
		core := cloudColor(cloud, 0)
		rim := cloudColor(cloud, 50)
		for _, seg := range cloud.Segments {
			x := cloud.Position.X + seg.Offset.X
			y := cloud.Position.Y + seg.Offset.Y
			alpha := seg.Opacity * cloud.Opacity
			drawSprite(dst, blob, x, y, seg.Radius, seg.Radius, rim, alpha)
			drawSprite(dst, blob, x, y, seg.Radius*0.7, seg.Radius*0.7, core, alpha*0.7)
		}
	}
}

func drawFlashes(dst *ebiten.Image, flashes []components.LightningFlashData) {
	b := dst.Bounds()
	for _, f := range flashes {
		c := withAlpha(cfg.Render.FlashColor, f.Intensity*cfg.Render.FlashAlphaScale*0.8)
		vector.FillRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
	}
}

func drawBolts(dst *ebiten.Image, bolts []components.BoltData) {
	for _, bolt := range bolts {
		alpha := bolt.Opacity() * bolt.Brightness
		glow := withAlpha(cfg.Render.BoltGlowColor, alpha*0.3)
		core := withAlpha(bolt.Color, alpha)

		glowWidth := bolt.Width * cfg.Render.BoltGlowWidth
		strokePolyline(dst, bolt.Points, glowWidth, glow)
		strokePolyline(dst, bolt.Points, bolt.Width, core)
		for _, branch := range bolt.Branches {
			strokePolyline(dst, branch, glowWidth*0.6, glow)
			strokePolyline(dst, branch, bolt.Width*0.6, core)
		}
	}
}

func strokePolyline(dst *ebiten.Image, pts []math.Vec2, width float64, c color.Color) {
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(dst,
			float32(pts[i-1].X), float32(pts[i-1].Y),
			float32(pts[i].X), float32(pts[i].Y),
			float32(width), c, true)
	}
}

func drawParticles(dst *ebiten.Image, particles []components.ParticleData) {
	rc := cfg.Render
	for _, p := range particles {
		if p.Life <= 0 {
			continue
		}
		switch p.Kind {
		case components.ParticleRain:
			vector.StrokeLine(dst,
				float32(p.Position.X), float32(p.Position.Y),
				float32(p.Position.X-p.Velocity.X*rc.RainTailX), float32(p.Position.Y-p.Velocity.Y*rc.RainTailY),
				float32(p.Size), withAlpha(rc.RainColor, p.Opacity), true)
		case components.ParticleMist:
			drawSprite(dst, blob, p.Position.X, p.Position.Y, p.Size, p.Size, rc.MistColor, p.Opacity*0.8)
		}
	}
}

func drawLayers(dst *ebiten.Image, snap *simulation.Snapshot) {
	rc := cfg.Render
	for _, layer := range snap.Layers {
		c := color.RGBA{R: layer.Color.R, G: layer.Color.G, B: layer.Color.B, A: 255}
		alpha := layer.Opacity * float64(layer.Color.A) / 255
		baseY := snap.Height * rc.LayerBaseY

		for x := -snap.Width; x < snap.Width*2; x += rc.LayerSpacing {
			wave := gomath.Sin((x+layer.Offset)*rc.LayerWaveScale) * layer.Height
			drawSprite(dst, discSprite, x+layer.Offset, baseY+wave, rc.LayerRadiusX, rc.LayerRadiusY, c, alpha)
		}
	}
}

func drawWindStreaks(dst *ebiten.Image, streaks []components.WindStreakData) {
	rc := cfg.Render
	for _, s := range streaks {
		vector.StrokeLine(dst,
			float32(s.Position.X), float32(s.Position.Y),
			float32(s.Position.X-s.Velocity.X*rc.StreakTail), float32(s.Position.Y-s.Velocity.Y*rc.StreakTail),
			float32(s.Size), withAlpha(rc.StreakColor, s.Opacity), true)
	}
}

func drawSplashes(dst *ebiten.Image, splashes []components.SplashData) {
	for _, s := range splashes {
		vector.FillCircle(dst, float32(s.Position.X), float32(s.Position.Y), float32(s.Size),
			withAlpha(cfg.Render.SplashColor, s.Opacity()*0.8), true)
	}
}

// fogStops is the vertical fog gradient: transparent at the top, densest
// at the ground.
var fogStops = []struct{ at, alpha float64 }{
	{0, 0},
	{0.7, 0.3},
	{1, 0.6},
}

const fogBands = 32

func drawFog(dst *ebiten.Image, intensity float64) {
	if intensity <= 0 {
		return
	}
	b := dst.Bounds()
	bandH := float64(b.Dy()) / fogBands
	scale := intensity * cfg.Render.FogAlphaScale

	for i := 0; i < fogBands; i++ {
		t := (float64(i) + 0.5) / fogBands
		c := withAlpha(cfg.Render.FogColor, fogAlphaAt(t)*scale)
		vector.FillRect(dst, 0, float32(float64(i)*bandH), float32(b.Dx()), float32(bandH)+1, c, false)
	}
}

func fogAlphaAt(t float64) float64 {
	for i := 1; i < len(fogStops); i++ {
		lo, hi := fogStops[i-1], fogStops[i]
		if t <= hi.at {
			f := (t - lo.at) / (hi.at - lo.at)
			return lo.alpha + (hi.alpha-lo.alpha)*f
		}
	}
	return fogStops[len(fogStops)-1].alpha
}
