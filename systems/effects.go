package systems

import (
	"image/color"

	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/weathermath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStrikes reacts to strikes delivered since the last frame: it
// restarts the brighten pulse and queues one thunder clap per strike.
// Must run after UpdateSimulation and UpdateControls.
func UpdateStrikes(e *ecs.ECS) {
	n := consumeStrikes(e)
	if n == 0 {
		return
	}

	pulse := Pulse.Get(Pulse.MustFirst(e.World))
	pulse.Tween = gween.New(float32(cfg.Render.PulseStrength), 0, float32(cfg.Render.PulseDuration), ease.OutQuad)
	pulse.Level = float32(cfg.Render.PulseStrength)

	thunder := Thunder.Get(Thunder.MustFirst(e.World))
	thunder.Pending += n
}

// UpdatePulse advances the brighten tween by one tick.
func UpdatePulse(e *ecs.ECS) {
	pulse := Pulse.Get(Pulse.MustFirst(e.World))
	if pulse.Tween == nil {
		return
	}
	level, done := pulse.Tween.Update(1 / float32(cfg.C.TPS))
	pulse.Level = level
	if done {
		pulse.Tween = nil
		pulse.Level = 0
	}
}

func DrawPulse(e *ecs.ECS, screen *ebiten.Image) {
	pulse := Pulse.Get(Pulse.MustFirst(e.World))
	if pulse.Level <= 0 {
		return
	}
	c := withAlpha(cfg.Render.FlashColor, float64(pulse.Level))
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}

// withAlpha returns c at opacity a, premultiplied as ebiten expects.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = weathermath.Clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}
