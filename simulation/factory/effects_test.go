package factory

import (
	gomath "math"
	"testing"

	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/yohamta/donburi"
)

func TestCreateSplashRespectsLimit(t *testing.T) {
	w := donburi.NewWorld()
	r := rng.New(8)

	if n := CreateSplash(w, r, 100, 500, 2); n > 2 {
		t.Errorf("created %d drops with limit 2", n)
	}
	if n := CreateSplash(w, r, 100, 500, 0); n != 0 {
		t.Errorf("created %d drops with limit 0", n)
	}

	n := CreateSplash(w, r, 100, 500, 100)
	if n < 3 || n > 7 {
		t.Errorf("created %d drops, want 3-7", n)
	}
}

func TestNewSplashDropRises(t *testing.T) {
	r := rng.New(10)
	for i := 0; i < 100; i++ {
		d := NewSplashDrop(r, 50, 400)
		if d.Velocity.Y >= 0 {
			t.Errorf("splash vy = %v, want upward", d.Velocity.Y)
		}
		if d.Life != d.MaxLife {
			t.Errorf("Life %v != MaxLife %v", d.Life, d.MaxLife)
		}
	}
}

func TestNewLayerOpacity(t *testing.T) {
	w := donburi.NewWorld()
	e := CreateLayer(w, layerPreset(0.5), 0)
	if got := components.Layer.Get(e).Opacity; gomath.Abs(got-0.25) > 1e-9 {
		t.Errorf("Opacity = %v, want 0.25", got)
	}
}

func layerPreset(intensity float64) cfg.LayerPreset {
	return cfg.LayerPreset{Intensity: intensity, Height: 10, Speed: 1}
}
