package simulation

import (
	gomath "math"
	"testing"

	"github.com/automoto/squall/components"
	"github.com/automoto/squall/shared/rng"
	"github.com/yohamta/donburi"
)

func TestApplyLayerPreset(t *testing.T) {
	tests := []struct {
		preset string
		layers int
	}{
		{"clear", 1},
		{"light-rain", 1},
		{"heavy-rain", 2},
		{"storm", 3},
	}

	w, _ := newTestWorld(t, rng.New(1))
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			if !ApplyLayerPreset(w, tt.preset) {
				t.Fatalf("preset %q not applied", tt.preset)
			}
			layers := Layers(w)
			if len(layers) != tt.layers {
				t.Fatalf("%d layers, want %d", len(layers), tt.layers)
			}
			for i, l := range layers {
				if l.Index != i {
					t.Errorf("layer %d has Index %d", i, l.Index)
				}
				if want := 0.1 + l.Intensity*0.3; gomath.Abs(l.Opacity-want) > 1e-9 {
					t.Errorf("layer %d opacity = %v, want %v", i, l.Opacity, want)
				}
				if l.Offset != 0 {
					t.Errorf("layer %d starts at offset %v", i, l.Offset)
				}
			}
		})
	}
}

func TestApplyLayerPresetUnknown(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(2))
	ApplyLayerPreset(w, "storm")

	if ApplyLayerPreset(w, "fog-bank") {
		t.Error("unknown preset reported as applied")
	}
	if got := len(Layers(w)); got != 3 {
		t.Errorf("%d layers after unknown preset, want the previous 3", got)
	}
}

func TestUpdateAtmosphereScrollsAndWraps(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(3))
	ApplyLayerPreset(w, "storm")

	step(w, 1, UpdateAtmosphere)
	for _, l := range Layers(w) {
		if l.Offset != l.Speed {
			t.Errorf("offset = %v after one frame, want speed %v", l.Offset, l.Speed)
		}
	}

	components.Layer.Each(w, func(e *donburi.Entry) {
		components.Layer.Get(e).Offset = testWidth - 1
	})
	step(w, 1, UpdateAtmosphere)
	for _, l := range Layers(w) {
		if l.Offset != 0 {
			t.Errorf("offset = %v, want wrap to 0", l.Offset)
		}
	}
}
