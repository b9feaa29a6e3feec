package simulation

import (
	"testing"
	"time"

	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/shared/simclock"
	"github.com/automoto/squall/simulation/factory"
	"github.com/yohamta/donburi"
)

func TestTriggerLightning(t *testing.T) {
	w, clock := newTestWorld(t, rng.New(1))

	var got []components.LightningEvent
	components.LightningTriggered.Subscribe(w, func(_ donburi.World, ev components.LightningEvent) {
		got = append(got, ev)
	})

	if !TriggerLightning(w, true) {
		t.Fatal("trigger failed with a viewport present")
	}
	if n := components.Bolt.Count(w); n != 1 {
		t.Errorf("%d bolts, want 1", n)
	}
	if n := components.LightningFlash.Count(w); n != 1 {
		t.Errorf("%d flashes, want 1", n)
	}
	if last := lightningStateOf(w).LastLightning; !last.Equal(clock.Now()) {
		t.Errorf("LastLightning = %v, want %v", last, clock.Now())
	}

	components.LightningTriggered.ProcessEvents(w)
	if len(got) != 1 {
		t.Fatalf("%d events delivered, want 1", len(got))
	}
	ev := got[0]
	if !ev.Manual {
		t.Error("event should be marked manual")
	}
	if ev.Start.Y != 0 || ev.Start.X < 0 || ev.Start.X >= testWidth {
		t.Errorf("start %v outside the top edge", ev.Start)
	}
	if ev.End.Y < testHeight*0.3 || ev.End.Y >= testHeight*0.7 {
		t.Errorf("end y %v outside [0.3h, 0.7h)", ev.End.Y)
	}
	if dx := ev.End.X - ev.Start.X; dx < -100 || dx >= 100 {
		t.Errorf("end x offset %v outside [-100, 100)", dx)
	}
}

func TestTriggerLightningWithoutViewport(t *testing.T) {
	w := donburi.NewWorld()
	factory.CreateRuntime(w, rng.New(2), simclock.NewMockTimeProvider(testEpoch))
	factory.CreateWeather(w)

	if TriggerLightning(w, true) {
		t.Error("trigger reported success without a viewport")
	}
	if n := components.Bolt.Count(w); n != 0 {
		t.Errorf("%d bolts created without a viewport", n)
	}
}

func TestBoltAndFlashExpire(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(3))
	ManualLightningTrigger(w)
	start := Flashes(w)[0].Intensity

	step(w, 1, UpdateLightning)
	if got, want := Flashes(w)[0].Intensity, start*cfg.Lightning.FlashFadeRate; got != want {
		t.Errorf("flash intensity = %v, want %v", got, want)
	}

	for i := 1; i < 20; i++ {
		step(w, 1, UpdateLightning)
	}
	if n := len(Flashes(w)); n != 0 {
		t.Errorf("%d flashes after 20 frames, want 0", n)
	}
	if n := len(Bolts(w)); n != 1 {
		t.Errorf("%d bolts after 20 frames, want 1", n)
	}

	for i := 0; i < 10; i++ {
		step(w, 1, UpdateLightning)
	}
	if n := len(Bolts(w)); n != 0 {
		t.Errorf("%d bolts after 30 frames, want 0", n)
	}
}

func TestAutoLightningCooldown(t *testing.T) {
	// every draw is 0, so each roll succeeds once the gates are open
	w, clock := newTestWorld(t, rng.NewSequence(0))
	SetSetting(w, cfg.SettingRain, 95)
	SetAutoLightning(w, true)

	step(w, 1, UpdateLightning)
	if s := lightningStateOf(w).Strikes; s != 1 {
		t.Fatalf("%d strikes on the first storm frame, want 1", s)
	}

	clock.Advance(time.Second)
	step(w, 1, UpdateLightning)
	if s := lightningStateOf(w).Strikes; s != 1 {
		t.Errorf("struck again %v after the last strike", time.Second)
	}

	clock.Advance(2 * time.Second)
	step(w, 1, UpdateLightning)
	if s := lightningStateOf(w).Strikes; s != 1 {
		t.Error("struck at exactly the cooldown; it must be exceeded")
	}

	clock.Advance(time.Millisecond)
	step(w, 1, UpdateLightning)
	if s := lightningStateOf(w).Strikes; s != 2 {
		t.Errorf("%d strikes after the cooldown elapsed, want 2", s)
	}
}

func TestAutoLightningGates(t *testing.T) {
	tests := []struct {
		name string
		rain float64
		auto bool
	}{
		{"auto off", 95, false},
		{"storm at threshold", 50, true},
		{"light rain", 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, clock := newTestWorld(t, rng.NewSequence(0))
			SetSetting(w, cfg.SettingRain, tt.rain)
			SetAutoLightning(w, tt.auto)

			for i := 0; i < 100; i++ {
				clock.Advance(5 * time.Second)
				step(w, 2, UpdateLightning)
			}
			if s := lightningStateOf(w).Strikes; s != 0 {
				t.Errorf("%d strikes, want none", s)
			}
		})
	}
}

func TestManualTriggerResetsCooldown(t *testing.T) {
	w, clock := newTestWorld(t, rng.NewSequence(0))
	SetSetting(w, cfg.SettingRain, 95)
	SetAutoLightning(w, true)

	ManualLightningTrigger(w)
	clock.Advance(time.Second)
	step(w, 1, UpdateLightning)

	if s := lightningStateOf(w).Strikes; s != 1 {
		t.Errorf("%d strikes, want only the manual one", s)
	}
}

func TestBoltsReturnsCopies(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(4))
	ManualLightningTrigger(w)

	bolts := Bolts(w)
	orig := bolts[0].Points[0]
	bolts[0].Points[0].X += 1000
	bolts[0].Branches[0][0].Y += 1000

	again := Bolts(w)
	if again[0].Points[0] != orig {
		t.Error("mutating a returned bolt changed world state")
	}
}

func TestClearLightning(t *testing.T) {
	w, _ := newTestWorld(t, rng.New(5))
	ManualLightningTrigger(w)
	ManualLightningTrigger(w)

	ClearLightning(w)
	if len(Bolts(w)) != 0 || len(Flashes(w)) != 0 {
		t.Error("lightning not cleared")
	}
}
