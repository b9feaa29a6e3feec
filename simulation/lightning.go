package simulation

import (
	"time"

	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/simulation/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TriggerLightning creates a bolt and flash at a random position, records
// the strike time and queues a LightningTriggered event. It does nothing
// until a viewport exists.
func TriggerLightning(w donburi.World, manual bool) bool {
	vp, ok := viewportOf(w)
	if !ok {
		return false
	}
	r := randOf(w)
	c := cfg.Lightning

	start := math.Vec2{X: r.Float64() * vp.Width, Y: 0}
	end := math.Vec2{
		X: start.X + rng.Centered(r, c.EndSpreadX),
		Y: vp.Height * rng.Range(r, c.EndYMin, c.EndYMax),
	}

	bolt := factory.CreateBolt(w, factory.NewBolt(r, start, end, c.Segments))
	factory.CreateFlash(w, factory.NewFlash(r))

	now := clockOf(w).Now()
	state := lightningStateOf(w)
	state.LastLightning = now
	state.Strikes++

	components.LightningTriggered.Publish(w, components.LightningEvent{
		Bolt:   bolt.Entity(),
		Start:  start,
		End:    end,
		At:     now,
		Manual: manual,
	})
	return true
}

// ManualLightningTrigger strikes immediately, ignoring the auto gate, and
// restarts the cooldown.
func ManualLightningTrigger(w donburi.World) bool {
	return TriggerLightning(w, true)
}

func SetAutoLightning(w donburi.World, enabled bool) {
	lightningStateOf(w).AutoLightning = enabled
}

// UpdateLightning rolls for an automatic strike, then ages bolts and flashes.
func UpdateLightning(w donburi.World) {
	frame := frameOf(w)

	if shouldAutoTrigger(w, frame) {
		TriggerLightning(w, false)
	}

	var expired []*donburi.Entry
	components.Bolt.Each(w, func(e *donburi.Entry) {
		bolt := components.Bolt.Get(e)
		bolt.Life -= frame.Dt
		if bolt.Life <= 0 {
			expired = append(expired, e)
		}
	})
	components.LightningFlash.Each(w, func(e *donburi.Entry) {
		flash := components.LightningFlash.Get(e)
		flash.Life -= frame.Dt
		flash.Intensity *= flash.FadeRate
		if flash.Life <= 0 {
			expired = append(expired, e)
		}
	})
	removeAll(expired)
}

func shouldAutoTrigger(w donburi.World, frame *components.FrameData) bool {
	c := cfg.Lightning
	if !frame.AutoLightning || frame.StormIntensity <= c.AutoThreshold {
		return false
	}

	last := lightningStateOf(w).LastLightning
	if !last.IsZero() && frame.Now.Sub(last) <= time.Duration(c.CooldownMs)*time.Millisecond {
		return false
	}

	return randOf(w).Float64() < frame.StormIntensity*c.ChancePerFrame*frame.Dt
}

// Bolts returns copies of the live bolts.
func Bolts(w donburi.World) []components.BoltData {
	out := make([]components.BoltData, 0, components.Bolt.Count(w))
	components.Bolt.Each(w, func(e *donburi.Entry) {
		bolt := *components.Bolt.Get(e)
		bolt.Points = append([]math.Vec2(nil), bolt.Points...)
		branches := make([][]math.Vec2, len(bolt.Branches))
		for i, b := range bolt.Branches {
			branches[i] = append([]math.Vec2(nil), b...)
		}
		bolt.Branches = branches
		out = append(out, bolt)
	})
	return out
}

// Flashes returns copies of the live flashes.
func Flashes(w donburi.World) []components.LightningFlashData {
	out := make([]components.LightningFlashData, 0, components.LightningFlash.Count(w))
	components.LightningFlash.Each(w, func(e *donburi.Entry) {
		out = append(out, *components.LightningFlash.Get(e))
	})
	return out
}

func ClearLightning(w donburi.World) {
	var entries []*donburi.Entry
	components.Bolt.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	components.LightningFlash.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	removeAll(entries)
}
