package simulation

import (
	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/shared/weathermath"
	"github.com/automoto/squall/simulation/factory"
	"github.com/automoto/squall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdateEffects advances wind streaks and splashes, then spawns splashes
// for rain that reached the ground band this frame.
func UpdateEffects(w donburi.World) {
	vp, ok := viewportOf(w)
	if !ok {
		return
	}
	frame := frameOf(w)
	r := randOf(w)

	updateWindStreaks(w, r, frame, vp)
	updateSplashes(w, frame)
	addRainImpacts(w, r, vp)
}

func updateWindStreaks(w donburi.World, r rng.Source, frame *components.FrameData, vp components.ViewportData) {
	c := cfg.Effects
	if frame.Wind > c.StreakWindThreshold && rng.Chance(r, frame.Wind*c.StreakChancePerWind) {
		factory.CreateWindStreak(w, factory.NewWindStreak(r, vp.Height))
	}

	var expired []*donburi.Entry
	components.WindStreak.Each(w, func(e *donburi.Entry) {
		s := components.WindStreak.Get(e)
		s.Life -= frame.Dt
		s.Position.X += s.Velocity.X * frame.Dt
		s.Position.Y += s.Velocity.Y * frame.Dt
		s.Opacity = weathermath.LifeRatio(s.Life, s.MaxLife) * c.StreakFade

		if s.Life <= 0 || s.Position.X > vp.Width+c.StreakCullMargin {
			expired = append(expired, e)
		}
	})
	removeAll(expired)
}

func updateSplashes(w donburi.World, frame *components.FrameData) {
	var expired []*donburi.Entry
	components.Splash.Each(w, func(e *donburi.Entry) {
		s := components.Splash.Get(e)
		s.Life -= frame.Dt
		s.Position.X += s.Velocity.X * frame.Dt
		s.Position.Y += s.Velocity.Y * frame.Dt
		s.Velocity.Y += s.Gravity * frame.Dt

		if s.Life <= 0 {
			expired = append(expired, e)
		}
	})
	removeAll(expired)
}

type impact struct {
	x float64
}

// addRainImpacts probes each rain drop inside the ground band against the
// collision space and throws up a splash for some of them.
func addRainImpacts(w donburi.World, r rng.Source, vp components.ViewportData) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	c := cfg.Effects
	groundTop := vp.Height - c.GroundHeight

	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	var impacts []impact
	liveRain.Each(w, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		if p.Position.Y < groundTop || p.Position.Y > vp.Height {
			return
		}
		probe.X = p.Position.X
		probe.Y = p.Position.Y
		if probe.Check(0, 0, tags.ResolvGround) == nil {
			return
		}
		if rng.Chance(r, c.SplashChance) {
			impacts = append(impacts, impact{x: p.Position.X})
		}
	})

	room := c.MaxSplashes - SplashCount(w)
	for _, im := range impacts {
		if room <= 0 {
			break
		}
		room -= factory.CreateSplash(w, r, im.x, vp.Height, room)
	}
}

// RebuildGround recreates the collision space and ground band for the
// current viewport.
func RebuildGround(w donburi.World) {
	var entries []*donburi.Entry
	components.Space.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	components.Object.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	removeAll(entries)

	vp, ok := viewportOf(w)
	if !ok {
		return
	}
	c := cfg.Effects
	cell := max(int(c.GroundHeight), 1)

	factory.CreateSpace(w, int(vp.Width)+cell, int(vp.Height)+cell*2, cell, cell)
	factory.CreateGround(w, 0, vp.Height-c.GroundHeight, vp.Width, c.GroundHeight)
}

func WindStreaks(w donburi.World) []components.WindStreakData {
	out := make([]components.WindStreakData, 0, components.WindStreak.Count(w))
	components.WindStreak.Each(w, func(e *donburi.Entry) {
		out = append(out, *components.WindStreak.Get(e))
	})
	return out
}

func Splashes(w donburi.World) []components.SplashData {
	out := make([]components.SplashData, 0, SplashCount(w))
	components.Splash.Each(w, func(e *donburi.Entry) {
		out = append(out, *components.Splash.Get(e))
	})
	return out
}

func SplashCount(w donburi.World) int {
	return components.Splash.Count(w)
}

// ClearEffects removes all streaks and splashes. The ground stays.
func ClearEffects(w donburi.World) {
	var entries []*donburi.Entry
	components.WindStreak.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	components.Splash.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	removeAll(entries)
}
