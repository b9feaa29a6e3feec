package factory

import (
	"github.com/automoto/squall/archetypes"
	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func NewWindStreak(r rng.Source, height float64) components.WindStreakData {
	c := cfg.Effects
	life := rng.Range(r, c.StreakLifeMin, c.StreakLifeMax)
	return components.WindStreakData{
		Position: math.Vec2{X: c.StreakSpawnX, Y: r.Float64() * height},
		Velocity: math.Vec2{
			X: rng.Range(r, c.StreakSpeedMin, c.StreakSpeedMax),
			Y: rng.Centered(r, c.StreakDriftY*2),
		},
		Life:    life,
		MaxLife: life,
		Size:    rng.Range(r, c.StreakSizeMin, c.StreakSizeMax),
		Opacity: rng.Range(r, c.StreakOpacityMin, c.StreakOpacityMax),
	}
}

func CreateWindStreak(w donburi.World, s components.WindStreakData) *donburi.Entry {
	e := archetypes.WindStreak.Spawn(w)
	components.WindStreak.SetValue(e, s)
	return e
}

// NewSplashDrop returns one droplet thrown up from a rain impact at (x, y).
func NewSplashDrop(r rng.Source, x, y float64) components.SplashData {
	c := cfg.Effects
	life := rng.Range(r, c.SplashLifeMin, c.SplashLifeMax)
	return components.SplashData{
		Position: math.Vec2{X: x + rng.Centered(r, c.SplashJitterX), Y: y},
		Velocity: math.Vec2{
			X: rng.Centered(r, c.SplashSpeedX*2),
			Y: -rng.Range(r, c.SplashRiseMin, c.SplashRiseMax),
		},
		Life:    life,
		MaxLife: life,
		Size:    rng.Range(r, c.SplashSizeMin, c.SplashSizeMax),
		Gravity: c.SplashGravity,
	}
}

// CreateSplash spawns a burst of drops, stopping early once limit is
// reached. It returns the number of drops created.
func CreateSplash(w donburi.World, r rng.Source, x, y float64, limit int) int {
	c := cfg.Effects
	count := c.SplashDropsMin + r.IntN(c.SplashDropsSpread)
	created := 0
	for i := 0; i < count && created < limit; i++ {
		e := archetypes.Splash.Spawn(w)
		components.Splash.SetValue(e, NewSplashDrop(r, x, y))
		created++
	}
	return created
}
