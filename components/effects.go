package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// WindStreakData is a short horizontal streak drawn in strong wind
type WindStreakData struct {
	Position math.Vec2
	Velocity math.Vec2
	Life     float64
	MaxLife  float64
	Size     float64
	Opacity  float64
}

var WindStreak = donburi.NewComponentType[WindStreakData]()

// SplashData is one droplet thrown up when rain hits the ground
type SplashData struct {
	Position math.Vec2
	Velocity math.Vec2
	Life     float64
	MaxLife  float64
	Size     float64
	Gravity  float64
}

var Splash = donburi.NewComponentType[SplashData]()

// Opacity returns the remaining life fraction
func (s *SplashData) Opacity() float64 {
	if s.MaxLife <= 0 || s.Life <= 0 {
		return 0
	}
	return min(s.Life/s.MaxLife, 1)
}
