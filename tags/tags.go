package tags

import "github.com/yohamta/donburi"

var (
	Rain       = donburi.NewTag().SetName("Rain")
	Mist       = donburi.NewTag().SetName("Mist")
	Pooled     = donburi.NewTag().SetName("Pooled")
	Cloud      = donburi.NewTag().SetName("Cloud")
	Bolt       = donburi.NewTag().SetName("Bolt")
	Flash      = donburi.NewTag().SetName("Flash")
	Layer      = donburi.NewTag().SetName("Layer")
	WindStreak = donburi.NewTag().SetName("WindStreak")
	Splash     = donburi.NewTag().SetName("Splash")
	Ground     = donburi.NewTag().SetName("Ground")
)

// Resolv tags for collision
const (
	ResolvGround = "ground"
	ResolvProbe  = "probe"
)
