package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// LightningEvent is published once per strike
type LightningEvent struct {
	Bolt   donburi.Entity
	Start  math.Vec2
	End    math.Vec2
	At     time.Time
	Manual bool
}

var LightningTriggered = events.NewEventType[LightningEvent]()
