package components

import (
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/shared/simclock"
	"github.com/yohamta/donburi"
)

// RuntimeData carries the injected random source and clock (singleton)
type RuntimeData struct {
	Rand  rng.Source
	Clock simclock.TimeProvider
}

var Runtime = donburi.NewComponentType[RuntimeData]()
