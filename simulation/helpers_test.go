package simulation

import (
	"testing"
	"time"

	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/shared/simclock"
	"github.com/automoto/squall/simulation/factory"
	"github.com/yohamta/donburi"
)

const (
	testWidth  = 800.0
	testHeight = 600.0
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestWorld builds a world with a viewport, ground and the given random
// source. Auto lightning starts disabled so tests opt in explicitly.
func newTestWorld(t *testing.T, r rng.Source) (donburi.World, *simclock.MockTimeProvider) {
	t.Helper()
	w := donburi.NewWorld()
	clock := simclock.NewMockTimeProvider(testEpoch)
	factory.CreateRuntime(w, r, clock)
	factory.CreateWeather(w)
	SetViewport(w, testWidth, testHeight)
	RebuildGround(w)
	SetAutoLightning(w, false)
	return w, clock
}

// step runs one frame of the given systems.
func step(w donburi.World, dt float64, systems ...func(donburi.World)) {
	BeginFrame(w, dt)
	for _, s := range systems {
		s(w)
	}
}
