package systems

import (
	"github.com/automoto/squall/components"
	"github.com/automoto/squall/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SimData links the client world to the simulation it draws.
type SimData struct {
	Engine   *simulation.Engine
	Snapshot simulation.Snapshot
	// Strikes received from the engine since the last frame.
	Strikes []components.LightningEvent
}

var Sim = donburi.NewComponentType[SimData]()

type InputData struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// PulseData is the brief whole-screen brighten after a strike.
type PulseData struct {
	Tween *gween.Tween
	Level float32
}

var Pulse = donburi.NewComponentType[PulseData]()

type ThunderData struct {
	Context *audio.Context
	Players []*audio.Player
	Pending int
}

var Thunder = donburi.NewComponentType[ThunderData]()

// RenderData holds the persistent canvas rain trails are drawn onto.
type RenderData struct {
	Canvas *ebiten.Image
}

var Render = donburi.NewComponentType[RenderData]()

type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// NewClientWorld creates the client singletons for engine and subscribes
// to its strikes.
func NewClientWorld(engine *simulation.Engine, debug bool) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	w := e.World

	sim := w.Entry(w.Create(Sim))
	Sim.SetValue(sim, SimData{Engine: engine, Snapshot: engine.Snapshot()})
	engine.OnLightning(func(ev components.LightningEvent) {
		data := Sim.Get(sim)
		data.Strikes = append(data.Strikes, ev)
	})

	w.Create(Input)
	w.Create(Pulse)
	w.Create(Thunder)
	w.Create(Render)

	settings := w.Entry(w.Create(Settings))
	Settings.SetValue(settings, SettingsData{Debug: debug})

	return e
}

func getSim(e *ecs.ECS) *SimData {
	return Sim.Get(Sim.MustFirst(e.World))
}

func getInput(e *ecs.ECS) *InputData {
	return Input.Get(Input.MustFirst(e.World))
}

func getSettings(e *ecs.ECS) *SettingsData {
	return Settings.Get(Settings.MustFirst(e.World))
}
