package scenes

import (
	"sync"

	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/simulation"
	"github.com/automoto/squall/systems"
	"github.com/automoto/squall/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	LayerWeather ecs.LayerID = iota
	LayerOverlay
)

// WeatherScene draws one simulation and the control panel over it.
type WeatherScene struct {
	ecs        *ecs.ECS
	engine     *simulation.Engine
	controlsUI *ui.ControlsUI
	mute       bool
	once       sync.Once
}

// NewWeatherScene wraps engine. The engine is started on the first update.
func NewWeatherScene(engine *simulation.Engine, mute bool) *WeatherScene {
	return &WeatherScene{engine: engine, mute: mute}
}

func (ws *WeatherScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	snap := &systems.Sim.Get(systems.Sim.MustFirst(ws.ecs.World)).Snapshot
	ws.controlsUI.Update(snap)
}

func (ws *WeatherScene) Draw(screen *ebiten.Image) {
	if ws.ecs == nil {
		screen.Fill(cfg.Render.Background)
		return
	}
	ws.ecs.Draw(screen)
	ws.controlsUI.UI.Draw(screen)
}

func (ws *WeatherScene) configure() {
	ws.ecs = systems.NewClientWorld(ws.engine, cfg.Debug.Overlay)

	// Input before anything that reads it
	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.UpdateControls)

	ws.ecs.AddSystem(systems.UpdateSimulation)
	ws.ecs.AddSystem(systems.UpdateStrikes)
	ws.ecs.AddSystem(systems.UpdatePulse)
	if !ws.mute {
		ws.ecs.AddSystem(systems.UpdateThunder)
	}

	ws.ecs.AddRenderer(LayerWeather, systems.DrawWeather)
	ws.ecs.AddRenderer(LayerWeather, systems.DrawPulse)
	ws.ecs.AddRenderer(LayerOverlay, systems.DrawHUD)
	ws.ecs.AddRenderer(LayerOverlay, systems.DrawDebug)

	ws.controlsUI = ui.NewControlsUI(ws.engine)

	ws.engine.Start(ws.engine.Now())
}
