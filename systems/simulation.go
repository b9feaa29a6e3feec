package systems

import (
	"log"

	cfg "github.com/automoto/squall/config"
	"github.com/yohamta/donburi/ecs"
)

var presetActions = map[ActionID]cfg.PresetID{
	ActionPresetClear:     cfg.PresetClear,
	ActionPresetLightRain: cfg.PresetLightRain,
	ActionPresetHeavyRain: cfg.PresetHeavyRain,
	ActionPresetStorm:     cfg.PresetStorm,
}

// UpdateControls turns this frame's actions into engine calls.
func UpdateControls(e *ecs.ECS) {
	input := getInput(e)
	sim := getSim(e)
	engine := sim.Engine

	for action, preset := range presetActions {
		if input.JustPressed(action) {
			engine.ApplyPreset(string(preset))
		}
	}

	if input.JustPressed(ActionLightning) || input.JustPressed(ActionLightningClick) {
		engine.ManualLightningTrigger()
	}
	if input.JustPressed(ActionRestart) {
		engine.Restart(engine.Now())
	}
	if input.JustPressed(ActionToggleAuto) {
		enabled := !engine.AutoLightning()
		engine.SetAutoLightning(enabled)
		log.Printf("Auto lightning: %v", enabled)
	}
	if input.JustPressed(ActionToggleDebug) {
		settings := getSettings(e)
		settings.Debug = !settings.Debug
	}
}

// UpdateSimulation advances the engine to the current time and takes the
// snapshot this frame is drawn from.
func UpdateSimulation(e *ecs.ECS) {
	sim := getSim(e)
	sim.Engine.Tick(sim.Engine.Now())
	sim.Snapshot = sim.Engine.Snapshot()
}

// consumeStrikes returns the strikes since the last call and forgets them.
func consumeStrikes(e *ecs.ECS) int {
	sim := getSim(e)
	n := len(sim.Strikes)
	sim.Strikes = sim.Strikes[:0]
	return n
}
