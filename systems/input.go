package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

type ActionID int

const (
	ActionPresetClear ActionID = iota
	ActionPresetLightRain
	ActionPresetHeavyRain
	ActionPresetStorm
	ActionLightning
	ActionLightningClick
	ActionRestart
	ActionToggleAuto
	ActionToggleDebug
	ActionCount
)

// InputBinding maps an action to physical inputs. One of Modifiers, when set,
// must be held as well.
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
	Modifiers    []ebiten.Key
}

var Bindings = map[ActionID]InputBinding{
	ActionPresetClear:     {Keys: []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1}},
	ActionPresetLightRain: {Keys: []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2}},
	ActionPresetHeavyRain: {Keys: []ebiten.Key{ebiten.KeyDigit3, ebiten.KeyNumpad3}},
	ActionPresetStorm:     {Keys: []ebiten.Key{ebiten.KeyDigit4, ebiten.KeyNumpad4}},
	ActionLightning:       {Keys: []ebiten.Key{ebiten.KeySpace}},
	ActionLightningClick: {
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
		Modifiers:    []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	},
	ActionRestart:     {Keys: []ebiten.Key{ebiten.KeyR}},
	ActionToggleAuto:  {Keys: []ebiten.Key{ebiten.KeyA}},
	ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF1}},
}

// UpdateInput polls raw input into the Input singleton.
// Must run before UpdateControls.
func UpdateInput(e *ecs.ECS) {
	input := getInput(e)
	input.Previous = input.Current
	input.Current = [ActionCount]bool{}

	for actionID, binding := range Bindings {
		if len(binding.Modifiers) > 0 && !anyKeyPressed(binding.Modifiers) {
			continue
		}
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
	}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// JustPressed reports a press that started this frame.
func (i *InputData) JustPressed(id ActionID) bool {
	return i.Current[id] && !i.Previous[id]
}
