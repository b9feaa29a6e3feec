package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/fonts"
	"github.com/automoto/squall/shared/weathermath"
	"github.com/automoto/squall/simulation"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Controller is the part of the engine the panel drives.
type Controller interface {
	ApplyPreset(name string) bool
	SetSetting(key cfg.SettingKey, value float64) bool
	Settings() components.WeatherSettings
	ManualLightningTrigger() bool
	AutoLightning() bool
	SetAutoLightning(enabled bool)
}

// ControlsUI is the weather control panel drawn over the simulation.
type ControlsUI struct {
	UI         *ebitenui.UI
	controller Controller

	statusLabel   *widget.Label
	countLabel    *widget.Label
	valueLabels   map[cfg.SettingKey]*widget.Label
	autoButton    *widget.Button
	presetButtons map[cfg.PresetID]*widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewControlsUI builds the panel. fonts must be loaded first.
func NewControlsUI(controller Controller) *ControlsUI {
	cui := &ControlsUI{
		controller:    controller,
		valueLabels:   make(map[cfg.SettingKey]*widget.Label),
		presetButtons: make(map[cfg.PresetID]*widget.Button),
		titleFace:     fonts.Title.UIFace(),
		normalFace:    fonts.Regular.UIFace(),
		smallFace:     fonts.Small.UIFace(),
	}
	cui.buildUI()
	return cui
}

func (cui *ControlsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(cfg.Controls.PanelMargin)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Controls.PanelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("WEATHER", &cui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	cui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.normalFace, &widget.LabelColor{
			Idle: cfg.LightBlue,
		}),
	)
	panel.AddChild(cui.statusLabel)

	panel.AddChild(cui.buildPresetRows())
	for _, def := range cfg.Controls.Settings {
		panel.AddChild(cui.buildSettingRow(def))
	}
	panel.AddChild(cui.buildLightningRow())

	cui.countLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 200, 255},
		}),
	)
	panel.AddChild(cui.countLabel)

	rootContainer.AddChild(panel)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildPresetRows lays the preset buttons out two per row.
func (cui *ControlsUI) buildPresetRows() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	var row *widget.Container
	for i, id := range cfg.Weather.Order {
		if i%2 == 0 {
			row = widget.NewContainer(
				widget.ContainerOpts.Layout(widget.NewRowLayout(
					widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
					widget.RowLayoutOpts.Spacing(4),
				)),
			)
			container.AddChild(row)
		}

		preset, _ := cfg.Preset(string(id))
		name := string(id)
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 22)),
			widget.ButtonOpts.Image(cui.buttonImage()),
			widget.ButtonOpts.Text(fmt.Sprintf("%d %s", i+1, preset.Label), &cui.smallFace, cui.buttonTextColor()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				cui.controller.ApplyPreset(name)
			}),
		)
		cui.presetButtons[id] = button
		row.AddChild(button)
	}
	return container
}

func (cui *ControlsUI) buildSettingRow(def cfg.SettingDef) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	label := widget.NewLabel(
		widget.LabelOpts.Text("", &cui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	cui.valueLabels[def.Key] = label
	row.AddChild(label)

	key := def.Key
	for _, delta := range []float64{-cfg.Controls.Step, cfg.Controls.Step} {
		symbol := "+"
		if delta < 0 {
			symbol = "-"
		}
		d := delta
		row.AddChild(widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(28, 22)),
			widget.ButtonOpts.Image(cui.buttonImage()),
			widget.ButtonOpts.Text(symbol, &cui.normalFace, cui.buttonTextColor()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				current, _ := settingValue(cui.controller.Settings(), key)
				cui.controller.SetSetting(key, StepSetting(current, d))
			}),
		))
	}
	return row
}

func (cui *ControlsUI) buildLightningRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	row.AddChild(widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 24)),
		widget.ButtonOpts.Image(cui.strikeButtonImage()),
		widget.ButtonOpts.Text("Lightning", &cui.normalFace, cui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			cui.controller.ManualLightningTrigger()
		}),
	))

	cui.autoButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 24)),
		widget.ButtonOpts.Image(cui.buttonImage()),
		widget.ButtonOpts.Text("", &cui.smallFace, cui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			cui.controller.SetAutoLightning(!cui.controller.AutoLightning())
		}),
	)
	row.AddChild(cui.autoButton)
	return row
}

func (cui *ControlsUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (cui *ControlsUI) strikeButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.DarkBlue),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 130, 200, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 70, 120, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 60, 255}),
	}
}

func (cui *ControlsUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.RGBA{255, 255, 255, 255},
		Hover:    color.RGBA{255, 255, 200, 255},
		Pressed:  color.RGBA{200, 200, 200, 255},
		Disabled: color.RGBA{100, 100, 100, 255},
	}
}

// UpdateUI refreshes every label from snap.
func (cui *ControlsUI) UpdateUI(snap *simulation.Snapshot) {
	cui.statusLabel.Label = snap.Status
	cui.countLabel.Label = fmt.Sprintf("%d particles, %d strikes", snap.ParticleCount, snap.Strikes)

	for key, label := range cui.valueLabels {
		v, _ := settingValue(snap.Settings, key)
		label.Label = fmt.Sprintf("%s: %.0f", settingLabel(key), v)
	}

	if textWidget := cui.autoButton.Text(); textWidget != nil {
		if snap.AutoLightning {
			textWidget.Label = "Auto: On"
		} else {
			textWidget.Label = "Auto: Off"
		}
	}

	for id, button := range cui.presetButtons {
		button.GetWidget().Disabled = snap.Preset == string(id)
	}
}

// Update runs the widgets, then refreshes labels from the frame's snapshot.
// Clicks take effect on the engine immediately and show on the next frame.
func (cui *ControlsUI) Update(snap *simulation.Snapshot) {
	cui.UI.Update()
	cui.UpdateUI(snap)
}

// StepSetting moves a setting by delta, kept inside the slider range.
func StepSetting(current, delta float64) float64 {
	return weathermath.Clamp(current+delta, cfg.Controls.SettingMin, cfg.Controls.SettingMax)
}

func settingValue(s components.WeatherSettings, key cfg.SettingKey) (float64, bool) {
	switch key {
	case cfg.SettingRain:
		return s.RainIntensity, true
	case cfg.SettingWind:
		return s.WindStrength, true
	case cfg.SettingCloud:
		return s.CloudCoverage, true
	case cfg.SettingFog:
		return s.FogIntensity, true
	}
	return 0, false
}

func settingLabel(key cfg.SettingKey) string {
	for _, def := range cfg.Controls.Settings {
		if def.Key == key {
			return def.Label
		}
	}
	return string(key)
}
