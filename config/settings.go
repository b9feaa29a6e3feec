package config

// SettingKey names one of the four weather settings
type SettingKey string

const (
	SettingRain  SettingKey = "rainIntensity"
	SettingWind  SettingKey = "windStrength"
	SettingCloud SettingKey = "cloudCoverage"
	SettingFog   SettingKey = "fogIntensity"
)

// SettingDef describes how a setting is shown in the control panel
type SettingDef struct {
	Key   SettingKey
	Label string
}

// ControlsConfig contains control panel configuration
type ControlsConfig struct {
	Settings    []SettingDef
	Step        float64 // change per +/- press
	SettingMin  float64
	SettingMax  float64
	PanelWidth  int
	PanelMargin int
}

// Controls is the global control panel configuration
var Controls ControlsConfig

func init() {
	Controls = ControlsConfig{
		Settings: []SettingDef{
			{Key: SettingRain, Label: "Rain"},
			{Key: SettingWind, Label: "Wind"},
			{Key: SettingCloud, Label: "Clouds"},
			{Key: SettingFog, Label: "Fog"},
		},
		Step:        5,
		SettingMin:  0,
		SettingMax:  100,
		PanelWidth:  220,
		PanelMargin: 8,
	}
}
