package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate  int
	ThunderVol  float64 // player volume, 0.0 - 1.0
	MaxThunders int     // overlapping thunder players kept alive
}

// ThunderConfig controls procedural thunder synthesis
type ThunderConfig struct {
	DurationMin float64 // seconds
	DurationMax float64
	Decay       float64 // envelope = exp(-t*Decay) * (1 - t/duration)
	NoiseMix    float64
	ToneMix     float64
	ToneFreqMin float64 // Hz
	ToneFreqMax float64
	Gain        float64
}

var Audio AudioConfig
var Thunder ThunderConfig

func init() {
	Audio = AudioConfig{
		SampleRate:  44100,
		ThunderVol:  1.0,
		MaxThunders: 4,
	}

	Thunder = ThunderConfig{
		DurationMin: 2,
		DurationMax: 5,
		Decay:       0.5,
		NoiseMix:    0.7,
		ToneMix:     0.3,
		ToneFreqMin: 50,
		ToneFreqMax: 150,
		Gain:        0.3,
	}
}
