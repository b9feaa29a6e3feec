package config

import "image/color"

// ParticleConfig contains rain and mist particle configuration
type ParticleConfig struct {
	MaxParticles int // hard cap on live particles
	PoolCapacity int // culled particles kept for reuse

	// Spawning
	RainPerIntensity float64 // rain spawned per frame = floor(rain * RainPerIntensity)
	MistChancePerFog float64 // mist spawn probability per frame = fog * MistChancePerFog

	// Wind mapping: wind = windStrength*WindScale + WindOffset
	WindScale  float64
	WindOffset float64

	// Rain
	RainWindFactor  float64 // vx = wind * RainWindFactor
	RainGravity     float64 // added to vy per frame unit
	RainSpawnMargin float64 // x spawn range extends this far beyond both edges
	RainSpawnY      float64
	RainSpeedMin    float64
	RainSpeedMax    float64
	RainLifeMin     float64
	RainLifeMax     float64
	RainSizeMin     float64
	RainSizeMax     float64

	// Mist
	MistDriftX   float64 // initial vx = (r-0.5) * MistDriftX
	MistRiseMin  float64 // initial vy = -[MistRiseMin, MistRiseMax)
	MistRiseMax  float64
	MistLifeMin  float64
	MistLifeMax  float64
	MistSizeMin  float64
	MistSizeMax  float64
	MistJitterX  float64 // random walk applied to vx each frame
	MistJitterY  float64 // random walk applied to vy each frame
	MistGrowth   float64 // size gained per frame unit
	MistOpacity  float64 // opacity multiplier on the life ratio

	// Culling
	CullMarginX      float64
	CullMarginBottom float64
}

// CloudConfig contains cloud layer configuration
type CloudConfig struct {
	CountPerCoverage float64 // target count = floor(coverage * CountPerCoverage)
	UpperBand        float64 // clouds live in the top fraction of the view

	SizeMin  float64
	SizeMax  float64
	SpeedMin float64
	SpeedMax float64

	InitialMargin  float64 // seeded clouds spread over [-margin, width+margin)
	SpawnOffsetMin float64 // reconciled clouds appear at x in (-max, -min]
	SpawnOffsetMax float64
	WindDivisor    float64 // windSpeed = windStrength / WindDivisor

	// Vertical bob
	BobAmplitude  float64
	BobTimeScale  float64 // per millisecond of simulation time
	BobPhaseScale float64 // per pixel of x

	// Opacity before the first storm coupling pass
	InitialOpacityMin float64
	InitialOpacityMax float64

	// Storm coupling: opacity = BaseOpacity + StormOpacity*storminess
	BaseOpacity  float64
	StormOpacity float64

	// Segments
	SegmentsMin        int
	SegmentsSpread     int // count = SegmentsMin + IntN(SegmentsSpread)
	RingRadiusMin      float64
	RingRadiusMax      float64
	OffsetXScaleMin    float64
	OffsetXScaleMax    float64
	OffsetYScaleMin    float64
	OffsetYScaleMax    float64
	SegmentRadiusMin   float64
	SegmentRadiusMax   float64
	SegmentOpacityMin  float64
	SegmentOpacityMax  float64
	TintHueMin         float64
	TintHueMax         float64
	TintSaturation     float64
	TintLightnessMin   float64
	TintLightnessMax   float64
}

// LightningConfig contains bolt, flash and auto-trigger configuration
type LightningConfig struct {
	Segments      int
	BoltLife      float64
	WidthMin      float64
	WidthMax      float64
	BrightnessMin float64
	BrightnessMax float64
	HueMin        float64 // degrees
	HueMax        float64
	Saturation    float64
	LightnessMin  float64
	LightnessMax  float64

	// Geometry
	JitterX        float64
	JitterY        float64
	EndSpreadX     float64 // end x = start x + (r-0.5)*EndSpreadX
	EndYMin        float64 // fraction of height
	EndYMax        float64
	BranchesMin    int
	BranchesSpread int // branches = BranchesMin + IntN(BranchesSpread)
	BranchPtsMin   int
	BranchPtsSpan  int
	BranchSpread   float64 // radians
	BranchDistMin  float64
	BranchDistMax  float64

	// Flash
	FlashLife         float64
	FlashIntensityMin float64
	FlashIntensityMax float64
	FlashFadeRate     float64

	// Auto trigger
	AutoThreshold  float64 // storm intensity must exceed this
	CooldownMs     int64
	ChancePerFrame float64 // scaled by storm intensity and dt
}

// EffectsConfig contains wind streak and splash configuration
type EffectsConfig struct {
	// Wind streaks
	StreakWindThreshold float64 // normalized wind above which streaks appear
	StreakChancePerWind float64
	StreakSpawnX        float64
	StreakSpeedMin      float64
	StreakSpeedMax      float64
	StreakDriftY        float64 // vy in [-drift, drift)
	StreakLifeMin       float64
	StreakLifeMax       float64
	StreakSizeMin       float64
	StreakSizeMax       float64
	StreakOpacityMin    float64 // opacity at spawn
	StreakOpacityMax    float64
	StreakFade          float64 // opacity = life/maxLife * StreakFade once moving
	StreakCullMargin    float64

	// Splashes
	GroundHeight      float64 // ground band at the bottom of the view
	SplashChance      float64
	SplashJitterX     float64 // drops start at x + (r-0.5)*SplashJitterX
	SplashDropsMin    int
	SplashDropsSpread int
	SplashSpeedX      float64 // vx in [-speed, speed)
	SplashRiseMin     float64 // vy in [-max, -min)
	SplashRiseMax     float64
	SplashLifeMin     float64
	SplashLifeMax     float64
	SplashSizeMin     float64
	SplashSizeMax     float64
	SplashGravity     float64
	MaxSplashes       int
}

// AtmosphereConfig contains fog layer configuration
type AtmosphereConfig struct {
	BaseOpacity      float64 // opacity = BaseOpacity + intensity*IntensityOpacity
	IntensityOpacity float64
}

// RenderConfig contains client drawing configuration
type RenderConfig struct {
	Background      color.RGBA
	RainColor       color.RGBA
	MistColor       color.RGBA
	SplashColor     color.RGBA
	StreakColor     color.RGBA
	FogColor        color.RGBA
	FlashColor      color.RGBA
	BoltGlowColor   color.RGBA
	RainTailX       float64 // rain is drawn from (x, y) to (x - vx*RainTailX, y - vy*RainTailY)
	RainTailY       float64
	StreakTail      float64 // wind streak tail = velocity * StreakTail
	CloudLightness  float64 // grey level of an undarkened cloud (0-255)
	CloudDarkening  float64 // grey levels removed at full darkening
	LayerBaseY      float64 // fraction of height the layer wave is centred on
	LayerSpacing    float64 // px between layer ellipses
	LayerRadiusX    float64
	LayerRadiusY    float64
	LayerWaveScale  float64
	FogAlphaScale   float64 // fog overlay alpha = fog * scale
	FlashAlphaScale float64 // flash overlay alpha = intensity * scale
	BoltGlowWidth   float64 // glow stroke width multiplier
	PulseDuration   float64 // seconds of the post-strike brighten tween
	PulseStrength   float64
}

// Config holds general configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Particle ParticleConfig
var Cloud CloudConfig
var Lightning LightningConfig
var Effects EffectsConfig
var Atmosphere AtmosphereConfig
var Render RenderConfig
var Debug DebugConfig

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Overlay bool // show the stats overlay on startup
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	PanelColor   = color.RGBA{R: 20, G: 24, B: 40, A: 200}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Particle = ParticleConfig{
		MaxParticles: 2000,
		PoolCapacity: 100,

		RainPerIntensity: 15,
		MistChancePerFog: 0.1,

		WindScale:  50,
		WindOffset: -25,

		RainWindFactor:  0.5,
		RainGravity:     0.2,
		RainSpawnMargin: 100,
		RainSpawnY:      -10,
		RainSpeedMin:    100,
		RainSpeedMax:    300,
		RainLifeMin:     60,
		RainLifeMax:     100,
		RainSizeMin:     1,
		RainSizeMax:     3,

		MistDriftX:   20,
		MistRiseMin:  10,
		MistRiseMax:  30,
		MistLifeMin:  120,
		MistLifeMax:  300,
		MistSizeMin:  10,
		MistSizeMax:  40,
		MistJitterX:  0.1,
		MistJitterY:  0.05,
		MistGrowth:   0.1,
		MistOpacity:  0.3,

		CullMarginX:      100,
		CullMarginBottom: 50,
	}

	Cloud = CloudConfig{
		CountPerCoverage: 15,
		UpperBand:        0.4,

		SizeMin:  40,
		SizeMax:  120,
		SpeedMin: 0.5,
		SpeedMax: 2.0,

		InitialMargin:  200,
		SpawnOffsetMin: 100,
		SpawnOffsetMax: 300,
		WindDivisor:    50,

		BobAmplitude:  0.1,
		BobTimeScale:  0.001,
		BobPhaseScale: 0.01,

		InitialOpacityMin: 0.3,
		InitialOpacityMax: 0.7,

		BaseOpacity:  0.4,
		StormOpacity: 0.4,

		SegmentsMin:        8,
		SegmentsSpread:     6,
		RingRadiusMin:      0.6,
		RingRadiusMax:      1.0,
		OffsetXScaleMin:    0.7,
		OffsetXScaleMax:    1.3,
		OffsetYScaleMin:    0.4,
		OffsetYScaleMax:    0.7,
		SegmentRadiusMin:   0.3,
		SegmentRadiusMax:   0.7,
		SegmentOpacityMin:  0.5,
		SegmentOpacityMax:  1.0,
		TintHueMin:         200,
		TintHueMax:         230,
		TintSaturation:     0.15,
		TintLightnessMin:   0.75,
		TintLightnessMax:   0.9,
	}

	Lightning = LightningConfig{
		Segments:      20,
		BoltLife:      30,
		WidthMin:      2,
		WidthMax:      6,
		BrightnessMin: 0.8,
		BrightnessMax: 1.0,
		HueMin:        200,
		HueMax:        260,
		Saturation:    1.0,
		LightnessMin:  0.8,
		LightnessMax:  1.0,

		JitterX:        50,
		JitterY:        30,
		EndSpreadX:     200,
		EndYMin:        0.3,
		EndYMax:        0.7,
		BranchesMin:    3,
		BranchesSpread: 4,
		BranchPtsMin:   3,
		BranchPtsSpan:  5,
		BranchSpread:   0.8 * 3.141592653589793,
		BranchDistMin:  20,
		BranchDistMax:  60,

		FlashLife:         20,
		FlashIntensityMin: 0.8,
		FlashIntensityMax: 1.0,
		FlashFadeRate:     0.95,

		AutoThreshold:  0.5,
		CooldownMs:     3000,
		ChancePerFrame: 0.0001,
	}

	Effects = EffectsConfig{
		StreakWindThreshold: 0.3,
		StreakChancePerWind: 0.05,
		StreakSpawnX:        -20,
		StreakSpeedMin:      50,
		StreakSpeedMax:      150,
		StreakDriftY:        10,
		StreakLifeMin:       60,
		StreakLifeMax:       100,
		StreakSizeMin:       0.5,
		StreakSizeMax:       2,
		StreakOpacityMin:    0.3,
		StreakOpacityMax:    0.7,
		StreakFade:          0.6,
		StreakCullMargin:    50,

		GroundHeight:      10,
		SplashChance:      0.3,
		SplashJitterX:     10,
		SplashDropsMin:    3,
		SplashDropsSpread: 5,
		SplashSpeedX:      20,
		SplashRiseMin:     20,
		SplashRiseMax:     50,
		SplashLifeMin:     20,
		SplashLifeMax:     35,
		SplashSizeMin:     1,
		SplashSizeMax:     3,
		SplashGravity:     0.8,
		MaxSplashes:       400,
	}

	Atmosphere = AtmosphereConfig{
		BaseOpacity:      0.1,
		IntensityOpacity: 0.3,
	}

	Render = RenderConfig{
		Background:      color.RGBA{R: 26, G: 26, B: 46, A: 255},
		RainColor:       color.RGBA{R: 173, G: 216, B: 255, A: 255},
		MistColor:       color.RGBA{R: 200, G: 220, B: 255, A: 255},
		SplashColor:     color.RGBA{R: 190, G: 225, B: 255, A: 255},
		StreakColor:     color.RGBA{R: 220, G: 230, B: 255, A: 255},
		FogColor:        color.RGBA{R: 180, G: 190, B: 210, A: 255},
		FlashColor:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		BoltGlowColor:   color.RGBA{R: 180, G: 200, B: 255, A: 255},
		RainTailX:       2,
		RainTailY:       0.5,
		StreakTail:      0.3,
		CloudLightness:  180,
		CloudDarkening:  80,
		LayerBaseY:      0.3,
		LayerSpacing:    100,
		LayerRadiusX:    80,
		LayerRadiusY:    20,
		LayerWaveScale:  0.01,
		FogAlphaScale:   0.4,
		FlashAlphaScale: 0.3,
		BoltGlowWidth:   3,
		PulseDuration:   0.1,
		PulseStrength:   0.25,
	}
}
