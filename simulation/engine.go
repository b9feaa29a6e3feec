package simulation

import (
	"sync"
	"time"

	"github.com/automoto/squall/components"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/shared/simclock"
	"github.com/automoto/squall/simulation/factory"
	"github.com/yohamta/donburi"
)

// Options configures a new Engine. Zero sizes use the configured viewport,
// a nil Rand uses an entropy-seeded source and a nil Clock the system clock.
type Options struct {
	Width  float64
	Height float64
	Rand   rng.Source
	Clock  simclock.TimeProvider
}

// Engine owns one simulation world and serializes every call into it.
type Engine struct {
	world   donburi.World
	frames  *simclock.FrameClock
	running bool
	mu      sync.Mutex
}

// NewEngine creates a stopped engine with the startup settings and an
// empty sky. Call Initialize or ApplyPreset to populate it.
func NewEngine(opts Options) *Engine {
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = float64(cfg.C.Width), float64(cfg.C.Height)
	}

	w := donburi.NewWorld()
	factory.CreateRuntime(w, opts.Rand, opts.Clock)
	factory.CreateWeather(w)
	SetViewport(w, width, height)
	RebuildGround(w)

	return &Engine{
		world:  w,
		frames: simclock.NewFrameClock(),
	}
}

// World exposes the underlying world for read-only inspection in tests.
func (e *Engine) World() donburi.World {
	return e.world
}

// Now reads the engine's clock.
func (e *Engine) Now() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return clockOf(e.world).Now()
}

// Start begins accepting ticks. The first tick after Start advances by 0.
func (e *Engine) Start(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.start(now)
}

func (e *Engine) start(now time.Time) {
	if e.running {
		return
	}
	e.running = true
	e.frames.Start(now)
}

// Stop makes further ticks no-ops.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = false
}

// Restart stops, clears particles and starts again.
func (e *Engine) Restart(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = false
	ClearParticles(e.world)
	e.start(now)
}

func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Tick converts now into a clamped frame delta and advances the
// simulation. It reports false while stopped.
func (e *Engine) Tick(now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return false
	}
	e.update(e.frames.Tick(now))
	return true
}

// Update advances the simulation by dt frame units, clamped to [0, 2].
func (e *Engine) Update(dt float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.update(dt)
}

func (e *Engine) update(dt float64) {
	w := e.world
	BeginFrame(w, dt)

	UpdateParticles(w)
	UpdateEffects(w)
	UpdateClouds(w)
	UpdateAtmosphere(w)
	UpdateLightning(w)

	components.LightningTriggered.ProcessEvents(w)
}

// Initialize seeds the cloud population for the current coverage.
func (e *Engine) Initialize() {
	e.mu.Lock()
	defer e.mu.Unlock()
	InitializeClouds(e.world)
}

// Resize changes the simulated area, rebuilding the ground and reseeding clouds.
func (e *Engine) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	SetViewport(e.world, width, height)
	RebuildGround(e.world)
	InitializeClouds(e.world)
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return TakeSnapshot(e.world)
}

func (e *Engine) ApplyPreset(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ApplyPreset(e.world, name)
}

func (e *Engine) SetSetting(key cfg.SettingKey, value float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return SetSetting(e.world, key, value)
}

func (e *Engine) Settings() components.WeatherSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Settings(e.world)
}

// ManualLightningTrigger strikes now and delivers the event before returning.
func (e *Engine) ManualLightningTrigger() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	ok := ManualLightningTrigger(e.world)
	components.LightningTriggered.ProcessEvents(e.world)
	return ok
}

func (e *Engine) SetAutoLightning(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	SetAutoLightning(e.world, enabled)
}

func (e *Engine) AutoLightning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return lightningStateOf(e.world).AutoLightning
}

// Clear empties every system. Initialize or ApplyPreset repopulates.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	ClearParticles(e.world)
	ClearClouds(e.world)
	ClearLightning(e.world)
	ClearLayers(e.world)
	ClearEffects(e.world)
}

// OnLightning registers sink for every strike. Sinks run while the engine
// lock is held and must not call back into the Engine.
func (e *Engine) OnLightning(sink func(components.LightningEvent)) {
	if sink == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	components.LightningTriggered.Subscribe(e.world, func(_ donburi.World, ev components.LightningEvent) {
		sink(ev)
	})
}
