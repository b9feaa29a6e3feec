package main

import (
	"flag"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/fonts"
	"github.com/automoto/squall/scenes"
	"github.com/automoto/squall/shared/rng"
	"github.com/automoto/squall/simulation"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(engine *simulation.Engine, mute bool) *Game {
	fonts.LoadDefaults()

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewWeatherScene(engine, mute),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

func main() {
	preset := flag.String("preset", string(cfg.Weather.DefaultPreset), "Starting weather preset (clear, light-rain, heavy-rain, storm)")
	seed := flag.Int64("seed", 0, "Random seed (0 = random)")
	width := flag.Int("width", cfg.C.Width, "Simulation width in pixels")
	height := flag.Int("height", cfg.C.Height, "Simulation height in pixels")
	autoLightning := flag.Bool("auto-lightning", true, "Strike automatically in heavy rain")
	debug := flag.Bool("debug", false, "Show the debug overlay on startup")
	mute := flag.Bool("mute", false, "Disable thunder audio")
	headless := flag.Bool("headless", false, "Run without a window, logging status lines")
	duration := flag.Duration("duration", 0, "Stop a headless run after this long (0 = until interrupted)")
	flag.Parse()

	if *width > 0 && *height > 0 {
		cfg.C.Width, cfg.C.Height = *width, *height
	}
	cfg.Debug.Overlay = *debug

	var source rng.Source
	if *seed != 0 {
		source = rng.New(*seed)
	}
	engine := simulation.NewEngine(simulation.Options{
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
		Rand:   source,
	})
	if !engine.ApplyPreset(*preset) {
		engine.ApplyPreset(string(cfg.Weather.DefaultPreset))
	}
	engine.Initialize()
	engine.SetAutoLightning(*autoLightning)

	if *headless {
		runHeadless(engine, *duration)
		return
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("Squall")
	ebiten.SetTPS(cfg.C.TPS)

	if err := ebiten.RunGame(NewGame(engine, *mute)); err != nil {
		log.Fatal(err)
	}
}

func runHeadless(engine *simulation.Engine, duration time.Duration) {
	loop := simulation.NewLoop(engine, cfg.C.TPS, cfg.C.TPS*5)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if duration > 0 {
			select {
			case <-sigChan:
			case <-time.After(duration):
			}
		} else {
			<-sigChan
		}
		log.Println("Shutting down simulation...")
		loop.Stop()
	}()

	loop.Run()
}
