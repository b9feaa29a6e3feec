package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the ground band splashes are probed against and lists
// raw entity counts.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !getSettings(e).Debug {
		return
	}
	snap := &getSim(e).Snapshot

	ground := float32(cfg.Effects.GroundHeight)
	w, h := float32(snap.Width), float32(snap.Height)
	c := color.RGBA{0, 255, 255, 255}
	vector.FillRect(screen, 0, h-ground, w, 1, c, false) // Top
	vector.FillRect(screen, 0, h-1, w, 1, c, false)      // Bottom

	lines := []string{
		fmt.Sprintf("preset: %q", snap.Preset),
		fmt.Sprintf("clouds: %d", len(snap.Clouds)),
		fmt.Sprintf("bolts: %d  flashes: %d  strikes: %d", len(snap.Bolts), len(snap.Flashes), snap.Strikes),
		fmt.Sprintf("layers: %d  streaks: %d  splashes: %d", len(snap.Layers), len(snap.WindStreaks), len(snap.Splashes)),
		fmt.Sprintf("sim time: %.1fs", snap.SimTime/1000),
	}
	face := fonts.Small.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight, cfg.White)
	}
}
