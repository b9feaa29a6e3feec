package systems

import (
	"fmt"

	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
	hudWidth      = 190
)

// DrawHUD renders the weather status block in the bottom-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	snap := &getSim(e).Snapshot

	auto := "off"
	if snap.AutoLightning {
		auto = "on"
	}
	lines := []string{
		snap.Status,
		fmt.Sprintf("Particles: %d", snap.ParticleCount),
		fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()),
		fmt.Sprintf("Auto lightning: %s", auto),
	}

	height := len(lines)*hudLineHeight + hudMargin
	top := screen.Bounds().Dy() - height - hudMargin
	vector.FillRect(screen, hudMargin, float32(top), hudWidth, float32(height), cfg.BlackOverlay, false)

	face := fonts.Small.Get()
	for i, line := range lines {
		c := cfg.White
		if i == 0 {
			c = cfg.LightBlue
		}
		text.Draw(screen, line, face, hudMargin*2, top+hudMargin+(i+1)*hudLineHeight-4, c)
	}
}
