package systems

import (
	"sync"

	"github.com/automoto/squall/assets"
	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

var (
	globalAudioContext *audio.Context
	thunderRand        rng.Source
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the shared audio context. ebiten allows only one.
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		thunderRand = rng.NewEntropy()
	})
}

// UpdateThunder plays queued thunder claps, keeping at most MaxThunders
// overlapping.
func UpdateThunder(e *ecs.ECS) {
	initGlobalAudio()
	thunder := Thunder.Get(Thunder.MustFirst(e.World))
	if thunder.Context == nil {
		thunder.Context = globalAudioContext
	}

	alive := thunder.Players[:0]
	for _, p := range thunder.Players {
		if p.IsPlaying() {
			alive = append(alive, p)
			continue
		}
		_ = p.Close()
	}
	thunder.Players = alive

	for ; thunder.Pending > 0; thunder.Pending-- {
		if len(thunder.Players) >= cfg.Audio.MaxThunders {
			continue
		}
		pcm := assets.ThunderPCM(thunderRand, thunder.Context.SampleRate())
		player := thunder.Context.NewPlayerFromBytes(pcm)
		player.SetVolume(cfg.Audio.ThunderVol)
		player.Play()
		thunder.Players = append(thunder.Players, player)
	}
}
