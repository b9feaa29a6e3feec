package assets

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/squall/config"
	"github.com/automoto/squall/shared/rng"
)

// ThunderSamples synthesizes one thunder clap as mono samples in [-Gain, Gain]:
// white noise mixed with a low sine, shaped by a decaying envelope that
// reaches zero at the end of the clap.
func ThunderSamples(r rng.Source, sampleRate int) []float64 {
	c := cfg.Thunder
	if sampleRate <= 0 {
		return nil
	}

	duration := rng.Range(r, c.DurationMin, c.DurationMax)
	freq := rng.Range(r, c.ToneFreqMin, c.ToneFreqMax)
	n := int(duration * float64(sampleRate))

	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-t*c.Decay) * (1 - t/duration)
		noise := r.Float64()*2 - 1
		tone := math.Sin(2 * math.Pi * freq * t)
		out[i] = (noise*c.NoiseMix + tone*c.ToneMix) * envelope * c.Gain
	}
	return out
}

// EncodePCM converts mono samples to 16-bit signed little-endian stereo.
func EncodePCM(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		s = max(-1, min(1, s))
		v := uint16(int16(s * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}

// ThunderPCM returns a ready-to-play clap for an audio context at sampleRate.
func ThunderPCM(r rng.Source, sampleRate int) []byte {
	return EncodePCM(ThunderSamples(r, sampleRate))
}
