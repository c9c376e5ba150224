// Package assets synthesizes the game's sound clips. There are no audio files;
// every clip is a short generated tone rendered in Ebiten's native PCM format.
package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

// Clip describes one generated sound: a sine sweep from Start to End Hz
// repeated Pulses times.
type Clip struct {
	Start    float64
	End      float64
	Duration float64
	Pulses   int
	Gain     float64
}

var Clips = map[string]Clip{
	"ribbit":  {Start: 190, End: 140, Duration: 0.09, Pulses: 2, Gain: 0.5},
	"blub":    {Start: 320, End: 560, Duration: 0.12, Pulses: 1, Gain: 0.4},
	"sprint":  {Start: 660, End: 990, Duration: 0.15, Pulses: 1, Gain: 0.35},
	"collect": {Start: 880, End: 1320, Duration: 0.08, Pulses: 2, Gain: 0.3},
	"switch":  {Start: 520, End: 390, Duration: 0.06, Pulses: 1, Gain: 0.25},
	"unlock":  {Start: 660, End: 1760, Duration: 0.2, Pulses: 3, Gain: 0.35},
}

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// Context returns the shared audio context, creating it on first use.
func Context() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// LoadAudioPlayer renders clip name at the given pitch and wraps it in a
// player.
func LoadAudioPlayer(name string, pitch float64) (*audio.Player, error) {
	pcm, err := Render(name, pitch)
	if err != nil {
		return nil, err
	}
	return Context().NewPlayerFromBytes(pcm), nil
}

// Render returns clip name as 16-bit little-endian stereo PCM. Pitch scales
// every frequency; 1 is the clip as authored.
func Render(name string, pitch float64) ([]byte, error) {
	clip, ok := Clips[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown clip %q", name)
	}
	if pitch <= 0 {
		pitch = 1
	}
	pulses := clip.Pulses
	if pulses < 1 {
		pulses = 1
	}

	pulseFrames := int(clip.Duration * SampleRate)
	gapFrames := pulseFrames / 2
	total := pulses*pulseFrames + (pulses-1)*gapFrames
	out := make([]byte, total*4)

	frame := 0
	for p := 0; p < pulses; p++ {
		phase := 0.0
		for i := 0; i < pulseFrames; i++ {
			t := float64(i) / float64(pulseFrames)
			freq := (clip.Start + (clip.End-clip.Start)*t) * pitch
			phase += 2 * math.Pi * freq / SampleRate

			// short attack, linear release
			env := math.Min(1, t*20) * (1 - t)
			v := int16(math.Sin(phase) * env * clip.Gain * math.MaxInt16)

			binary.LittleEndian.PutUint16(out[frame*4:], uint16(v))
			binary.LittleEndian.PutUint16(out[frame*4+2:], uint16(v))
			frame++
		}
		if p < pulses-1 {
			frame += gapFrames
		}
	}
	return out, nil
}
