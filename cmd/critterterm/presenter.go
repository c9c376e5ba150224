package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/critterswap/settings"
)

type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[string]tone{
	"ribbit":  {freq: 170, duration: 120 * time.Millisecond},
	"blub":    {freq: 420, duration: 90 * time.Millisecond},
	"sprint":  {freq: 660, duration: 150 * time.Millisecond},
	"collect": {freq: 880, duration: 50 * time.Millisecond},
	"switch":  {freq: 520, duration: 60 * time.Millisecond},
	"unlock":  {freq: 1320, duration: 250 * time.Millisecond},
}

// termPresenter keeps the presentation state the renderer needs and plays
// one-shots as sine blips.
type termPresenter struct {
	store     *settings.Store
	audioInit bool

	facingLeft map[uint64]bool
	flags      map[uint64]map[string]bool
	visible    map[uint64]bool
	anim       map[uint64]string
}

func newTermPresenter(store *settings.Store, audioInit bool) *termPresenter {
	return &termPresenter{
		store:      store,
		audioInit:  audioInit,
		facingLeft: make(map[uint64]bool),
		flags:      make(map[uint64]map[string]bool),
		visible:    make(map[uint64]bool),
		anim:       make(map[uint64]string),
	}
}

func (p *termPresenter) SetFacing(e uint64, left bool) {
	p.facingLeft[e] = left
}

func (p *termPresenter) SetAnimationFlag(e uint64, name string, on bool) {
	flags, ok := p.flags[e]
	if !ok {
		flags = make(map[string]bool)
		p.flags[e] = flags
	}
	flags[name] = on
}

func (p *termPresenter) PlayAnimation(e uint64, name string) {
	p.anim[e] = name
}

func (p *termPresenter) PlayOneShot(e uint64, clip string, pitch float64) {
	if !p.audioInit {
		return
	}
	t, ok := tones[clip]
	if !ok {
		return
	}
	volume := p.store.Settings().Volume
	if volume <= 0 {
		return
	}

	sine, err := generators.SineTone(sampleRate, t.freq*pitch)
	if err != nil {
		return
	}
	blip := beep.Take(sampleRate.N(t.duration), sine)
	speaker.Play(&effects.Gain{Streamer: blip, Gain: volume - 1})
}

func (p *termPresenter) SetVisible(e uint64, visible bool) {
	p.visible[e] = visible
}

func (p *termPresenter) flag(e uint64, name string) bool {
	return p.flags[e][name]
}
