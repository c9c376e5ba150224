package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/critterswap/assets"
	"github.com/milk9111/critterswap/settings"
)

// presenter records what the simulation asked to show and plays one-shots
// through Ebiten audio. Draw reads the recorded state back.
type presenter struct {
	store *settings.Store

	facingLeft map[uint64]bool
	flags      map[uint64]map[string]bool
	visible    map[uint64]bool
	anim       map[uint64]string

	players []*audio.Player
}

func newPresenter(store *settings.Store) *presenter {
	p := &presenter{store: store}
	p.reset()
	return p
}

// fresh returns a presenter sharing p's audio with no entity state, for a
// session that has not replaced the running one yet.
func (p *presenter) fresh() *presenter {
	n := &presenter{store: p.store, players: p.players}
	n.reset()
	return n
}

// reset forgets every entity; entity ids are reused across session rebuilds.
func (p *presenter) reset() {
	p.facingLeft = make(map[uint64]bool)
	p.flags = make(map[uint64]map[string]bool)
	p.visible = make(map[uint64]bool)
	p.anim = make(map[uint64]string)
}

func (p *presenter) SetFacing(e uint64, left bool) {
	p.facingLeft[e] = left
}

func (p *presenter) SetAnimationFlag(e uint64, name string, on bool) {
	flags, ok := p.flags[e]
	if !ok {
		flags = make(map[string]bool)
		p.flags[e] = flags
	}
	flags[name] = on
}

func (p *presenter) PlayAnimation(e uint64, name string) {
	p.anim[e] = name
}

func (p *presenter) PlayOneShot(e uint64, clip string, pitch float64) {
	p.prune()

	player, err := assets.LoadAudioPlayer(clip, pitch)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	volume := 1.0
	if p.store != nil {
		volume = p.store.Settings().Volume
	}
	player.SetVolume(volume)
	player.Play()
	p.players = append(p.players, player)
}

func (p *presenter) SetVisible(e uint64, visible bool) {
	p.visible[e] = visible
}

func (p *presenter) flag(e uint64, name string) bool {
	return p.flags[e][name]
}

// prune closes players that finished.
func (p *presenter) prune() {
	kept := p.players[:0]
	for _, player := range p.players {
		if player.IsPlaying() {
			kept = append(kept, player)
			continue
		}
		_ = player.Close()
	}
	p.players = kept
}
