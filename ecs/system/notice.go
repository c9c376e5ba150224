package system

import (
	"fmt"

	"github.com/milk9111/critterswap/clock"
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
)

const (
	noticeDuration = 2.0

	switchClip = "switch"
	unlockClip = "unlock"
)

// NoticeSystem turns switch and unlock events into a HUD notice on the roster
// entity and a one-shot cue. Must run after every system that pushes them.
type NoticeSystem struct {
	clock     clock.Clock
	presenter component.Presenter
}

func NewNoticeSystem(clk clock.Clock, presenter component.Presenter) *NoticeSystem {
	if presenter == nil {
		presenter = component.NopPresenter{}
	}
	return &NoticeSystem{clock: clk, presenter: presenter}
}

func (s *NoticeSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	rosterEntity, ok := w.First(component.RosterComponent.Kind())
	if !ok {
		return
	}
	roster, ok := ecs.Get(w, rosterEntity, component.RosterComponent)
	if !ok {
		return
	}

	now := 0.0
	if s.clock != nil {
		now = s.clock.Now()
	}
	notice, ok := ecs.Get(w, rosterEntity, component.NoticeComponent)
	if !ok {
		notice = &component.Notice{}
		if err := ecs.Add(w, rosterEntity, component.NoticeComponent, notice); err != nil {
			return
		}
	}
	if notice.Text != "" && now >= notice.ExpiresAt {
		notice.Text = ""
	}

	for _, evt := range w.Events().Peek(ecs.EventCritterSwitched) {
		data, ok := evt.Data.(ecs.SwitchEvent)
		if !ok {
			continue
		}
		s.presenter.PlayOneShot(uint64(data.To), switchClip, 1)
		notice.Text = critterName(w, data.To)
		notice.ExpiresAt = now + noticeDuration
	}

	for _, evt := range w.Events().Peek(ecs.EventUnlocked) {
		data, ok := evt.Data.(ecs.UnlockEvent)
		if !ok || data.Unlocked < 1 || data.Unlocked > len(roster.Slots) {
			continue
		}
		newest := ecs.Entity(roster.Slots[data.Unlocked-1])
		if active, ok := ActiveCritter(w); ok {
			s.presenter.PlayOneShot(uint64(active), unlockClip, 1)
		}
		notice.Text = fmt.Sprintf("%s unlocked, press %d", critterName(w, newest), data.Unlocked)
		notice.ExpiresAt = now + noticeDuration
	}
}

func critterName(w *ecs.World, e ecs.Entity) string {
	if c, ok := ecs.Get(w, e, component.CritterComponent); ok && c.Name != "" {
		return c.Name
	}
	return "critter"
}
