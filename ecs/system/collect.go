package system

import (
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
)

const collectClip = "collect"

// CollectSystem removes pickups touched by the active critter and counts them
// on the session's Progress.
type CollectSystem struct {
	presenter component.Presenter
}

func NewCollectSystem(presenter component.Presenter) *CollectSystem {
	if presenter == nil {
		presenter = component.NopPresenter{}
	}
	return &CollectSystem{presenter: presenter}
}

func (s *CollectSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	critter, ok := ActiveCritter(w)
	if !ok {
		return
	}
	ct, ok := ecs.Get(w, critter, component.TransformComponent)
	if !ok {
		return
	}
	body, ok := ecs.Get(w, critter, component.PhysicsBodyComponent)
	if !ok {
		return
	}

	pe, ok := w.First(component.ProgressComponent.Kind())
	if !ok {
		return
	}
	progress, _ := ecs.Get(w, pe, component.ProgressComponent)

	var collected []ecs.Entity
	ecs.ForEach2(w, component.CollectibleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Collectible, t *component.Transform) {
		if !overlaps(ct.X, ct.Y, body.Width, body.Height, t.X, t.Y, pickup.Width, pickup.Height) {
			return
		}
		collected = append(collected, e)
	})

	for _, e := range collected {
		pickup, _ := ecs.Get(w, e, component.CollectibleComponent)
		kind := pickup.Kind
		if !w.DestroyEntity(e) {
			continue
		}
		progress.Collected++
		s.presenter.PlayOneShot(uint64(critter), collectClip, 1)
		w.Events().Push(ecs.Event{
			Type: ecs.EventCollected,
			Data: ecs.CollectEvent{By: critter, Kind: kind, Collected: progress.Collected},
		})
	}
}

// overlaps tests two centred boxes.
func overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax-aw/2 < bx+bw/2 && bx-bw/2 < ax+aw/2 &&
		ay-ah/2 < by+bh/2 && by-bh/2 < ay+ah/2
}
