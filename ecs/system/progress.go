package system

import (
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
	"github.com/milk9111/critterswap/progress"
)

// ProgressSystem re-evaluates the unlock rule whenever something was collected
// and raises the roster's unlocked count to match. Must run after
// CollectSystem in the same frame.
type ProgressSystem struct {
	rule      *progress.Rule
	sw        *SwitchSystem
	evaluated bool
	lastErr   error
}

func NewProgressSystem(rule *progress.Rule, sw *SwitchSystem) *ProgressSystem {
	return &ProgressSystem{rule: rule, sw: sw}
}

func (s *ProgressSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.rule == nil || s.sw == nil {
		return
	}
	if s.evaluated && len(w.Events().Peek(ecs.EventCollected)) == 0 {
		return
	}

	roster, ok := s.sw.roster(w)
	if !ok {
		return
	}
	pe, ok := w.First(component.ProgressComponent.Kind())
	if !ok {
		return
	}
	p, _ := ecs.Get(w, pe, component.ProgressComponent)

	s.evaluated = true
	n, err := s.rule.Unlocked(p.Collected, len(roster.Slots))
	if err != nil {
		s.lastErr = err
		return
	}
	s.lastErr = nil
	s.sw.Unlock(w, n)
}

// Err returns the last rule evaluation error, if any.
func (s *ProgressSystem) Err() error {
	if s == nil {
		return nil
	}
	return s.lastErr
}
