package entity

import (
	"fmt"

	"github.com/milk9111/critterswap/clock"
	"github.com/milk9111/critterswap/common"
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
	"github.com/milk9111/critterswap/ecs/system"
	"github.com/milk9111/critterswap/input"
	"github.com/milk9111/critterswap/prefabs"
	"github.com/milk9111/critterswap/progress"
)

// Config is everything a session is built from. Specs are read once; a
// session never sees later edits to them.
type Config struct {
	Session *prefabs.SessionSpec
	Roster  *prefabs.RosterSpec
	Level   *prefabs.LevelSpec
	Rule    *progress.Rule

	Dispatcher *input.Dispatcher
	Clock      clock.Clock
	Presenter  component.Presenter

	// Restored progression from a previous run.
	Collected int
	Unlocked  int
}

// LoadConfig reads the session prefab and everything it names.
func LoadConfig(sessionName string) (Config, error) {
	session, err := prefabs.LoadSessionSpec(sessionName)
	if err != nil {
		return Config{}, err
	}
	roster, err := prefabs.LoadRosterSpec(session.Critters)
	if err != nil {
		return Config{}, err
	}
	level, err := prefabs.LoadLevelSpec(session.Level)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Session: session, Roster: roster, Level: level}
	if session.UnlockScript != "" {
		src, err := prefabs.LoadScript(session.UnlockScript)
		if err != nil {
			return Config{}, fmt.Errorf("prefabs: load %s: %w", session.UnlockScript, err)
		}
		rule, err := progress.NewRule(src)
		if err != nil {
			return Config{}, err
		}
		cfg.Rule = rule
	}
	return cfg, nil
}

// Session is one running world with its systems.
type Session struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler

	Physics    *system.PhysicsSystem
	Locomotion *system.LocomotionSystem
	Switch     *system.SwitchSystem
	Camera     *system.CameraSystem
	Progress   *system.ProgressSystem

	Roster ecs.Entity
	Slots  []ecs.Entity

	dispatcher *input.Dispatcher
}

// NewSession spawns the level, the roster and the camera, wires the systems to
// the dispatcher and returns the session ready for its first Update.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Session == nil || cfg.Roster == nil || cfg.Level == nil {
		return nil, fmt.Errorf("session: %w", prefabs.ErrInvalidSpec)
	}
	if len(cfg.Roster.Critters) == 0 {
		return nil, fmt.Errorf("session: empty roster: %w", prefabs.ErrInvalidSpec)
	}

	gravity := cfg.Session.Gravity
	if gravity == 0 {
		gravity = common.Gravity
	}

	w := ecs.NewWorld()
	s := &Session{World: w, dispatcher: cfg.Dispatcher}

	s.Physics = system.NewPhysicsSystem(cfg.Clock, gravity)
	s.Locomotion = system.NewLocomotionSystem(cfg.Dispatcher, cfg.Clock, s.Physics, cfg.Presenter)
	s.Camera = system.NewCameraSystem(cfg.Clock)
	s.Switch = system.NewSwitchSystem(cfg.Dispatcher, s.Physics, s.Locomotion, s.Camera)
	s.Progress = system.NewProgressSystem(cfg.Rule, s.Switch)

	if _, err := NewLevel(w, cfg.Level); err != nil {
		return nil, err
	}

	slots := make([]uint64, 0, len(cfg.Roster.Critters))
	for i, spec := range cfg.Roster.Critters {
		e, err := NewCritter(w, spec, i)
		if err != nil {
			return nil, err
		}
		s.Slots = append(s.Slots, e)
		slots = append(slots, uint64(e))
	}

	unlocked := cfg.Session.Unlocked
	if cfg.Unlocked > unlocked {
		unlocked = cfg.Unlocked
	}
	unlocked = clampInt(unlocked, 1, len(slots))
	active := clampInt(cfg.Session.ActiveSlot, 0, unlocked-1)

	s.Roster = w.CreateEntity()
	if err := ecs.Add(w, s.Roster, component.RosterComponent, &component.Roster{
		Slots:    slots,
		Active:   active,
		Unlocked: unlocked,
	}); err != nil {
		return nil, fmt.Errorf("session: add roster: %w", err)
	}
	if err := ecs.Add(w, s.Roster, component.ProgressComponent, &component.Progress{
		Collected: cfg.Collected,
		Total:     cfg.Collected + len(cfg.Level.Collectibles),
	}); err != nil {
		return nil, fmt.Errorf("session: add progress: %w", err)
	}

	start := cfg.Roster.Critters[active].Transform
	if _, err := NewCameraAt(w, cfg.Session.Camera, start.X, start.Y+cfg.Session.Camera.OffsetY); err != nil {
		return nil, err
	}

	for _, e := range s.Slots {
		s.Locomotion.Attach(w, e)
	}
	s.Switch.Attach(w)

	s.Scheduler = ecs.NewScheduler(
		s.Switch,
		s.Locomotion,
		s.Physics,
		system.NewCollectSystem(cfg.Presenter),
		s.Progress,
		system.NewAmbientCallSystem(cfg.Clock, cfg.Presenter),
		s.Camera,
		system.NewAbilityRollSystem(cfg.Clock),
		system.NewNoticeSystem(cfg.Clock, cfg.Presenter),
	)
	return s, nil
}

// Update runs one frame. Input for the frame must already be dispatched.
func (s *Session) Update() {
	if s == nil {
		return
	}
	s.Scheduler.Update(s.World)
}

// Close drops every dispatcher subscription the session holds so the
// dispatcher can be handed to a rebuilt session.
func (s *Session) Close() {
	if s == nil {
		return
	}
	for _, e := range s.Slots {
		s.Locomotion.Detach(s.World, e)
	}
	s.Switch.Detach()
}

// Progression reports what this session has collected and unlocked.
func (s *Session) Progression() (collected, unlocked int) {
	if s == nil {
		return 0, 0
	}
	if p, ok := ecs.Get(s.World, s.Roster, component.ProgressComponent); ok {
		collected = p.Collected
	}
	if r, ok := ecs.Get(s.World, s.Roster, component.RosterComponent); ok {
		unlocked = r.Unlocked
	}
	return collected, unlocked
}

// Notice returns the HUD message to show this frame, if any.
func (s *Session) Notice() string {
	if s == nil {
		return ""
	}
	if n, ok := ecs.Get(s.World, s.Roster, component.NoticeComponent); ok {
		return n.Text
	}
	return ""
}

// ActiveCritter returns the critter currently under control.
func (s *Session) ActiveCritter() (ecs.Entity, bool) {
	if s == nil {
		return 0, false
	}
	return system.ActiveCritter(s.World)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
