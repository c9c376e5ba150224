// Package settings persists player preferences and progression between runs
// through gdata. A Store without a gdata manager keeps everything in memory.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject = "settings"
	progressObject = "progress"
	globalProperty = "global"
)

type Settings struct {
	Volume float64 `yaml:"volume"`
}

func DefaultSettings() Settings {
	return Settings{Volume: 1}
}

type Progress struct {
	Collected int `yaml:"collected"`
	Unlocked  int `yaml:"unlocked"`
}

type Store struct {
	manager  *gdata.Manager
	settings Settings
	progress Progress
}

// Open creates a Store for appName. Storage errors leave the Store in
// memory-only mode rather than failing.
func Open(appName string) *Store {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("settings: open storage: %v (settings will not persist)", err)
		manager = nil
	}
	return NewStore(manager)
}

func NewStore(manager *gdata.Manager) *Store {
	s := &Store{manager: manager, settings: DefaultSettings()}
	if err := s.Load(); err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}
	return s
}

func (s *Store) Persistent() bool {
	return s != nil && s.manager != nil
}

// Load replaces the in-memory values with the stored ones. Missing blobs keep
// defaults.
func (s *Store) Load() error {
	s.settings = DefaultSettings()
	s.progress = Progress{}
	if s.manager == nil {
		return nil
	}

	if err := s.load(settingsObject, &s.settings); err != nil {
		s.settings = DefaultSettings()
		return err
	}
	if err := s.load(progressObject, &s.progress); err != nil {
		s.progress = Progress{}
		return err
	}
	s.settings.Volume = clampVolume(s.settings.Volume)
	return nil
}

func (s *Store) load(object string, dst any) error {
	if !s.manager.ObjectPropExists(object, globalProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(object, globalProperty)
	if err != nil {
		return fmt.Errorf("load %s: %w", object, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshal %s: %w", object, err)
	}
	return nil
}

func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	if err := s.save(settingsObject, s.settings); err != nil {
		return err
	}
	return s.save(progressObject, s.progress)
}

func (s *Store) save(object string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("settings: marshal %s: %w", object, err)
	}
	if err := s.manager.SaveObjectProp(object, globalProperty, data); err != nil {
		return fmt.Errorf("settings: save %s: %w", object, err)
	}
	return nil
}

func (s *Store) Settings() Settings {
	return s.settings
}

// SetVolume changes the master volume, clamped to [0, 1]. Call Save to
// persist it.
func (s *Store) SetVolume(v float64) {
	s.settings.Volume = clampVolume(v)
}

func (s *Store) Progress() Progress {
	return s.progress
}

// RecordProgress merges a session's progression. Neither count ever goes down.
func (s *Store) RecordProgress(collected, unlocked int) bool {
	changed := false
	if collected > s.progress.Collected {
		s.progress.Collected = collected
		changed = true
	}
	if unlocked > s.progress.Unlocked {
		s.progress.Unlocked = unlocked
		changed = true
	}
	return changed
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
