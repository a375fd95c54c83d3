package components

import "github.com/yohamta/donburi"

// SettingsData holds user toggles that persist between runs.
type SettingsData struct {
	Debug       bool
	LastVariant string
	dirty       bool
}

func (s *SettingsData) SetDebug(on bool) {
	if s.Debug != on {
		s.Debug = on
		s.dirty = true
	}
}

// TakeDirty reports whether the settings changed since the last call.
func (s *SettingsData) TakeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

var Settings = donburi.NewComponentType[SettingsData]()
