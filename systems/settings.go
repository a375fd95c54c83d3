package systems

import (
	"github.com/automoto/platproto/components"
	cfg "github.com/automoto/platproto/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeded from
// disk and the command line on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}

	entry := e.World.Entry(e.World.Create(components.Settings))
	settings := components.SettingsData{Debug: cfg.Debug.Overlay}
	if saved, err := LoadSettings(); err == nil && saved != nil {
		settings.Debug = settings.Debug || saved.Debug
		settings.LastVariant = saved.LastVariant
	}
	components.Settings.SetValue(entry, settings)
	return components.Settings.Get(entry)
}

// UpdateSettings toggles the debug overlay and writes changes to disk.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.SetDebug(!settings.Debug)
	}

	if settings.TakeDirty() {
		SaveCurrentSettings(settings)
	}
}
