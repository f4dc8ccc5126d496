package testutil

import (
	"fmt"

	"github.com/AntonioJCosta/exerun/internal/core/domain/command"
)

// MockPresetProvider is a mock implementation of ports.PresetProvider backed by a slice.
type MockPresetProvider struct {
	Items      []command.Preset
	PresetsErr error
}

// Presets returns the configured items or PresetsErr.
func (m *MockPresetProvider) Presets() ([]command.Preset, error) {
	if m.PresetsErr != nil {
		return nil, m.PresetsErr
	}
	return m.Items, nil
}

// Lookup finds a preset by name among Items.
func (m *MockPresetProvider) Lookup(name string) (command.Preset, error) {
	for _, p := range m.Items {
		if p.Name == name {
			return p, nil
		}
	}
	return command.Preset{}, fmt.Errorf("%w: %q", command.ErrPresetNotFound, name)
}
