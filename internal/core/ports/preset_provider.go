package ports

import "github.com/AntonioJCosta/exerun/internal/core/domain/command"

// PresetProvider defines the interface for sourcing named executables
// from a predefined list, like a configuration file.
type PresetProvider interface {
	// Presets loads all known presets.
	Presets() ([]command.Preset, error)

	// Lookup returns the preset with the given name.
	Lookup(name string) (command.Preset, error)
}
