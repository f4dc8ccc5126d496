package presets

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AntonioJCosta/exerun/internal/core/domain/command"
	"github.com/AntonioJCosta/exerun/internal/core/ports"
)

//go:embed default_presets.yaml
var embeddedDefaultPresets []byte

// YAMLProvider implements the PresetProvider interface by merging the
// embedded default presets with an optional user YAML file.
type YAMLProvider struct {
	userFile string
}

var _ ports.PresetProvider = (*YAMLProvider)(nil)

// NewYAMLProvider creates a new YAMLProvider.
// userFile may be empty, in which case only the embedded defaults are used.
func NewYAMLProvider(userFile string) *YAMLProvider {
	return &YAMLProvider{userFile: userFile}
}

// Presets returns the embedded defaults followed by user presets. A user
// preset with the same name as a default replaces it in place.
// A missing or empty user file is not an error.
func (p *YAMLProvider) Presets() ([]command.Preset, error) {
	defaults, err := decodePresets(embeddedDefaultPresets)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal embedded default presets: %w", err)
	}

	if p.userFile == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(p.userFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return nil, fmt.Errorf("failed to read presets file %s: %w", p.userFile, err)
	}

	user, err := decodePresets(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal presets from %s: %w", p.userFile, err)
	}

	return merge(defaults, user), nil
}

// Lookup returns the preset with the given name.
func (p *YAMLProvider) Lookup(name string) (command.Preset, error) {
	all, err := p.Presets()
	if err != nil {
		return command.Preset{}, err
	}
	for _, preset := range all {
		if preset.Name == name {
			return preset, nil
		}
	}
	return command.Preset{}, fmt.Errorf("%w: %q", command.ErrPresetNotFound, name)
}

func decodePresets(data []byte) ([]command.Preset, error) {
	presets := []command.Preset{}
	if len(bytes.TrimSpace(data)) == 0 {
		return presets, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&presets); err != nil {
		// A document holding only comments or "---" decodes to EOF.
		if errors.Is(err, io.EOF) {
			return []command.Preset{}, nil
		}
		return nil, err
	}

	seen := make(map[string]bool, len(presets))
	for i, preset := range presets {
		if strings.TrimSpace(preset.Name) == "" {
			return nil, fmt.Errorf("preset #%d has no name", i+1)
		}
		if strings.TrimSpace(preset.Path) == "" {
			return nil, fmt.Errorf("preset %q has no path", preset.Name)
		}
		if seen[preset.Name] {
			return nil, fmt.Errorf("preset %q is defined more than once", preset.Name)
		}
		seen[preset.Name] = true
	}
	return presets, nil
}

func merge(defaults, user []command.Preset) []command.Preset {
	index := make(map[string]int, len(defaults))
	merged := make([]command.Preset, len(defaults), len(defaults)+len(user))
	copy(merged, defaults)
	for i, preset := range merged {
		index[preset.Name] = i
	}

	for _, preset := range user {
		if i, ok := index[preset.Name]; ok {
			merged[i] = preset
			continue
		}
		merged = append(merged, preset)
	}
	return merged
}
