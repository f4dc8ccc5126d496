package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/exerun/internal/core/domain/command"
	"github.com/AntonioJCosta/exerun/internal/core/ports"
)

// MockCommandRunService is a mock implementation of ports.CommandRunService.
type MockCommandRunService struct {
	RunFunc         func(ctx context.Context, in ports.RunInput) (command.Invocation, error)
	ListPresetsFunc func() ([]command.Preset, error)
}

// Run calls the mock RunFunc.
func (m *MockCommandRunService) Run(ctx context.Context, in ports.RunInput) (command.Invocation, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, in)
	}
	return command.Invocation{}, errors.New("MockCommandRunService.RunFunc not implemented")
}

// ListPresets calls the mock ListPresetsFunc.
func (m *MockCommandRunService) ListPresets() ([]command.Preset, error) {
	if m.ListPresetsFunc != nil {
		return m.ListPresetsFunc()
	}
	return nil, errors.New("MockCommandRunService.ListPresetsFunc not implemented")
}
