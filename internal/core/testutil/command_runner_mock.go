package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/exerun/internal/core/domain/command"
	"github.com/AntonioJCosta/exerun/internal/core/ports"
)

// MockCommandRunner is a mock implementation of ports.CommandRunner.
type MockCommandRunner struct {
	ExecuteFunc func(ctx context.Context, req command.Request, streams ports.Streams) (command.Result, error)
	Calls       []command.Request
}

// Execute records the request and calls the mock ExecuteFunc.
func (m *MockCommandRunner) Execute(ctx context.Context, req command.Request, streams ports.Streams) (command.Result, error) {
	m.Calls = append(m.Calls, req)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, req, streams)
	}
	return command.Result{}, errors.New("MockCommandRunner.ExecuteFunc not implemented")
}
