package ports

import (
	"context"
	"io"

	"github.com/AntonioJCosta/exerun/internal/core/domain/command"
)

// Streams optionally mirrors a child's output while it is being captured.
// Nil writers are ignored. A writer used for both fields must be safe for
// concurrent use.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// CommandRunner defines an interface for executing a single command without a shell.
type CommandRunner interface {
	// Execute runs the request to completion and returns its captured output.
	// A nonzero exit status is reported in the Result, not as an error.
	Execute(ctx context.Context, req command.Request, streams Streams) (command.Result, error)
}
