package command

import (
	"errors"
	"fmt"
)

var (
	// ErrExecutableNotFound means the executable path does not resolve to an
	// executable file. No process is started.
	ErrExecutableNotFound = errors.New("executable not found")

	// ErrLaunchFailure means the OS refused to create the child process.
	ErrLaunchFailure = errors.New("failed to launch process")

	// ErrTimeout means the child outlived its deadline and was killed.
	ErrTimeout = errors.New("command timed out")

	// ErrCanceled means the run was canceled before the child exited.
	ErrCanceled = errors.New("command canceled")

	// ErrStreamFailure means the child ran but its output could not be
	// collected or mirrored in full. The captured Result is still returned.
	ErrStreamFailure = errors.New("output stream failed")

	// ErrPresetNotFound means no preset has the requested name.
	ErrPresetNotFound = errors.New("preset not found")

	// ErrInvalidInput covers run inputs rejected before any lookup happens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyExecutable is returned by NewRequest for a blank executable path.
	ErrEmptyExecutable = fmt.Errorf("%w: executable path is empty", ErrExecutableNotFound)
)
