package command

import (
	"strings"
	"time"
)

// DefaultExecutable is used when neither an executable nor a preset is given.
const DefaultExecutable = "/usr/bin/file"

// Request describes a single executable invocation with one file argument.
// It is immutable once constructed with NewRequest.
type Request struct {
	executablePath string
	argumentPath   string
}

// NewRequest builds a Request. The executable path must be non-empty; the
// argument path is passed through as-is and need not exist.
func NewRequest(executablePath, argumentPath string) (Request, error) {
	if strings.TrimSpace(executablePath) == "" {
		return Request{}, ErrEmptyExecutable
	}
	return Request{executablePath: executablePath, argumentPath: argumentPath}, nil
}

// ExecutablePath returns the executable as given by the caller.
func (r Request) ExecutablePath() string { return r.executablePath }

// ArgumentPath returns the literal file argument.
func (r Request) ArgumentPath() string { return r.argumentPath }

// Argv returns the argument vector handed to the child process.
func (r Request) Argv() []string {
	return []string{r.executablePath, r.argumentPath}
}

// ExeString returns a human-readable record of the command line.
// It is for display only and is never passed to a shell.
func (r Request) ExeString() string {
	return quoteArg(r.executablePath) + " " + quoteArg(r.argumentPath)
}

// Result holds what a finished child process produced.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the child exited with status 0.
func (r Result) Success() bool { return r.ExitCode == 0 }

// Invocation is the report of one run: the command record and its outcome.
type Invocation struct {
	Request   Request
	ExeString string
	Result    Result
	Duration  time.Duration
}

// Preset is a named executable that can be selected instead of a raw path.
type Preset struct {
	Name        string `yaml:"name"`
	Path        string `yaml:"path"`
	Description string `yaml:"description,omitempty"`
}

const shellSpecial = " \t\n\"'`$\\|&;<>()*?[]{}~#!"

func quoteArg(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, shellSpecial) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
