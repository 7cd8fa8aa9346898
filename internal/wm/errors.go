package wm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"deskresolve/internal/command"
)

var (
	// ErrExecution matches failures to spawn or finish a backend command.
	ErrExecution = errors.New("execution failure")
	// ErrCommand matches backend commands that exited with a non-zero status.
	ErrCommand = errors.New("command failure")
	// ErrParse matches backend output that does not have the expected shape.
	ErrParse = errors.New("parse failure")
)

// ExecutionError wraps an error from the executor.
type ExecutionError struct {
	Backend string
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Backend, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

func (e *ExecutionError) Is(target error) bool { return target == ErrExecution }

// CommandError reports a command that ran but exited unsuccessfully.
type CommandError struct {
	Program  string
	Args     []string
	ExitCode *int
	Stderr   string
}

func (e *CommandError) Error() string {
	var b strings.Builder
	b.WriteString(command.CommandLine(e.Program, e.Args))
	if e.ExitCode != nil {
		fmt.Fprintf(&b, ": exited with status %d", *e.ExitCode)
	} else {
		b.WriteString(": exited unsuccessfully")
	}
	if e.Stderr != "" {
		b.WriteString(": ")
		b.WriteString(e.Stderr)
	}
	return b.String()
}

func (e *CommandError) Is(target error) bool { return target == ErrCommand }

// ParseError reports output that could not be understood.
type ParseError struct {
	Program string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s output: %v", e.Program, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// run executes program through exec and turns anything but a zero exit into
// an ExecutionError or CommandError.
func run(ctx context.Context, exec command.Executor, backend, program string, args ...string) ([]byte, error) {
	out, err := exec.Execute(ctx, program, args...)
	if err != nil {
		return nil, &ExecutionError{Backend: backend, Err: err}
	}
	if !out.ExitOK {
		return nil, &CommandError{
			Program:  program,
			Args:     args,
			ExitCode: out.ExitCode,
			Stderr:   strings.TrimSpace(string(out.Stderr)),
		}
	}
	return out.Stdout, nil
}
