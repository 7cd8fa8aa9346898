// Package command runs external programs behind a small interface so that
// window backends can be exercised with canned output in tests.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"deskresolve/pkg/core"
)

// DefaultTimeout bounds a single external command when no timeout is configured.
const DefaultTimeout = 3 * time.Second

// waitDelay caps how long Execute waits for output pipes held open by
// grandchildren after the command itself was killed.
const waitDelay = 250 * time.Millisecond

// Output is the result of a process that was spawned and ran to completion.
type Output struct {
	ExitOK   bool
	ExitCode *int // nil when the process did not report an exit code
	Stdout   []byte
	Stderr   []byte
}

// Executor executes a program with arguments.
//
// A non-zero exit status is reported through Output, not as an error. Execute
// returns an *ExecError only when the process could not be spawned or did not
// finish.
type Executor interface {
	Execute(ctx context.Context, program string, args ...string) (*Output, error)
}

// ExecError is returned when a program could not be run to completion.
type ExecError struct {
	Program string
	Args    []string
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to execute %s: %v", CommandLine(e.Program, e.Args), e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// CommandLine renders program and args the way a shell user would type them.
func CommandLine(program string, args []string) string {
	if len(args) == 0 {
		return program
	}
	return program + " " + strings.Join(args, " ")
}

// Runner is the Executor backed by os/exec.
type Runner struct {
	timeout time.Duration
	log     core.Logger
}

// NewRunner creates a Runner. A zero or negative timeout selects DefaultTimeout.
func NewRunner(timeout time.Duration, log core.Logger) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{timeout: timeout, log: log}
}

// Timeout returns the per-call limit applied to every command.
func (r *Runner) Timeout() time.Duration {
	return r.timeout
}

func (r *Runner) Execute(ctx context.Context, program string, args ...string) (*Output, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if ctxErr := ctx.Err(); ctxErr != nil {
		r.log.Error("Command did not finish", ctxErr,
			"command", CommandLine(program, args),
			"elapsed", elapsed.String())
		return nil, &ExecError{Program: program, Args: args, Err: ctxErr}
	}

	out := &Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			r.log.Error("Failed to start command", err, "command", CommandLine(program, args))
			return nil, &ExecError{Program: program, Args: args, Err: err}
		}
		code := exitErr.ExitCode()
		if code < 0 {
			// killed by a signal
			return nil, &ExecError{Program: program, Args: args, Err: err}
		}
		out.ExitCode = &code
	} else {
		code := 0
		out.ExitCode = &code
		out.ExitOK = true
	}

	r.log.Debug("Command finished",
		"command", CommandLine(program, args),
		"exit_code", *out.ExitCode,
		"stdout_bytes", len(out.Stdout),
		"elapsed", elapsed.String())
	return out, nil
}
