// Package commandtest provides a deterministic command.Executor for tests.
package commandtest

import (
	"context"
	"errors"
	"sync"

	"deskresolve/internal/command"
)

// ErrUnexpected is the cause returned for calls without a canned response.
var ErrUnexpected = errors.New("unexpected command")

type response struct {
	out *command.Output
	err error
}

// Stub answers Execute with canned results keyed by the exact command line.
// Unknown command lines fail with an *command.ExecError wrapping ErrUnexpected.
type Stub struct {
	mu        sync.Mutex
	responses map[string]response
	calls     []string
}

func NewStub() *Stub {
	return &Stub{responses: make(map[string]response)}
}

// Succeed registers a zero exit with the given stdout.
func (s *Stub) Succeed(stdout string, program string, args ...string) *Stub {
	code := 0
	return s.set(program, args, response{out: &command.Output{ExitOK: true, ExitCode: &code, Stdout: []byte(stdout)}})
}

// Fail registers a non-zero exit with the given stderr.
func (s *Stub) Fail(code int, stderr string, program string, args ...string) *Stub {
	return s.set(program, args, response{out: &command.Output{ExitCode: &code, Stderr: []byte(stderr)}})
}

// FailWithOutput registers a non-zero exit that still printed stdout.
func (s *Stub) FailWithOutput(code int, stdout, stderr string, program string, args ...string) *Stub {
	return s.set(program, args, response{out: &command.Output{ExitCode: &code, Stdout: []byte(stdout), Stderr: []byte(stderr)}})
}

// Error registers an execution failure.
func (s *Stub) Error(err error, program string, args ...string) *Stub {
	return s.set(program, args, response{err: &command.ExecError{Program: program, Args: args, Err: err}})
}

func (s *Stub) set(program string, args []string, r response) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[command.CommandLine(program, args)] = r
	return s
}

// Calls returns the command lines executed so far, in order.
func (s *Stub) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *Stub) Execute(ctx context.Context, program string, args ...string) (*command.Output, error) {
	line := command.CommandLine(program, args)

	s.mu.Lock()
	s.calls = append(s.calls, line)
	r, ok := s.responses[line]
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, &command.ExecError{Program: program, Args: args, Err: err}
	}
	if !ok {
		return nil, &command.ExecError{Program: program, Args: args, Err: ErrUnexpected}
	}
	if r.err != nil {
		return nil, r.err
	}
	out := *r.out
	return &out, nil
}
