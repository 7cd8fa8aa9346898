package wm

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"deskresolve/internal/command"
	"deskresolve/pkg/core"
)

// DefaultEnrichWorkers bounds concurrent icon lookups during ListWindows.
const DefaultEnrichWorkers = 4

// IconResolver fills in icons for listed windows.
type IconResolver interface {
	Resolve(token string) (string, bool)
}

// Manager picks a backend from the environment on every call, so it always
// observes the current session variables.
type Manager struct {
	exec    command.Executor
	log     core.Logger
	detect  func() Kind
	icons   IconResolver
	workers int
}

type ManagerOption func(*Manager)

// WithIconResolver makes ListWindows fill Window.Icon from the lowercased class.
func WithIconResolver(r IconResolver) ManagerOption {
	return func(m *Manager) {
		m.icons = r
	}
}

// WithEnrichWorkers sets how many icons are resolved in parallel.
func WithEnrichWorkers(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.workers = n
		}
	}
}

// WithDetector replaces environment-based backend detection.
func WithDetector(detect func() Kind) ManagerOption {
	return func(m *Manager) {
		m.detect = detect
	}
}

// NewManager creates a window manager front end that runs commands through exec.
func NewManager(exec command.Executor, log core.Logger, opts ...ManagerOption) *Manager {
	m := &Manager{
		exec:    exec,
		log:     log,
		detect:  DetectFromEnv,
		workers: DefaultEnrichWorkers,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Backend returns the backend for the current environment.
func (m *Manager) Backend() (Backend, error) {
	kind := m.detect()
	backend, err := NewBackend(kind, m.exec)
	if err != nil {
		return nil, err
	}
	m.log.Debug("Window backend selected", "backend", backend.Name())
	return backend, nil
}

// ListWindows lists the windows of the current session.
func (m *Manager) ListWindows(ctx context.Context) ([]Window, error) {
	backend, err := m.Backend()
	if err != nil {
		return nil, err
	}

	windows, err := backend.ListWindows(ctx)
	if err != nil {
		m.log.Error("Failed to list windows", err, "backend", backend.Name())
		return nil, fmt.Errorf("failed to list windows: %w", err)
	}
	m.log.Debug("Listed windows", "backend", backend.Name(), "count", len(windows))

	if m.icons != nil {
		m.enrich(ctx, windows)
	}
	return windows, nil
}

// enrich resolves missing icons in place. Misses leave Icon empty and never
// fail the listing.
func (m *Manager) enrich(ctx context.Context, windows []Window) {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)

	for i := range windows {
		if windows[i].Icon != "" || windows[i].Class == "" {
			continue
		}
		g.Go(func() error {
			if path, ok := m.icons.Resolve(strings.ToLower(windows[i].Class)); ok {
				windows[i].Icon = path
			}
			return nil
		})
	}
	_ = g.Wait()
}

// FocusWindow focuses the window at address using the current backend.
func (m *Manager) FocusWindow(ctx context.Context, address string) error {
	backend, err := m.Backend()
	if err != nil {
		return err
	}

	m.log.Debug("Focusing window", "backend", backend.Name(), "address", address)
	if err := backend.FocusWindow(ctx, address); err != nil {
		m.log.Error("Failed to focus window", err, "backend", backend.Name(), "address", address)
		return fmt.Errorf("failed to focus window: %w", err)
	}
	return nil
}
