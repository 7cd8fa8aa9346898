package wm

import "context"

// Backend speaks one window-manager protocol.
type Backend interface {
	// ListWindows returns every toplevel window the protocol reports, without icons
	ListWindows(ctx context.Context) ([]Window, error)
	// FocusWindow brings the window with the given backend address to front
	FocusWindow(ctx context.Context, address string) error
	// Name returns the backend name for logging/display
	Name() string
}

// Window is one toplevel as reported by a backend. Address is only
// meaningful to the backend that produced it and only while the window lives.
type Window struct {
	Title   string `json:"title" yaml:"title"`
	Class   string `json:"class" yaml:"class"`
	Address string `json:"address" yaml:"address"`
	Icon    string `json:"icon,omitempty" yaml:"icon,omitempty"`
}
