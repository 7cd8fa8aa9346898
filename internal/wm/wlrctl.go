package wm

import (
	"context"
	"strings"

	"deskresolve/internal/command"
)

// Wlrctl drives wlroots compositors through the foreign-toplevel protocol.
// The protocol exposes no per-window id, so the app-id doubles as address.
type Wlrctl struct {
	exec command.Executor
}

func NewWlrctl(exec command.Executor) *Wlrctl {
	return &Wlrctl{exec: exec}
}

func (w *Wlrctl) Name() string {
	return "wlrctl"
}

func (w *Wlrctl) ListWindows(ctx context.Context) ([]Window, error) {
	output, err := run(ctx, w.exec, w.Name(), "wlrctl", "toplevel", "list")
	if err != nil {
		return nil, err
	}
	return parseWlrctlToplevels(output), nil
}

// parseWlrctlToplevels reads "<app-id>: <title>" lines. The split happens at
// the first colon; lines without one are skipped.
func parseWlrctlToplevels(output []byte) []Window {
	var windows []Window
	for _, line := range strings.Split(string(output), "\n") {
		appID, title, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		appID = strings.TrimSpace(appID)
		windows = append(windows, Window{
			Title:   strings.TrimSpace(title),
			Class:   appID,
			Address: appID,
		})
	}
	return windows
}

// FocusWindow focuses by app-id. With several windows sharing an app-id,
// which one wlrctl picks is up to the compositor.
func (w *Wlrctl) FocusWindow(ctx context.Context, address string) error {
	_, err := run(ctx, w.exec, w.Name(), "wlrctl", "toplevel", "focus", address)
	return err
}
