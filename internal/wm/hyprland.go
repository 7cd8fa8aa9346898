package wm

import (
	"context"
	"encoding/json"
	"errors"

	"deskresolve/internal/command"
)

type Hyprland struct {
	exec command.Executor
}

func NewHyprland(exec command.Executor) *Hyprland {
	return &Hyprland{exec: exec}
}

func (h *Hyprland) Name() string {
	return "Hyprland"
}

func (h *Hyprland) ListWindows(ctx context.Context) ([]Window, error) {
	output, err := run(ctx, h.exec, h.Name(), "hyprctl", "clients", "-j")
	if err != nil {
		return nil, err
	}
	return parseHyprctlClients(output)
}

// parseHyprctlClients reads the JSON array printed by `hyprctl clients -j`.
// Missing or non-string fields become empty strings.
func parseHyprctlClients(output []byte) ([]Window, error) {
	var clients []map[string]any
	if err := json.Unmarshal(output, &clients); err != nil {
		return nil, &ParseError{Program: "hyprctl", Err: err}
	}
	if clients == nil {
		return nil, &ParseError{Program: "hyprctl", Err: errors.New("expected a JSON array of clients")}
	}

	windows := make([]Window, 0, len(clients))
	for _, c := range clients {
		windows = append(windows, Window{
			Class:   stringField(c, "class"),
			Title:   stringField(c, "title"),
			Address: stringField(c, "address"),
		})
	}
	return windows, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func (h *Hyprland) FocusWindow(ctx context.Context, address string) error {
	_, err := run(ctx, h.exec, h.Name(), "hyprctl", "dispatch", "focuswindow", "address:"+address)
	return err
}
