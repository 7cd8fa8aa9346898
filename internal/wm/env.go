package wm

import (
	"fmt"
	"os"

	"deskresolve/internal/command"
)

// Kind identifies one of the supported window-manager protocols.
type Kind int

const (
	KindWmctrl Kind = iota
	KindWlrctl
	KindHyprland
)

func (k Kind) String() string {
	switch k {
	case KindHyprland:
		return "hyprland"
	case KindWlrctl:
		return "wlrctl"
	case KindWmctrl:
		return "wmctrl"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	envHyprlandSignature = "HYPRLAND_INSTANCE_SIGNATURE"
	envWaylandDisplay    = "WAYLAND_DISPLAY"
)

// Detect picks the backend for the environment described by lookup. Only the
// presence of a variable matters, not its value.
func Detect(lookup func(string) (string, bool)) Kind {
	if _, ok := lookup(envHyprlandSignature); ok {
		return KindHyprland
	}
	if _, ok := lookup(envWaylandDisplay); ok {
		return KindWlrctl
	}
	return KindWmctrl
}

// DetectFromEnv runs Detect against the process environment.
func DetectFromEnv() Kind {
	return Detect(os.LookupEnv)
}

// NewBackend returns the backend implementing kind.
func NewBackend(kind Kind, exec command.Executor) (Backend, error) {
	switch kind {
	case KindHyprland:
		return NewHyprland(exec), nil
	case KindWlrctl:
		return NewWlrctl(exec), nil
	case KindWmctrl:
		return NewWmctrl(exec), nil
	default:
		return nil, fmt.Errorf("unsupported window backend: %s", kind)
	}
}
