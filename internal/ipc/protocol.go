package ipc

import "deskresolve/internal/wm"

// Commands understood by the daemon.
const (
	CmdPing        = "ping"
	CmdListWindows = "list_windows"
	CmdFocusWindow = "focus_window"
	CmdResolveIcon = "resolve_icon"
	CmdBackend     = "backend"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type Request struct {
	Command string `json:"command"`
	Address string `json:"address,omitempty"`
	Token   string `json:"token,omitempty"`
}

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Windows []wm.Window `json:"windows,omitempty"`
	Icon    string      `json:"icon,omitempty"`
	Found   bool        `json:"found,omitempty"`
	Backend string      `json:"backend,omitempty"`
}

// OK reports whether the daemon handled the request.
func (r Response) OK() bool {
	return r.Status == StatusSuccess
}
