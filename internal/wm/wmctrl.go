package wm

import (
	"context"
	"strings"

	"deskresolve/internal/command"
)

// Wmctrl is the X11 fallback using EWMH through wmctrl.
type Wmctrl struct {
	exec command.Executor
}

func NewWmctrl(exec command.Executor) *Wmctrl {
	return &Wmctrl{exec: exec}
}

func (x *Wmctrl) Name() string {
	return "wmctrl"
}

// ListWindows parses whatever wmctrl printed. Its exit status is not
// checked; only a failure to run it is an error.
func (x *Wmctrl) ListWindows(ctx context.Context) ([]Window, error) {
	out, err := x.exec.Execute(ctx, "wmctrl", "-l", "-x")
	if err != nil {
		return nil, &ExecutionError{Backend: x.Name(), Err: err}
	}
	return parseWmctrlList(out.Stdout), nil
}

// parseWmctrlList reads `wmctrl -l -x` lines:
//
//	<id> <desktop> <instance.Class> <host> <title...>
//
// Lines with fewer than five fields are skipped.
func parseWmctrlList(output []byte) []Window {
	var windows []Window
	for _, line := range strings.Split(string(output), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		class := fields[2]
		if i := strings.LastIndex(class, "."); i >= 0 {
			class = class[i+1:]
		}
		windows = append(windows, Window{
			Title:   strings.Join(fields[4:], " "),
			Class:   class,
			Address: fields[0],
		})
	}
	return windows
}

func (x *Wmctrl) FocusWindow(ctx context.Context, address string) error {
	_, err := run(ctx, x.exec, x.Name(), "wmctrl", "-i", "-a", address)
	return err
}
