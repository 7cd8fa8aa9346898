package wm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskresolve/internal/command/commandtest"
)

func TestHyprlandListWindows(t *testing.T) {
	stub := commandtest.NewStub().Succeed(
		`[{"class":"org.mozilla.firefox","title":"Mozilla Firefox","address":"0x1"}]`,
		"hyprctl", "clients", "-j")

	windows, err := NewHyprland(stub).ListWindows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Window{{
		Title:   "Mozilla Firefox",
		Class:   "org.mozilla.firefox",
		Address: "0x1",
	}}, windows)
	assert.Equal(t, []string{"hyprctl clients -j"}, stub.Calls())
}

func TestParseHyprctlClients(t *testing.T) {
	t.Run("missing and non-string fields become empty", func(t *testing.T) {
		windows, err := parseHyprctlClients([]byte(`[{"title":"only title","address":12,"pid":3}, {}]`))
		require.NoError(t, err)
		assert.Equal(t, []Window{{Title: "only title"}, {}}, windows)
	})

	t.Run("empty array", func(t *testing.T) {
		windows, err := parseHyprctlClients([]byte(`[]`))
		require.NoError(t, err)
		assert.Empty(t, windows)
	})

	for name, input := range map[string]string{
		"malformed":     `[{"class":`,
		"empty output":  ``,
		"object":        `{"class":"x"}`,
		"null":          `null`,
		"array of ints": `[1,2]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseHyprctlClients([]byte(input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestHyprlandFailures(t *testing.T) {
	t.Run("non-zero exit", func(t *testing.T) {
		stub := commandtest.NewStub().Fail(1, "Couldn't connect\n", "hyprctl", "clients", "-j")
		_, err := NewHyprland(stub).ListWindows(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCommand)
		assert.EqualError(t, err, "hyprctl clients -j: exited with status 1: Couldn't connect")
	})

	t.Run("binary missing", func(t *testing.T) {
		stub := commandtest.NewStub().Error(errors.New("executable file not found"), "hyprctl", "clients", "-j")
		_, err := NewHyprland(stub).ListWindows(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExecution)
		assert.NotErrorIs(t, err, ErrCommand)
	})

	t.Run("malformed output", func(t *testing.T) {
		stub := commandtest.NewStub().Succeed("not json", "hyprctl", "clients", "-j")
		_, err := NewHyprland(stub).ListWindows(context.Background())
		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestHyprlandFocusWindow(t *testing.T) {
	stub := commandtest.NewStub().Succeed("ok", "hyprctl", "dispatch", "focuswindow", "address:0x55")
	require.NoError(t, NewHyprland(stub).FocusWindow(context.Background(), "0x55"))
	assert.Equal(t, []string{"hyprctl dispatch focuswindow address:0x55"}, stub.Calls())

	stub = commandtest.NewStub().Fail(1, "", "hyprctl", "dispatch", "focuswindow", "address:0x55")
	assert.ErrorIs(t, NewHyprland(stub).FocusWindow(context.Background(), "0x55"), ErrCommand)
}

func TestWlrctlListWindows(t *testing.T) {
	out := "org.wezfurlong.wezterm: WezTerm\n" +
		"no colon here\n" +
		"\n" +
		"firefox: Docs: Chapter 1 \n"
	stub := commandtest.NewStub().Succeed(out, "wlrctl", "toplevel", "list")

	windows, err := NewWlrctl(stub).ListWindows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Window{
		{Class: "org.wezfurlong.wezterm", Title: "WezTerm", Address: "org.wezfurlong.wezterm"},
		{Class: "firefox", Title: "Docs: Chapter 1", Address: "firefox"},
	}, windows)
}

func TestWlrctlFailures(t *testing.T) {
	stub := commandtest.NewStub().Fail(2, "no compositor", "wlrctl", "toplevel", "list")
	_, err := NewWlrctl(stub).ListWindows(context.Background())
	assert.ErrorIs(t, err, ErrCommand)

	stub = commandtest.NewStub().Succeed("", "wlrctl", "toplevel", "focus", "firefox")
	require.NoError(t, NewWlrctl(stub).FocusWindow(context.Background(), "firefox"))
	assert.Equal(t, []string{"wlrctl toplevel focus firefox"}, stub.Calls())
}

func TestWmctrlListWindows(t *testing.T) {
	out := "0x02800003  0 pycharm.PyCharm  ubuntu PyCharm Projects\n" +
		"0x03000001 -1 short line\n" +
		"0x04000007  1 Navigator.firefox.Firefox  host   Mozilla   Firefox\n" +
		"0x05000001  0 xterm  host  xterm\n"
	stub := commandtest.NewStub().Succeed(out, "wmctrl", "-l", "-x")

	windows, err := NewWmctrl(stub).ListWindows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Window{
		{Class: "PyCharm", Title: "PyCharm Projects", Address: "0x02800003"},
		{Class: "Firefox", Title: "Mozilla Firefox", Address: "0x04000007"},
		{Class: "xterm", Title: "xterm", Address: "0x05000001"},
	}, windows)
}

func TestWmctrlListIgnoresExitStatus(t *testing.T) {
	stub := commandtest.NewStub().FailWithOutput(1, "0x1 0 a.B host title\n", "", "wmctrl", "-l", "-x")
	windows, err := NewWmctrl(stub).ListWindows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Window{{Class: "B", Title: "title", Address: "0x1"}}, windows)

	stub = commandtest.NewStub().Fail(1, "Cannot open display.", "wmctrl", "-l", "-x")
	windows, err = NewWmctrl(stub).ListWindows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestWmctrlFailures(t *testing.T) {
	stub := commandtest.NewStub().Error(errors.New("executable file not found"), "wmctrl", "-l", "-x")
	_, err := NewWmctrl(stub).ListWindows(context.Background())
	assert.ErrorIs(t, err, ErrExecution)

	stub = commandtest.NewStub().Fail(1, "", "wmctrl", "-i", "-a", "0x1")
	err = NewWmctrl(stub).FocusWindow(context.Background(), "0x1")
	assert.ErrorIs(t, err, ErrCommand)
	assert.EqualError(t, err, "wmctrl -i -a 0x1: exited with status 1")
}

func TestParsersHandleLongLines(t *testing.T) {
	long := strings.Repeat("x", 70*1024)

	wmctrl := "0x0 0 a.First host first\n" +
		"0x1 0 b.Long host " + long + "\n" +
		"0x2 0 c.After host after\n"
	windows := parseWmctrlList([]byte(wmctrl))
	require.Len(t, windows, 3)
	assert.Equal(t, long, windows[1].Title)
	assert.Equal(t, Window{Class: "After", Title: "after", Address: "0x2"}, windows[2])

	wlrctl := "first: one\nlong: " + long + "\nafter: two\n"
	windows = parseWlrctlToplevels([]byte(wlrctl))
	require.Len(t, windows, 3)
	assert.Equal(t, long, windows[1].Title)
	assert.Equal(t, Window{Class: "after", Title: "two", Address: "after"}, windows[2])
}
