package icon

import (
	"path/filepath"
	"strings"
)

var defaultDataDirs = []string{"/usr/share", "/usr/local/share"}

var hicolorAppDirs = []string{
	"icons/hicolor/48x48/apps",
	"icons/hicolor/32x32/apps",
	"icons/hicolor/128x128/apps",
	"icons/hicolor/scalable/apps",
}

// SearchDirs lists the directories probed by the heuristic search, in order.
// getenv supplies XDG_DATA_DIRS and XDG_DATA_HOME; home may be empty, in
// which case the per-user directories are skipped.
func SearchDirs(getenv func(string) string, home string) []string {
	var dirs []string

	dataDirs := splitPathList(getenv("XDG_DATA_DIRS"))
	if len(dataDirs) == 0 {
		dataDirs = defaultDataDirs
	}
	for _, d := range dataDirs {
		for _, suffix := range hicolorAppDirs {
			dirs = append(dirs, filepath.Join(d, suffix))
		}
		dirs = append(dirs, filepath.Join(d, "pixmaps"), filepath.Join(d, "icons"))
	}

	if local := dataHome(getenv, home); local != "" {
		for _, suffix := range hicolorAppDirs {
			dirs = append(dirs, filepath.Join(local, suffix))
		}
		dirs = append(dirs, filepath.Join(local, "icons"))
	}

	if home != "" {
		dirs = append(dirs,
			filepath.Join(home, ".steam", "root", "appcache", "librarycache"),
			filepath.Join(home, ".local", "share", "icons", "hicolor", "48x48", "apps"),
		)
	}
	return dirs
}

func dataHome(getenv func(string) string, home string) string {
	if d := getenv("XDG_DATA_HOME"); filepath.IsAbs(d) {
		return d
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".local", "share")
}

func splitPathList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ":") {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
