package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchDirsDefaults(t *testing.T) {
	dirs := SearchDirs(envFrom(nil), "/home/u")
	assert.Equal(t, []string{
		"/usr/share/icons/hicolor/48x48/apps",
		"/usr/share/icons/hicolor/32x32/apps",
		"/usr/share/icons/hicolor/128x128/apps",
		"/usr/share/icons/hicolor/scalable/apps",
		"/usr/share/pixmaps",
		"/usr/share/icons",
		"/usr/local/share/icons/hicolor/48x48/apps",
		"/usr/local/share/icons/hicolor/32x32/apps",
		"/usr/local/share/icons/hicolor/128x128/apps",
		"/usr/local/share/icons/hicolor/scalable/apps",
		"/usr/local/share/pixmaps",
		"/usr/local/share/icons",
		"/home/u/.local/share/icons/hicolor/48x48/apps",
		"/home/u/.local/share/icons/hicolor/32x32/apps",
		"/home/u/.local/share/icons/hicolor/128x128/apps",
		"/home/u/.local/share/icons/hicolor/scalable/apps",
		"/home/u/.local/share/icons",
		"/home/u/.steam/root/appcache/librarycache",
		"/home/u/.local/share/icons/hicolor/48x48/apps",
	}, dirs)
}

func TestSearchDirsFromEnv(t *testing.T) {
	dirs := SearchDirs(envFrom(map[string]string{
		"XDG_DATA_DIRS": "/opt/a::/opt/b",
		"XDG_DATA_HOME": "/data",
	}), "")
	assert.Equal(t, []string{
		"/opt/a/icons/hicolor/48x48/apps",
		"/opt/a/icons/hicolor/32x32/apps",
		"/opt/a/icons/hicolor/128x128/apps",
		"/opt/a/icons/hicolor/scalable/apps",
		"/opt/a/pixmaps",
		"/opt/a/icons",
		"/opt/b/icons/hicolor/48x48/apps",
		"/opt/b/icons/hicolor/32x32/apps",
		"/opt/b/icons/hicolor/128x128/apps",
		"/opt/b/icons/hicolor/scalable/apps",
		"/opt/b/pixmaps",
		"/opt/b/icons",
		"/data/icons/hicolor/48x48/apps",
		"/data/icons/hicolor/32x32/apps",
		"/data/icons/hicolor/128x128/apps",
		"/data/icons/hicolor/scalable/apps",
		"/data/icons",
	}, dirs)
}
