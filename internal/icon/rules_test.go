package icon

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSteamRule(t *testing.T) {
	cache := filepath.Join(t.TempDir(), "librarycache")
	want := touch(t, filepath.Join(cache, "570_icon.jpg"))

	got, ok := SteamRule(OSFileSystem{}, cache, "steam_icon_570")
	assert.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = SteamRule(OSFileSystem{}, cache, "steam_icon_1")
	assert.False(t, ok)

	_, ok = SteamRule(OSFileSystem{}, cache, "570")
	assert.False(t, ok)

	_, ok = SteamRule(OSFileSystem{}, filepath.Dir(cache), "steam_icon_570")
	assert.False(t, ok)
}

func TestExtensionRule(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "app.ico"))
	want := touch(t, filepath.Join(dir, "app.xpm"))

	got, ok := ExtensionRule(DefaultExtensions...)(OSFileSystem{}, dir, "app")
	assert.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = ExtensionRule("png")(OSFileSystem{}, dir, "app")
	assert.False(t, ok)
}
