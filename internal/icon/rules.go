package icon

import (
	"path/filepath"
	"strings"
)

// Rule looks for token inside one candidate directory.
type Rule func(fsys FileSystem, dir, token string) (string, bool)

const steamIconPrefix = "steam_icon_"

// DefaultExtensions is the order in which file extensions are tried.
var DefaultExtensions = []string{"png", "svg", "xpm", "ico", "jpg"}

// SteamRule finds Steam library artwork, which Steam stores as
// <appid>_icon.jpg under appcache/librarycache while desktop entries name it
// steam_icon_<appid>.
func SteamRule(fsys FileSystem, dir, token string) (string, bool) {
	if filepath.Base(dir) != "librarycache" || !strings.HasPrefix(token, steamIconPrefix) {
		return "", false
	}
	appID := strings.TrimPrefix(token, steamIconPrefix)
	p := filepath.Join(dir, appID+"_icon.jpg")
	if exists(fsys, p) {
		return p, true
	}
	return "", false
}

// ExtensionRule tries <token>.<ext> for each extension in order.
func ExtensionRule(exts ...string) Rule {
	return func(fsys FileSystem, dir, token string) (string, bool) {
		for _, ext := range exts {
			p := filepath.Join(dir, token+"."+ext)
			if exists(fsys, p) {
				return p, true
			}
		}
		return "", false
	}
}

// DefaultRules is the rule chain used when none is configured.
func DefaultRules() []Rule {
	return []Rule{SteamRule, ExtensionRule(DefaultExtensions...)}
}
