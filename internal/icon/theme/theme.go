// Package theme looks icons up in freedesktop icon themes via their
// index.theme files. It searches the configured theme and then hicolor; the
// Inherits chain is not followed.
package theme

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/ini.v1"
)

// Fallback is the theme every installation is expected to ship.
const Fallback = "hicolor"

// Directory types as written in index.theme.
const (
	TypeFixed     = "Fixed"
	TypeScalable  = "Scalable"
	TypeThreshold = "Threshold"
)

var extensions = []string{"png", "svg", "xpm"}

// Icon is one candidate file for a lookup.
type Icon struct {
	Path    string
	Type    string
	MinSize int
	MaxSize int
}

type directory struct {
	name    string
	typ     string
	minSize int
	maxSize int
}

type index struct {
	directories []directory
}

// Lookup finds icons in the named theme. It is safe for concurrent use.
type Lookup struct {
	name   string
	getenv func(string) string
	home   string
	stat   func(string) (fs.FileInfo, error)

	mu      sync.Mutex
	indexes map[string]*index // nil value: theme not installed
}

type Option func(*Lookup)

// WithEnv replaces os.Getenv for XDG_DATA_DIRS and XDG_DATA_HOME.
func WithEnv(getenv func(string) string) Option {
	return func(l *Lookup) {
		l.getenv = getenv
	}
}

// WithHomeDir sets the home directory used for ~/.icons and ~/.local/share.
func WithHomeDir(home string) Option {
	return func(l *Lookup) {
		l.home = home
	}
}

// WithStat replaces os.Stat for every file probe.
func WithStat(stat func(string) (fs.FileInfo, error)) Option {
	return func(l *Lookup) {
		l.stat = stat
	}
}

// New creates a Lookup for theme name. An empty name searches hicolor only.
func New(name string, opts ...Option) *Lookup {
	home, _ := os.UserHomeDir()
	l := &Lookup{
		name:    name,
		getenv:  os.Getenv,
		home:    home,
		stat:    os.Stat,
		indexes: make(map[string]*index),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name returns the primary theme searched.
func (l *Lookup) Name() string {
	if l.name == "" {
		return Fallback
	}
	return l.name
}

// Lookup yields candidate files for token, primary theme first, in
// index.theme directory order. Work happens only as values are pulled.
func (l *Lookup) Lookup(token string) iter.Seq[Icon] {
	return func(yield func(Icon) bool) {
		if token == "" || strings.ContainsRune(token, filepath.Separator) {
			return
		}
		bases := l.baseDirs()
		for _, name := range l.themes() {
			idx := l.index(name, bases)
			if idx == nil {
				continue
			}
			for _, dir := range idx.directories {
				for _, base := range bases {
					for _, ext := range extensions {
						p := filepath.Join(base, name, dir.name, token+"."+ext)
						if _, err := l.stat(p); err != nil {
							continue
						}
						icon := Icon{Path: p, Type: dir.typ, MinSize: dir.minSize, MaxSize: dir.maxSize}
						if !yield(icon) {
							return
						}
					}
				}
			}
		}
	}
}

func (l *Lookup) themes() []string {
	if l.name == "" || l.name == Fallback {
		return []string{Fallback}
	}
	return []string{l.name, Fallback}
}

// baseDirs returns the icon base directories in lookup order.
func (l *Lookup) baseDirs() []string {
	var bases []string
	if d := l.getenv("XDG_DATA_HOME"); filepath.IsAbs(d) {
		bases = append(bases, filepath.Join(d, "icons"))
	} else if l.home != "" {
		bases = append(bases, filepath.Join(l.home, ".local", "share", "icons"))
	}
	if l.home != "" {
		bases = append(bases, filepath.Join(l.home, ".icons"))
	}
	dataDirs := l.getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, d := range strings.Split(dataDirs, ":") {
		if d != "" {
			bases = append(bases, filepath.Join(d, "icons"))
		}
	}
	return bases
}

// index loads the first index.theme found for name and remembers the result,
// including absence.
func (l *Lookup) index(name string, bases []string) *index {
	l.mu.Lock()
	defer l.mu.Unlock()
	if idx, ok := l.indexes[name]; ok {
		return idx
	}

	var idx *index
	for _, base := range bases {
		p := filepath.Join(base, name, "index.theme")
		if _, err := l.stat(p); err != nil {
			continue
		}
		parsed, err := parseIndex(p)
		if err != nil {
			continue
		}
		idx = parsed
		break
	}
	l.indexes[name] = idx
	return idx
}

func parseIndex(path string) (*index, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, path)
	if err != nil {
		return nil, err
	}

	header, err := cfg.GetSection("Icon Theme")
	if err != nil {
		return nil, err
	}

	var names []string
	names = append(names, header.Key("Directories").Strings(",")...)
	names = append(names, header.Key("ScaledDirectories").Strings(",")...)

	idx := &index{}
	seen := make(map[string]bool)
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		sec, err := cfg.GetSection(name)
		if err != nil {
			continue
		}
		idx.directories = append(idx.directories, parseDirectory(name, sec))
	}
	return idx, nil
}

func parseDirectory(name string, sec *ini.Section) directory {
	size := sec.Key("Size").MustInt(0)
	d := directory{
		name: name,
		typ:  sec.Key("Type").MustString(TypeThreshold),
	}
	switch d.typ {
	case TypeFixed:
		d.minSize, d.maxSize = size, size
	case TypeScalable:
		d.minSize = sec.Key("MinSize").MustInt(size)
		d.maxSize = sec.Key("MaxSize").MustInt(size)
	default:
		d.typ = TypeThreshold
		threshold := sec.Key("Threshold").MustInt(2)
		d.minSize, d.maxSize = size-threshold, size+threshold
	}
	return d
}

// DetectName returns the GTK icon theme configured for the user, or
// Fallback when none is set.
func DetectName(getenv func(string) string, home string) string {
	configHome := getenv("XDG_CONFIG_HOME")
	if !filepath.IsAbs(configHome) {
		if home == "" {
			return Fallback
		}
		configHome = filepath.Join(home, ".config")
	}
	for _, dir := range []string{"gtk-4.0", "gtk-3.0"} {
		cfg, err := ini.Load(filepath.Join(configHome, dir, "settings.ini"))
		if err != nil {
			continue
		}
		if name := strings.TrimSpace(cfg.Section("Settings").Key("gtk-icon-theme-name").String()); name != "" {
			return name
		}
	}
	return Fallback
}
