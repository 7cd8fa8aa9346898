// Package icon resolves icon names, as found in desktop entries or derived
// from window classes, to files on disk.
//
// Resolution tries, in order: the token as an absolute path, the icon theme,
// a heuristic scan of well-known directories, and finally the theme again
// with the token's extension stripped. Every outcome, misses included, is
// cached for the life of the Resolver.
package icon

import (
	"iter"
	"os"
	"path/filepath"
	"strings"

	"deskresolve/internal/icon/theme"
	"deskresolve/pkg/core"
)

// ThemeLookup ranks candidate files for an icon name. Resolver only pulls
// the first value.
type ThemeLookup interface {
	Lookup(token string) iter.Seq[theme.Icon]
}

type Resolver struct {
	cache *Cache
	fs    FileSystem
	theme ThemeLookup
	rules []Rule
	log   core.Logger

	getenv func(string) string
	home   string
}

type Option func(*Resolver)

func WithFileSystem(fsys FileSystem) Option {
	return func(r *Resolver) {
		r.fs = fsys
	}
}

func WithThemeLookup(l ThemeLookup) Option {
	return func(r *Resolver) {
		r.theme = l
	}
}

// WithRules replaces DefaultRules for the heuristic scan.
func WithRules(rules ...Rule) Option {
	return func(r *Resolver) {
		r.rules = rules
	}
}

// WithEnv replaces os.Getenv when computing search directories.
func WithEnv(getenv func(string) string) Option {
	return func(r *Resolver) {
		r.getenv = getenv
	}
}

func WithHomeDir(home string) Option {
	return func(r *Resolver) {
		r.home = home
	}
}

// NewResolver creates a resolver with an empty cache. Without
// WithThemeLookup the theme steps are skipped.
func NewResolver(log core.Logger, opts ...Option) *Resolver {
	home, _ := os.UserHomeDir()
	r := &Resolver{
		cache:  NewCache(),
		fs:     OSFileSystem{},
		rules:  DefaultRules(),
		log:    log,
		getenv: os.Getenv,
		home:   home,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cache returns the resolver's cache.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// Resolve returns the file for token. The second result is false when
// nothing was found; that answer is cached like any other.
func (r *Resolver) Resolve(token string) (string, bool) {
	if path, found, ok := r.cache.Get(token); ok {
		return path, found
	}

	path, found := r.resolve(token)
	r.cache.Put(token, path, found)

	if found {
		r.log.Debug("Icon resolved", "token", token, "path", path)
	} else {
		r.log.Debug("Icon not found", "token", token)
	}
	return path, found
}

func (r *Resolver) resolve(token string) (string, bool) {
	if filepath.IsAbs(token) && exists(r.fs, token) {
		return canonicalize(r.fs, token), true
	}

	if p, ok := r.fromTheme(token); ok {
		return p, true
	}

	if p, ok := r.search(token); ok {
		return p, true
	}

	if stem, ok := fileStem(token); ok {
		return r.fromTheme(stem)
	}
	return "", false
}

func (r *Resolver) fromTheme(token string) (string, bool) {
	if r.theme == nil {
		return "", false
	}
	for candidate := range r.theme.Lookup(token) {
		return canonicalize(r.fs, candidate.Path), true
	}
	return "", false
}

func (r *Resolver) search(token string) (string, bool) {
	for _, dir := range SearchDirs(r.getenv, r.home) {
		if !exists(r.fs, dir) {
			continue
		}
		for _, rule := range r.rules {
			if p, ok := rule(r.fs, dir, token); ok {
				return canonicalize(r.fs, p), true
			}
		}
	}
	return "", false
}

// fileStem returns the final path element of token without its extension,
// reporting whether that differs from token.
func fileStem(token string) (string, bool) {
	base := filepath.Base(token)
	ext := filepath.Ext(base)
	stem := base
	if ext != "" && ext != base {
		stem = strings.TrimSuffix(base, ext)
	}
	if stem == "" || stem == "." || stem == token {
		return "", false
	}
	return stem, true
}
