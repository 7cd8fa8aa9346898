package icon

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem is the read-only view of the disk the resolver probes.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	EvalSymlinks(path string) (string, error)
}

// OSFileSystem reads the real filesystem.
type OSFileSystem struct{}

func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (OSFileSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

func exists(fsys FileSystem, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// canonicalize resolves symlinks, falling back to path unchanged.
func canonicalize(fsys FileSystem, path string) string {
	resolved, err := fsys.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}
