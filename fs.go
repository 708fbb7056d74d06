package skelgen

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathResolver anchors relative paths to the directory the tool was
// invoked from.
type PathResolver struct {
	wd string
}

func NewPathResolver() (*PathResolver, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("could not get current working directory: %w", err)
	}
	return &PathResolver{wd: wd}, nil
}

func (r *PathResolver) Base() string { return r.wd }

func (r *PathResolver) Resolve(relativePath string) string {
	if filepath.IsAbs(relativePath) {
		return filepath.Clean(relativePath)
	}
	return filepath.Join(r.wd, relativePath)
}

// Rel maps an absolute path back to an invocation-relative one for display.
func (r *PathResolver) Rel(path string) string {
	if rel, err := filepath.Rel(r.wd, path); err == nil {
		return rel
	}
	return path
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// ensureDir guarantees path exists as a directory. An existing directory is
// a no-op; an existing non-directory at the same path is fatal.
func ensureDir(path string) (created bool, err error) {
	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, fmt.Errorf("path %s exists and is not a directory", path)
	case os.IsNotExist(err):
		if err := os.MkdirAll(path, 0755); err != nil {
			return false, fmt.Errorf("mkdir %s: %w", path, err)
		}
		return true, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
}

// createFileIfAbsent writes content to path only when nothing exists there.
// Reports whether the file was created; an existing directory at the path
// is fatal, an existing file is left byte-for-byte untouched.
func createFileIfAbsent(path string, content []byte) (created bool, err error) {
	info, err := os.Lstat(path)
	switch {
	case err == nil && info.IsDir():
		return false, fmt.Errorf("path %s exists and is a directory", path)
	case err == nil:
		return false, nil
	case os.IsNotExist(err):
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
		if err != nil {
			return false, fmt.Errorf("create %s: %w", path, err)
		}
		_, werr := f.Write(content)
		cerr := f.Close()
		if werr != nil {
			return false, fmt.Errorf("write %s: %w", path, werr)
		}
		if cerr != nil {
			return false, fmt.Errorf("close %s: %w", path, cerr)
		}
		return true, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
}
