// Package assets resolves the payloads bundled with the installer.
//
// Each payload has a compile-time embedded copy and may be overridden
// by a file shipped next to the installer binary. Overrides are
// resolved relative to the executable's own directory, never the
// working directory, so a packaged release tree behaves the same from
// any invocation location.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hooklinehq/hookline/hooks"
	"github.com/hooklinehq/hookline/statusline"
)

// Payload is one bundled file the installer can write into a project.
type Payload struct {
	// RelPath is the payload's path relative to the installer binary.
	RelPath string

	// Embedded is the compile-time copy, used when no override exists.
	Embedded []byte
}

// StatusLineScript returns the status-line script payload.
func StatusLineScript() Payload {
	return Payload{
		RelPath:  filepath.Join("statusline", statusline.FileName),
		Embedded: statusline.Script,
	}
}

// HooksDocument returns the hooks reference document payload.
func HooksDocument() Payload {
	return Payload{
		RelPath:  filepath.Join("hooks", hooks.FileName),
		Embedded: hooks.Document,
	}
}

// Load returns the payload bytes, preferring an on-disk copy next to
// the running executable over the embedded fallback.
func (p Payload) Load() ([]byte, error) {
	dir, err := executableDir()
	if err != nil {
		// No way to locate overrides; the embedded copy still works.
		dir = ""
	}
	return p.LoadFrom(dir)
}

// LoadFrom resolves the payload against dir. An empty dir skips the
// override lookup. An override that exists but cannot be read is an
// error rather than a silent fallback: the operator shipped it for a
// reason.
func (p Payload) LoadFrom(dir string) ([]byte, error) {
	if dir != "" {
		path := filepath.Join(dir, p.RelPath)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read bundled %s: %w", path, err)
		}
	}
	if len(p.Embedded) == 0 {
		return nil, fmt.Errorf("no bundled copy of %s", p.RelPath)
	}
	return p.Embedded, nil
}

// executableDir returns the directory holding the running binary, with
// symlinks resolved so overrides next to the real file are found.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
