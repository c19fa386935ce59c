package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ProjectDirEnv is the environment variable naming the active project
// directory. Consulted only when no --target is given.
const ProjectDirEnv = "CLAUDE_PROJECT_DIR"

// ConfigDirName is the assistant configuration directory created under
// the resolved project root.
const ConfigDirName = ".claude"

// Options describes one install run. It is resolved once from flags and
// environment at command start and passed to components by value;
// components never consult globals themselves.
type Options struct {
	// Selection names the features this run installs.
	Selection Selection

	// Target is the explicit --target value, empty when not given.
	Target string

	// ProjectDir is the value of ProjectDirEnv, empty when unset.
	ProjectDir string
}

// OptionsFromEnv builds Options for the given selection and target,
// reading the project-directory variable from the environment.
func OptionsFromEnv(sel Selection, target string) Options {
	return Options{
		Selection:  sel,
		Target:     target,
		ProjectDir: os.Getenv(ProjectDirEnv),
	}
}

// ResolveConfigDir determines the destination configuration directory
// and creates it (and any parents) if needed. Resolution order:
//
//  1. explicit target, with a leading ~ expanded; must already exist
//  2. the project directory from the environment
//  3. the current working directory
//
// The configuration directory itself is created on demand; the target
// directory is not.
func (o Options) ResolveConfigDir() (string, error) {
	base := "."
	switch {
	case o.Target != "":
		target := ExpandHome(o.Target)
		info, err := os.Stat(target)
		if err != nil || !info.IsDir() {
			return "", fmt.Errorf("%w: %s", ErrTargetNotFound, target)
		}
		base = target
	case o.ProjectDir != "":
		base = o.ProjectDir
	}

	dir := filepath.Join(base, ConfigDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
//
// Parameters:
//   - path: File path that may start with ~
//
// Returns:
//   - string: Path with ~ expanded to the actual home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback for edge cases
		if runtime.GOOS == "windows" {
			home = os.Getenv("USERPROFILE")
		} else {
			home = os.Getenv("HOME")
		}
	}

	return filepath.Join(home, path[1:])
}
