package installer

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/hooklinehq/hookline/hooks"
)

// HooksResult reports what MergeHooks did.
type HooksResult struct {
	// SettingsPath is the settings file that was inspected or written.
	SettingsPath string

	// Action is the merge outcome.
	Action Action

	// Warning is the operator guidance for ActionSkipped and ActionManual.
	Warning string

	// Categories summarizes the bundled hook groups, set with
	// ActionManual so the operator knows what a manual merge adds.
	Categories []string
}

// MergeHooks merges the hooks object from the bundled source document
// into settings.json inside configDir:
//
//   - settings.json already has a hooks key: refuse to merge and warn;
//     existing hook configuration is never overwritten
//   - settings.json exists without hooks: set only the hooks key,
//     preserving every other byte of the document
//   - settings.json exists but is not parseable JSON: modify nothing
//     and hand the operator a summary of what to merge; splicing text
//     into a file we cannot parse risks corrupting it
//   - no settings.json: write one whose only key is hooks
//
// The source document's metadata keys ($schema, version) never reach
// the settings file. Writes are atomic.
func MergeHooks(configDir string, source []byte) (HooksResult, error) {
	res := HooksResult{SettingsPath: filepath.Join(configDir, SettingsFileName)}

	if !gjson.ValidBytes(source) {
		return res, fmt.Errorf("%w: not valid JSON", ErrHooksSourceMissing)
	}
	hooksVal := gjson.GetBytes(source, "hooks")
	if !hooksVal.Exists() {
		return res, fmt.Errorf("%w: no hooks key in source", ErrHooksSourceMissing)
	}

	existing, err := os.ReadFile(res.SettingsPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		doc, err := sjson.SetRawBytes([]byte("{}"), "hooks", []byte(hooksVal.Raw))
		if err != nil {
			return res, fmt.Errorf("build settings document: %w", err)
		}
		if err := writeFileAtomic(res.SettingsPath, append(doc, '\n'), 0o644); err != nil {
			return res, err
		}
		res.Action = ActionCreated
		return res, nil
	case err != nil:
		return res, fmt.Errorf("read %s: %w", res.SettingsPath, err)
	}

	if hasTopLevelKey(existing, "hooks") {
		res.Action = ActionSkipped
		res.Warning = fmt.Sprintf("settings.json already configures hooks; reconcile by hand against the bundled %s", hooks.FileName)
		return res, nil
	}

	if !gjson.ValidBytes(existing) {
		res.Action = ActionManual
		res.Warning = "settings.json could not be parsed as JSON; merge the bundled hooks by hand"
		res.Categories = hooks.Categories
		return res, nil
	}

	merged, err := sjson.SetRawBytes(existing, "hooks", []byte(hooksVal.Raw))
	if err != nil {
		return res, fmt.Errorf("merge hooks into settings: %w", err)
	}
	if err := writeFileAtomic(res.SettingsPath, merged, 0o644); err != nil {
		return res, err
	}
	res.Action = ActionMerged
	return res, nil
}

// hasTopLevelKey reports whether the settings document configures key.
// Falls back to a textual containment check when the document is not
// parseable, which errs on the side of refusing a merge.
func hasTopLevelKey(doc []byte, key string) bool {
	if gjson.ValidBytes(doc) {
		return gjson.GetBytes(doc, key).Exists()
	}
	return bytes.Contains(doc, []byte(`"`+key+`"`))
}

// writeFileAtomic writes data to path via a temp file and rename so a
// failed write never truncates an existing settings file.
func writeFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".hookline-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("set mode on %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
