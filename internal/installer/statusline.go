package installer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hooklinehq/hookline/statusline"
)

// StatusLineBlock is the settings.json entry that points the assistant
// at the installed script.
type StatusLineBlock struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Padding int    `json:"padding"`
}

// DefaultStatusLine returns the block written on a fresh install.
func DefaultStatusLine() StatusLineBlock {
	return StatusLineBlock{
		Type:    "command",
		Command: statusline.Command,
		Padding: 0,
	}
}

// StatusLineResult reports what InstallStatusLine did.
type StatusLineResult struct {
	// ScriptPath is where the script was written.
	ScriptPath string

	// SettingsPath is the settings file that was inspected.
	SettingsPath string

	// Action is the settings outcome. The script itself is always
	// (re)written; only the settings handling varies.
	Action Action

	// Warning is the operator guidance for ActionSkipped and ActionManual.
	Warning string

	// Snippet is the settings block to add by hand, set with ActionManual.
	Snippet string
}

// InstallStatusLine copies the status-line script into configDir, marks
// it executable, and makes sure settings.json references it:
//
//   - no settings.json: create one containing only the statusLine block
//   - settings.json with a statusLine key: leave it untouched and warn;
//     an existing customization is never overwritten
//   - settings.json without a statusLine key: report the block the
//     operator should add, without editing the file
func InstallStatusLine(configDir string, script []byte) (StatusLineResult, error) {
	res := StatusLineResult{
		ScriptPath:   filepath.Join(configDir, statusline.FileName),
		SettingsPath: filepath.Join(configDir, SettingsFileName),
	}

	if len(script) == 0 {
		return res, errors.New("status-line script payload is empty")
	}
	if err := os.WriteFile(res.ScriptPath, script, 0o755); err != nil {
		return res, fmt.Errorf("copy status-line script: %w", err)
	}
	// WriteFile keeps the previous mode when the file already existed.
	if err := os.Chmod(res.ScriptPath, 0o755); err != nil {
		return res, fmt.Errorf("mark %s executable: %w", res.ScriptPath, err)
	}

	existing, err := os.ReadFile(res.SettingsPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		doc, err := freshStatusLineSettings()
		if err != nil {
			return res, err
		}
		if err := writeFileAtomic(res.SettingsPath, doc, 0o644); err != nil {
			return res, err
		}
		res.Action = ActionCreated
		return res, nil
	case err != nil:
		return res, fmt.Errorf("read %s: %w", res.SettingsPath, err)
	}

	if hasTopLevelKey(existing, "statusLine") {
		res.Action = ActionSkipped
		res.Warning = fmt.Sprintf("settings.json already configures a status line; verify it runs %s", statusline.Command)
		return res, nil
	}

	snippet, err := json.MarshalIndent(map[string]StatusLineBlock{"statusLine": DefaultStatusLine()}, "", "  ")
	if err != nil {
		return res, fmt.Errorf("render statusLine block: %w", err)
	}
	res.Action = ActionManual
	res.Warning = "settings.json has no statusLine entry; add the block below to enable the status line"
	res.Snippet = string(snippet)
	return res, nil
}

// freshStatusLineSettings renders a settings document containing only
// the default statusLine block.
func freshStatusLineSettings() ([]byte, error) {
	doc := struct {
		StatusLine StatusLineBlock `json:"statusLine"`
	}{StatusLine: DefaultStatusLine()}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render settings document: %w", err)
	}
	return append(out, '\n'), nil
}
