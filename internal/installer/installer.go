// Package installer implements idempotent installation of hookline
// plugins into an assistant configuration directory.
//
// The package never prints; every operation returns a result describing
// what it did (or deliberately did not do) so the command layer can
// report it. All settings writes are whole-file and atomic: a failed
// write leaves any pre-existing settings.json untouched.
package installer

import (
	"errors"
)

// SettingsFileName is the assistant settings file inside the
// configuration directory.
const SettingsFileName = "settings.json"

// Sentinel errors for conditions the command layer maps to distinct
// operator guidance.
var (
	// ErrTargetNotFound means an explicit --target path does not exist
	// as a directory. Fatal to the whole run; nothing is written.
	ErrTargetNotFound = errors.New("target directory does not exist")

	// ErrHooksSourceMissing means the bundled hooks document is absent,
	// unreadable, or has no hooks key. Aborts only the hooks feature.
	ErrHooksSourceMissing = errors.New("hooks source document unavailable")
)

// Action classifies the outcome of one install operation.
type Action string

const (
	// ActionCreated means a settings.json was written where none existed.
	ActionCreated Action = "created"

	// ActionMerged means hooks were merged into an existing settings.json.
	ActionMerged Action = "merged"

	// ActionSkipped means existing configuration was detected and left
	// untouched. Always accompanied by a warning; never an error.
	ActionSkipped Action = "skipped"

	// ActionManual means nothing was written and the operator has to
	// apply the change by hand.
	ActionManual Action = "manual"
)

// Selection reports which features an install run performs.
type Selection struct {
	StatusLine bool
	Hooks      bool
}

// ResolveSelection derives the feature selection from the install
// flags. When neither selective flag is given, or --all is set, both
// features are installed.
func ResolveSelection(statusLine, hooks, all bool) Selection {
	if all || (!statusLine && !hooks) {
		return Selection{StatusLine: true, Hooks: true}
	}
	return Selection{StatusLine: statusLine, Hooks: hooks}
}
