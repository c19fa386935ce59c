// Package hooks provides the embedded hooks reference document.
//
// hooks.json is the canonical copy of the lifecycle hook configuration
// shipped with hookline. It carries $schema and version metadata keys on
// top of the hooks object; the installer strips those when writing a
// project settings file.
package hooks

import (
	_ "embed"
)

// Document holds the raw bytes of the bundled hooks.json.
//
//go:embed hooks.json
var Document []byte

// FileName is the name of the bundled hooks document.
const FileName = "hooks.json"

// Categories summarizes the hook groups in the bundled document, in
// document order. Shown to the operator when a merge cannot be applied
// automatically and the hooks have to be reviewed by hand.
var Categories = []string{
	"SessionStart: session-start notification",
	"PreToolUse:   dangerous-command blocking",
	"PostToolUse:  auto-format on save",
	"Stop:         pre-exit verification",
}
