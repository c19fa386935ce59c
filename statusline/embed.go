// Package statusline provides the embedded status-line script payload.
//
// The script is embedded at compile time via go:embed so that every
// distribution channel can install it without requiring network access
// or a source checkout next to the binary.
package statusline

import (
	_ "embed"
)

// Script holds the raw bytes of the status-line shell script.
//
//go:embed statusline.sh
var Script []byte

// FileName is the name the script is installed under inside the
// assistant's configuration directory.
const FileName = "statusline.sh"

// Command is the value written into settings.json so the assistant
// invokes the installed script, relative to the project root.
const Command = ".claude/statusline.sh"
