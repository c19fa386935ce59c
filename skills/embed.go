package skills

import (
	_ "embed"
)

const SkillFileName = "SKILL.md"

const (
	SafeShellName    = "safe-shell"
	AutoFormatName   = "auto-format"
	SessionNotesName = "session-notes"
)

//go:embed safe-shell/SKILL.md
var SafeShellContent string

//go:embed auto-format/SKILL.md
var AutoFormatContent string

//go:embed session-notes/SKILL.md
var SessionNotesContent string
