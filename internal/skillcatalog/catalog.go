package skillcatalog

import (
	"strings"

	"github.com/hooklinehq/hookline/skills"
)

const SkillFileName = skills.SkillFileName

// Skill describes one installable agent skill.
type Skill struct {
	Name        string
	Description string
	Content     string
}

var catalog = []Skill{
	{
		Name:        skills.SafeShellName,
		Description: "Conventions for running shell commands safely alongside the PreToolUse guard.",
		Content:     skills.SafeShellContent,
	},
	{
		Name:        skills.AutoFormatName,
		Description: "How the PostToolUse formatter interacts with edits and how to keep diffs clean.",
		Content:     skills.AutoFormatContent,
	},
	{
		Name:        skills.SessionNotesName,
		Description: "Session start and stop rituals that pair with the SessionStart and Stop hooks.",
		Content:     skills.SessionNotesContent,
	},
}

// All returns a copy of all embedded skills in deterministic install order.
func All() []Skill {
	out := make([]Skill, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns all valid skill names in deterministic order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, sk := range catalog {
		names = append(names, sk.Name)
	}
	return names
}

// Get returns one skill by exact name.
func Get(name string) (Skill, bool) {
	name = strings.TrimSpace(name)
	for _, sk := range catalog {
		if sk.Name == name {
			return sk, true
		}
	}
	return Skill{}, false
}
