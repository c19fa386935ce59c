// Package main provides the skill command for managing hookline agent skills.
//
// The skills teach AI assistants (Claude Code, Cursor, Codex) how to
// work with the installed hooks: safe shell usage, auto-formatting,
// and session rituals. They are embedded in the binary at compile time
// and can be installed to any supported skill directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hooklinehq/hookline/internal/installer"
	"github.com/hooklinehq/hookline/internal/skillcatalog"
	"github.com/hooklinehq/hookline/internal/ui"
)

// Supported skill directory locations for each tool, ordered by preference.
// Project-level directories are listed first, user-level (global) second.
var skillDirectories = map[string][]string{
	"claude": {".claude/skills", "~/.claude/skills"},
	"cursor": {".cursor/skills", "~/.cursor/skills"},
	"codex":  {".codex/skills", "~/.codex/skills"},
}

// skillCmd is the parent command for agent skill management.
var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage the hookline agent skills",
	Long: `Manage the hookline agent skills for AI coding tools.

The skills teach assistants how to work alongside the installed hooks:
safe shell usage, auto-formatting behavior, and session start/stop
rituals. They are embedded in the CLI binary and can be installed to
any supported tool with a single command.

EXAMPLES:
  hookline skill install             # Auto-detect tool and install all skills
  hookline skill install --claude    # Install for Claude Code
  hookline skill install --global    # Install to user-level directory
  hookline skill show safe-shell     # Print one skill to stdout
  hookline skill export safe-shell   # Export one skill to a file`,
}

// skillShowCmd prints an embedded SKILL.md to stdout.
var skillShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print an agent skill to stdout",
	Long: `Print an embedded SKILL.md to stdout.

Useful for piping into other tools or inspecting the skill content
without installing it.

EXAMPLES:
  hookline skill show safe-shell
  hookline skill show session-notes > SKILL.md`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: skillcatalog.Names(),
	RunE:      runSkillShow,
}

// skillExportCmd writes an embedded SKILL.md to a file.
var skillExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Export an agent skill to a file",
	Long: `Export an embedded SKILL.md to a file on disk.

If no output path is specified, writes to ./SKILL.md in the
current directory.

EXAMPLES:
  hookline skill export safe-shell
  hookline skill export auto-format -o skills/SKILL.md`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: skillcatalog.Names(),
	RunE:      runSkillExport,
}

var (
	skillExportOutput  string
	skillInstallClaude bool
	skillInstallCursor bool
	skillInstallCodex  bool
	skillInstallGlobal bool
	skillInstallForce  bool
)

// skillInstallCmd installs the agent skills to the appropriate directory.
var skillInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the agent skills for your AI coding tool",
	Long: `Install the hookline agent skills to the appropriate directory
for your AI coding tool.

Without flags, auto-detects which tools are present by checking for
their configuration directories. With a tool flag, installs to that
specific tool's skill directory.

By default installs to the project-level directory (e.g. .claude/skills/).
Use --global to install to the user-level directory instead.

EXAMPLES:
  hookline skill install             # Auto-detect and install
  hookline skill install --claude    # Install for Claude Code (project)
  hookline skill install --global    # Auto-detect, install globally
  hookline skill install --force     # Overwrite existing installations`,
	Args: cobra.NoArgs,
	RunE: runSkillInstall,
}

func init() {
	// Export flags
	skillExportCmd.Flags().StringVarP(&skillExportOutput, "output", "o", "SKILL.md", "Output file path")

	// Install flags
	skillInstallCmd.Flags().BoolVar(&skillInstallClaude, "claude", false, "Install for Claude Code")
	skillInstallCmd.Flags().BoolVar(&skillInstallCursor, "cursor", false, "Install for Cursor")
	skillInstallCmd.Flags().BoolVar(&skillInstallCodex, "codex", false, "Install for Codex")
	skillInstallCmd.Flags().BoolVar(&skillInstallGlobal, "global", false, "Install to user-level (global) directory instead of project-level")
	skillInstallCmd.Flags().BoolVar(&skillInstallForce, "force", false, "Overwrite existing skill installations")

	// Register subcommands
	skillCmd.AddCommand(skillShowCmd)
	skillCmd.AddCommand(skillExportCmd)
	skillCmd.AddCommand(skillInstallCmd)
}

// runSkillShow prints one embedded SKILL.md to stdout.
func runSkillShow(cmd *cobra.Command, args []string) error {
	sk, ok := skillcatalog.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown skill %q (valid: %v)", args[0], skillcatalog.Names())
	}
	fmt.Print(sk.Content)
	return nil
}

// runSkillExport writes one embedded SKILL.md to a file on disk.
func runSkillExport(cmd *cobra.Command, args []string) error {
	sk, ok := skillcatalog.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown skill %q (valid: %v)", args[0], skillcatalog.Names())
	}

	outputPath := skillExportOutput

	// Create parent directory if needed
	dir := filepath.Dir(outputPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(outputPath, []byte(sk.Content), 0644); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	ui.PrintSuccess("Exported %s to %s", sk.Name, outputPath)
	return nil
}

// runSkillInstall installs all bundled skills to the appropriate directory.
//
// When no tool flag is provided, auto-detects installed tools by checking
// for their configuration directories. When --global is set, installs to
// the user-level directory (~/.claude/skills/) instead of project-level.
func runSkillInstall(cmd *cobra.Command, args []string) error {
	targets := resolveSkillTargets()

	if len(targets) == 0 {
		ui.PrintError("No supported AI tools detected.")
		ui.Println()
		ui.PrintInfo("Specify a tool explicitly:")
		ui.PrintDim("  hookline skill install --claude")
		ui.PrintDim("  hookline skill install --cursor")
		ui.PrintDim("  hookline skill install --codex")
		return fmt.Errorf("no install target found")
	}

	var installed []string
	var errors []string

	for _, target := range targets {
		if err := installSkillsTo(target); err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", target, err))
		} else {
			installed = append(installed, target)
		}
	}

	if len(installed) > 0 {
		ui.Println()
		ui.PrintSuccess("Installed hookline agent skills to:")
		for _, path := range installed {
			ui.PrintDim("  %s", path)
		}
	}

	if len(errors) > 0 {
		ui.Println()
		ui.PrintWarning("Some installations failed:")
		for _, e := range errors {
			ui.PrintDim("  %s", e)
		}
	}

	if len(installed) > 0 {
		ui.Println()
		ui.PrintInfo("The skills will be automatically discovered by your AI agent.")
		ui.PrintInfo("Restart your IDE if it was already running.")
	}

	if len(installed) == 0 {
		return fmt.Errorf("all installations failed")
	}

	return nil
}

// resolveSkillTargets determines which directories to install the skills to
// based on the provided flags and auto-detection.
func resolveSkillTargets() []string {
	// If explicit tool flags are set, use those
	explicitTools := make([]string, 0)
	if skillInstallClaude {
		explicitTools = append(explicitTools, "claude")
	}
	if skillInstallCursor {
		explicitTools = append(explicitTools, "cursor")
	}
	if skillInstallCodex {
		explicitTools = append(explicitTools, "codex")
	}

	if len(explicitTools) > 0 {
		return resolveSkillDirectories(explicitTools)
	}

	// Auto-detect: check which tool directories exist
	detected := make([]string, 0)
	for toolName, dirs := range skillDirectories {
		for _, dir := range dirs {
			expanded := installer.ExpandHome(dir)
			if _, err := os.Stat(expanded); err == nil {
				detected = append(detected, toolName)
				break
			}
		}
	}

	if len(detected) == 0 {
		return nil
	}

	return resolveSkillDirectories(detected)
}

// resolveSkillDirectories maps tool names to their target install
// directories, respecting the --global flag.
func resolveSkillDirectories(tools []string) []string {
	paths := make([]string, 0, len(tools))

	for _, toolName := range tools {
		dirs, ok := skillDirectories[toolName]
		if !ok {
			continue
		}

		// dirs[0] = project-level, dirs[1] = user-level (global)
		idx := 0
		if skillInstallGlobal {
			idx = 1
		}

		if idx < len(dirs) {
			paths = append(paths, installer.ExpandHome(dirs[idx]))
		}
	}

	return paths
}

// installSkillsTo writes every bundled skill under the given base skill
// directory, creating <baseDir>/<skill-name>/SKILL.md for each.
func installSkillsTo(baseDir string) error {
	for _, sk := range skillcatalog.All() {
		skillDir := filepath.Join(baseDir, sk.Name)
		skillPath := filepath.Join(skillDir, skillcatalog.SkillFileName)

		// Check if already installed
		if !skillInstallForce {
			if _, err := os.Stat(skillPath); err == nil {
				ui.PrintDim("  Already installed at %s (use --force to overwrite)", skillPath)
				continue
			}
		}

		if err := os.MkdirAll(skillDir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", skillDir, err)
		}

		if err := os.WriteFile(skillPath, []byte(sk.Content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", skillPath, err)
		}
	}

	return nil
}
