// Package main provides the install command for hookline plugins.
//
// The install command copies the status-line script and merges the
// bundled hooks configuration into a project's .claude/settings.json.
// Both features are idempotent and never overwrite an operator's
// existing configuration; anything that needs a manual decision is
// reported as a warning instead.
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hooklinehq/hookline/hooks"
	"github.com/hooklinehq/hookline/internal/assets"
	"github.com/hooklinehq/hookline/internal/installer"
	"github.com/hooklinehq/hookline/internal/ui"
)

var (
	installStatusLine bool
	installHooks      bool
	installAll        bool
	installTarget     string
)

// installCmd installs the status line and hooks into a project.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the status line and hooks into a project",
	Long: `Install the hookline status line and lifecycle hooks into a
project's .claude directory.

Without selective flags, both features are installed. The destination
is resolved from --target, then $` + installer.ProjectDirEnv + `, then
the current directory.

Existing configuration is never overwritten: if settings.json already
carries a statusLine or hooks entry, the file is left untouched and a
warning explains what to verify. Re-running after a successful install
changes nothing.

EXAMPLES:
  hookline install                     # Install status line and hooks
  hookline install --statusline        # Only the status-line script
  hookline install --hooks             # Only the lifecycle hooks
  hookline install --target ~/src/app  # Install into another project`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installStatusLine, "statusline", false, "Install only the status-line script")
	installCmd.Flags().BoolVar(&installHooks, "hooks", false, "Install only the lifecycle hooks")
	installCmd.Flags().BoolVar(&installAll, "all", false, "Install everything (the default)")
	installCmd.Flags().StringVar(&installTarget, "target", "", "Project directory to install into")
}

// runInstall resolves the destination and runs each selected feature.
// Argument and target-resolution problems are fatal to the whole run;
// a failure in one feature still lets the other proceed, and the run
// exits non-zero if any requested feature failed.
func runInstall(cmd *cobra.Command, args []string) error {
	sel := selectionFromFlags(cmd.Flags())
	opts := installer.OptionsFromEnv(sel, installTarget)

	configDir, err := opts.ResolveConfigDir()
	if err != nil {
		return err
	}
	log.Debug("Resolved configuration directory", "dir", configDir)

	var failed []string

	if sel.StatusLine {
		if err := installStatusLineFeature(configDir); err != nil {
			ui.PrintError("Status line: %v", err)
			failed = append(failed, "statusline")
		}
	}

	if sel.Hooks {
		if err := installHooksFeature(configDir); err != nil {
			ui.PrintError("Hooks: %v", err)
			failed = append(failed, "hooks")
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to install: %s", strings.Join(failed, ", "))
	}
	return nil
}

// selectionFromFlags derives the feature selection from a parsed flag
// set. Split out from runInstall for testing.
func selectionFromFlags(flags *pflag.FlagSet) installer.Selection {
	statusLine, _ := flags.GetBool("statusline")
	hooks, _ := flags.GetBool("hooks")
	all, _ := flags.GetBool("all")
	return installer.ResolveSelection(statusLine, hooks, all)
}

// installStatusLineFeature copies the script and reports the settings
// outcome.
func installStatusLineFeature(configDir string) error {
	script, err := assets.StatusLineScript().Load()
	if err != nil {
		return err
	}

	res, err := installer.InstallStatusLine(configDir, script)
	if err != nil {
		return err
	}

	ui.PrintSuccess("Installed %s", res.ScriptPath)
	switch res.Action {
	case installer.ActionCreated:
		ui.PrintSuccess("Created %s with the status-line entry", res.SettingsPath)
	case installer.ActionSkipped:
		ui.PrintWarning("%s", res.Warning)
	case installer.ActionManual:
		ui.PrintWarning("%s", res.Warning)
		ui.Println()
		ui.PrintDim("%s", res.Snippet)
		ui.Println()
	}
	return nil
}

// installHooksFeature merges the bundled hooks document and reports the
// outcome.
func installHooksFeature(configDir string) error {
	source, err := assets.HooksDocument().Load()
	if err != nil {
		return fmt.Errorf("%w: %v", installer.ErrHooksSourceMissing, err)
	}

	res, err := installer.MergeHooks(configDir, source)
	if err != nil {
		return err
	}

	switch res.Action {
	case installer.ActionCreated:
		ui.PrintSuccess("Created %s with the bundled hooks", res.SettingsPath)
	case installer.ActionMerged:
		ui.PrintSuccess("Merged hooks into %s", res.SettingsPath)
	case installer.ActionSkipped:
		ui.PrintWarning("%s", res.Warning)
		ui.PrintDim("  existing file: %s", res.SettingsPath)
	case installer.ActionManual:
		ui.PrintWarning("%s", res.Warning)
		ui.PrintInfo("The bundled document provides:")
		for _, category := range res.Categories {
			ui.PrintDim("  - %s", category)
		}
		ui.PrintInfo("Copy the hooks object from %s into %s", hooks.FileName, res.SettingsPath)
	}
	return nil
}
