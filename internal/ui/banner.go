// Package ui provides the ASCII banner for the hookline CLI.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the ASCII art logo for the hookline CLI.
const banner = `
  ██╗  ██╗ ██████╗  ██████╗ ██╗  ██╗██╗     ██╗███╗   ██╗███████╗
  ██║  ██║██╔═══██╗██╔═══██╗██║ ██╔╝██║     ██║████╗  ██║██╔════╝
  ███████║██║   ██║██║   ██║█████╔╝ ██║     ██║██╔██╗ ██║█████╗
  ██╔══██║██║   ██║██║   ██║██╔═██╗ ██║     ██║██║╚██╗██║██╔══╝
  ██║  ██║╚██████╔╝╚██████╔╝██║  ██╗███████╗██║██║ ╚████║███████╗
  ╚═╝  ╚═╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝╚═╝  ╚═══╝╚══════╝`

// tagline is the product tagline.
const tagline = "Plugins for your coding agent, installed without surprises"

// PrintBanner prints the hookline banner with version info.
//
// Parameters:
//   - version: The CLI version string to display
func PrintBanner(version string) {
	if quietMode {
		return
	}

	styledBanner := lipgloss.NewStyle().
		Foreground(Teal).
		Bold(true).
		Render(banner)

	fmt.Println(styledBanner)
	fmt.Println()

	taglineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		PaddingLeft(2)
	fmt.Println(taglineStyle.Render(tagline))
	fmt.Println()

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		PaddingLeft(2)

	fmt.Println(infoStyle.Render(fmt.Sprintf("Version: %s", version)))
	fmt.Println(infoStyle.Render("Repo:    https://github.com/hooklinehq/hookline"))
	fmt.Println()
}

// GetHelpText returns the curated help text for the CLI, used by
// `hookline --help`. Contains the full command reference without the
// ASCII banner.
func GetHelpText() string {
	teal := lipgloss.NewStyle().Foreground(Teal).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	return fmt.Sprintf(`%s

%s
  %s               Install the status line and hooks into .claude/
  %s  Install only the status-line script
  %s       Install only the lifecycle hooks
  %s     Install into a specific project directory

%s
  %s            List the plugins bundled with this release
  %s       Install agent skills into .claude/skills/
  %s          Print a skill to stdout

%s  https://github.com/hooklinehq/hookline`,
		dim.Render(tagline+"."),
		teal.Render("Install:"),
		teal.Render("hookline install"),
		teal.Render("hookline install --statusline"),
		teal.Render("hookline install --hooks"),
		teal.Render("hookline install --target ~/src/app"),
		teal.Render("Library:"),
		teal.Render("hookline plugins"),
		teal.Render("hookline skill install"),
		teal.Render("hookline skill show"),
		teal.Render("Repo: "),
	)
}
