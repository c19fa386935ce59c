// Package main provides the plugins command listing the bundled catalog.
package main

import (
	"github.com/spf13/cobra"

	"github.com/hooklinehq/hookline/internal/catalog"
	"github.com/hooklinehq/hookline/internal/ui"
)

// pluginsCmd lists the plugins bundled with this release.
var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List the plugins bundled with this release",
	Long: `List the plugins bundled with this release of hookline.

The catalog names each plugin, its kind, version, and the payload
directory it ships from. Plugin content is opaque to the CLI; the
installer copies it verbatim.`,
	Args: cobra.NoArgs,
	RunE: runPlugins,
}

func runPlugins(cmd *cobra.Command, args []string) error {
	plugins, err := catalog.All()
	if err != nil {
		return err
	}

	table := ui.NewTable("NAME", "KIND", "VERSION", "DESCRIPTION")
	table.SetMaxWidth(3, 72)
	for _, p := range plugins {
		table.AddRow(p.Name, p.Kind, p.Version, p.Description)
	}
	table.Render()
	return nil
}
