// Package catalog describes the plugins bundled with a hookline
// release. The catalog is data, not behavior: entries name payload
// directories the installer treats as opaque.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

// Plugin describes one installable plugin in the release.
type Plugin struct {
	// Name is the unique plugin name.
	Name string `yaml:"name"`

	// Kind classifies the payload: statusline, hooks, skills, or agents.
	Kind string `yaml:"kind"`

	// Version is the plugin's own version, independent of the CLI.
	Version string `yaml:"version"`

	// Source is the payload directory inside the release tree.
	Source string `yaml:"source"`

	// Description is a one-line summary shown by `hookline plugins`.
	Description string `yaml:"description"`
}

type catalogFile struct {
	Plugins []Plugin `yaml:"plugins"`
}

var (
	loadOnce sync.Once
	loaded   []Plugin
	loadErr  error
)

func load() ([]Plugin, error) {
	loadOnce.Do(func() {
		var cf catalogFile
		if err := yaml.Unmarshal(rawCatalog, &cf); err != nil {
			loadErr = fmt.Errorf("parse embedded catalog: %w", err)
			return
		}
		loaded = cf.Plugins
	})
	return loaded, loadErr
}

// All returns a copy of the catalog in release order.
func All() ([]Plugin, error) {
	plugins, err := load()
	if err != nil {
		return nil, err
	}
	out := make([]Plugin, len(plugins))
	copy(out, plugins)
	return out, nil
}

// Names returns all plugin names in release order.
func Names() ([]string, error) {
	plugins, err := load()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(plugins))
	for _, p := range plugins {
		names = append(names, p.Name)
	}
	return names, nil
}

// Get returns one plugin by exact name.
func Get(name string) (Plugin, bool) {
	plugins, err := load()
	if err != nil {
		return Plugin{}, false
	}
	name = strings.TrimSpace(name)
	for _, p := range plugins {
		if p.Name == name {
			return p, true
		}
	}
	return Plugin{}, false
}
