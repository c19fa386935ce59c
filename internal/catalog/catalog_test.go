package catalog

import (
	"testing"
)

func TestAllReturnsReleaseCatalog(t *testing.T) {
	plugins, err := All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(plugins) == 0 {
		t.Fatal("All() returned an empty catalog")
	}

	validKinds := map[string]bool{
		"statusline": true,
		"hooks":      true,
		"skills":     true,
		"agents":     true,
	}
	seen := map[string]bool{}
	for _, p := range plugins {
		if p.Name == "" || p.Version == "" || p.Description == "" || p.Source == "" {
			t.Errorf("plugin %+v has empty required fields", p)
		}
		if !validKinds[p.Kind] {
			t.Errorf("plugin %s has unknown kind %q", p.Name, p.Kind)
		}
		if seen[p.Name] {
			t.Errorf("duplicate plugin name %q", p.Name)
		}
		seen[p.Name] = true
	}
}

func TestNamesMatchAll(t *testing.T) {
	plugins, err := All()
	if err != nil {
		t.Fatal(err)
	}
	names, err := Names()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != len(plugins) {
		t.Fatalf("Names() returned %d entries, All() returned %d", len(names), len(plugins))
	}
	for i, p := range plugins {
		if names[i] != p.Name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], p.Name)
		}
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantFound bool
	}{
		{name: "known plugin", query: "hooks", wantFound: true},
		{name: "known plugin with whitespace", query: "  statusline  ", wantFound: true},
		{name: "unknown plugin", query: "nope", wantFound: false},
		{name: "empty name", query: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, found := Get(tt.query)
			if found != tt.wantFound {
				t.Fatalf("Get(%q) found = %v, want %v", tt.query, found, tt.wantFound)
			}
			if found && p.Name == "" {
				t.Error("Get() found a plugin with no name")
			}
		})
	}
}
