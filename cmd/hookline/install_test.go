package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/tidwall/gjson"

	"github.com/hooklinehq/hookline/internal/installer"
	"github.com/hooklinehq/hookline/internal/ui"
)

// newInstallFlags mirrors the install command's selective flags for
// parse-level tests.
func newInstallFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("install", pflag.ContinueOnError)
	fs.Bool("statusline", false, "")
	fs.Bool("hooks", false, "")
	fs.Bool("all", false, "")
	return fs
}

func TestSelectionFromFlags(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantStatusLine bool
		wantHooks      bool
	}{
		{name: "no flags", args: nil, wantStatusLine: true, wantHooks: true},
		{name: "all", args: []string{"--all"}, wantStatusLine: true, wantHooks: true},
		{name: "statusline only", args: []string{"--statusline"}, wantStatusLine: true, wantHooks: false},
		{name: "hooks only", args: []string{"--hooks"}, wantStatusLine: false, wantHooks: true},
		{name: "both selective", args: []string{"--statusline", "--hooks"}, wantStatusLine: true, wantHooks: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newInstallFlags()
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse(%v) error = %v", tt.args, err)
			}
			sel := selectionFromFlags(fs)
			if sel.StatusLine != tt.wantStatusLine || sel.Hooks != tt.wantHooks {
				t.Errorf("selectionFromFlags(%v) = %+v, want statusLine=%v hooks=%v",
					tt.args, sel, tt.wantStatusLine, tt.wantHooks)
			}
		})
	}
}

func TestInstallFlagsRejectUnknown(t *testing.T) {
	fs := newInstallFlags()
	if err := fs.Parse([]string{"--bogus"}); err == nil {
		t.Fatal("parsing an unknown flag succeeded, want error")
	}
}

// withInstallTarget redirects the install command at dir for one test.
func withInstallTarget(t *testing.T, dir string) {
	t.Helper()
	prev := installTarget
	installTarget = dir
	ui.SetQuietMode(true)
	t.Cleanup(func() {
		installTarget = prev
		ui.SetQuietMode(false)
	})
}

// setInstallFlag flips one of the selective install flags for one test.
func setInstallFlag(t *testing.T, name string) {
	t.Helper()
	if err := installCmd.Flags().Set(name, "true"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := installCmd.Flags().Set(name, "false"); err != nil {
			t.Fatal(err)
		}
	})
}

func TestRunInstallCreatesEverythingAndIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	withInstallTarget(t, dir)

	if err := runInstall(installCmd, nil); err != nil {
		t.Fatalf("first runInstall() error = %v", err)
	}

	configDir := filepath.Join(dir, installer.ConfigDirName)
	scriptPath := filepath.Join(configDir, "statusline.sh")
	settingsPath := filepath.Join(configDir, installer.SettingsFileName)

	info, err := os.Stat(scriptPath)
	if err != nil {
		t.Fatalf("statusline.sh was not installed: %v", err)
	}
	if info.Mode()&0o100 == 0 {
		t.Errorf("statusline.sh mode = %v, want owner-execute set", info.Mode())
	}

	first, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatalf("settings.json was not written: %v", err)
	}
	doc := gjson.ParseBytes(first)
	if !doc.Get("statusLine").Exists() {
		t.Error("settings.json has no statusLine entry")
	}
	if !doc.Get("hooks").Exists() {
		t.Error("settings.json has no hooks entry")
	}

	// A second identical run warns but changes nothing.
	if err := runInstall(installCmd, nil); err != nil {
		t.Fatalf("second runInstall() error = %v", err)
	}
	second, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("settings.json changed across identical runs:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestRunInstallMissingTarget(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	withInstallTarget(t, missing)

	err := runInstall(installCmd, nil)
	if !errors.Is(err, installer.ErrTargetNotFound) {
		t.Fatalf("runInstall() error = %v, want ErrTargetNotFound", err)
	}
	if _, statErr := os.Stat(missing); !os.IsNotExist(statErr) {
		t.Error("files were written under a non-existent target")
	}
}

func TestRunInstallStatusLineOnly(t *testing.T) {
	dir := t.TempDir()
	withInstallTarget(t, dir)
	setInstallFlag(t, "statusline")

	if err := runInstall(installCmd, nil); err != nil {
		t.Fatalf("runInstall() error = %v", err)
	}

	settings, err := os.ReadFile(filepath.Join(dir, installer.ConfigDirName, installer.SettingsFileName))
	if err != nil {
		t.Fatal(err)
	}
	if gjson.GetBytes(settings, "hooks").Exists() {
		t.Error("--statusline alone created a hooks entry")
	}
	if !gjson.GetBytes(settings, "statusLine").Exists() {
		t.Error("--statusline did not create a statusLine entry")
	}
}

func TestRunInstallHooksOnly(t *testing.T) {
	dir := t.TempDir()
	withInstallTarget(t, dir)
	setInstallFlag(t, "hooks")

	if err := runInstall(installCmd, nil); err != nil {
		t.Fatalf("runInstall() error = %v", err)
	}

	configDir := filepath.Join(dir, installer.ConfigDirName)
	if _, err := os.Stat(filepath.Join(configDir, "statusline.sh")); !os.IsNotExist(err) {
		t.Error("--hooks alone copied statusline.sh")
	}

	settings, err := os.ReadFile(filepath.Join(configDir, installer.SettingsFileName))
	if err != nil {
		t.Fatal(err)
	}
	if gjson.GetBytes(settings, "statusLine").Exists() {
		t.Error("--hooks alone created a statusLine entry")
	}
	if !gjson.GetBytes(settings, "hooks").Exists() {
		t.Error("--hooks did not create a hooks entry")
	}
}

func TestRunInstallPreservesForeignKeys(t *testing.T) {
	dir := t.TempDir()
	withInstallTarget(t, dir)
	setInstallFlag(t, "hooks")

	configDir := filepath.Join(dir, installer.ConfigDirName)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatal(err)
	}
	settingsPath := filepath.Join(configDir, installer.SettingsFileName)
	if err := os.WriteFile(settingsPath, []byte(`{"foo": "bar"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runInstall(installCmd, nil); err != nil {
		t.Fatalf("runInstall() error = %v", err)
	}

	settings, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(settings, "foo").String(); got != "bar" {
		t.Errorf("foreign key foo = %q, want %q", got, "bar")
	}
	if !gjson.GetBytes(settings, "hooks").Exists() {
		t.Error("hooks entry was not merged")
	}
}
