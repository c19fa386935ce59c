package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hooklinehq/hookline/internal/skillcatalog"
	"github.com/hooklinehq/hookline/internal/ui"
)

func withSkillInstallFlags(t *testing.T, global, force bool) {
	t.Helper()
	prevGlobal := skillInstallGlobal
	prevForce := skillInstallForce
	skillInstallGlobal = global
	skillInstallForce = force
	ui.SetQuietMode(true)
	t.Cleanup(func() {
		skillInstallGlobal = prevGlobal
		skillInstallForce = prevForce
		ui.SetQuietMode(false)
	})
}

func TestInstallSkillsToWritesEverySkill(t *testing.T) {
	withSkillInstallFlags(t, false, false)
	base := t.TempDir()

	if err := installSkillsTo(base); err != nil {
		t.Fatalf("installSkillsTo() error = %v", err)
	}

	for _, sk := range skillcatalog.All() {
		path := filepath.Join(base, sk.Name, skillcatalog.SkillFileName)
		content, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("skill %s was not installed: %v", sk.Name, err)
			continue
		}
		if string(content) != sk.Content {
			t.Errorf("skill %s content differs from the embedded copy", sk.Name)
		}
	}
}

func TestInstallSkillsToRespectsExisting(t *testing.T) {
	withSkillInstallFlags(t, false, false)
	base := t.TempDir()

	name := skillcatalog.Names()[0]
	custom := "my customized skill\n"
	skillDir := filepath.Join(base, name)
	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(skillDir, skillcatalog.SkillFileName)
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := installSkillsTo(base); err != nil {
		t.Fatalf("installSkillsTo() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != custom {
		t.Error("an existing skill installation was overwritten without --force")
	}
}

func TestInstallSkillsToForceOverwrites(t *testing.T) {
	withSkillInstallFlags(t, false, true)
	base := t.TempDir()

	name := skillcatalog.Names()[0]
	skillDir := filepath.Join(base, name)
	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(skillDir, skillcatalog.SkillFileName)
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := installSkillsTo(base); err != nil {
		t.Fatalf("installSkillsTo() error = %v", err)
	}

	sk, _ := skillcatalog.Get(name)
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != sk.Content {
		t.Error("--force did not overwrite a stale skill installation")
	}
}

func TestResolveSkillDirectoriesProjectAndGlobal(t *testing.T) {
	withSkillInstallFlags(t, false, false)
	paths := resolveSkillDirectories([]string{"claude"})
	if len(paths) != 1 || paths[0] != ".claude/skills" {
		t.Errorf("project-level paths = %v, want [.claude/skills]", paths)
	}

	withSkillInstallFlags(t, true, false)
	paths = resolveSkillDirectories([]string{"claude"})
	if len(paths) != 1 || !strings.HasSuffix(paths[0], filepath.Join(".claude", "skills")) {
		t.Errorf("global paths = %v, want a home-anchored .claude/skills", paths)
	}
	if paths[0] == ".claude/skills" {
		t.Error("global path was not expanded to the home directory")
	}
}

func TestSkillCatalogIsComplete(t *testing.T) {
	all := skillcatalog.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 bundled skills, got %d", len(all))
	}
	for _, sk := range all {
		if sk.Name == "" || sk.Description == "" {
			t.Errorf("skill %+v has empty metadata", sk)
		}
		if !strings.Contains(sk.Content, sk.Name) {
			t.Errorf("skill %s content does not mention its own name", sk.Name)
		}
	}
}
