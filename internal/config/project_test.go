package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "vhdlang.yml"), `
standard: "2008"
libraries:
  work:
    files:
      - "src/*.vhd"
  lib:
    files:
      - "lib/pkg.vhdl"
`)
	if err := os.MkdirAll(filepath.Join(dir, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "lib"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "src", "top.vhd"), "")
	writeFile(t, filepath.Join(dir, "src", "core.vhd"), "")
	writeFile(t, filepath.Join(dir, "src", "notes.txt"), "")
	writeFile(t, filepath.Join(dir, "lib", "pkg.vhdl"), "")

	project, err := Load(filepath.Join(dir, "vhdlang.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if project.Standard != "2008" {
		t.Errorf("Standard = %q", project.Standard)
	}

	files, err := project.SourceFiles()
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Errorf("SourceFiles = %v, want 3 entries", files)
	}
	for _, file := range files {
		if !IsSourceFile(file) {
			t.Errorf("non-source file %q in result", file)
		}
	}
}

func TestLoadProjectRejectsEmptyLibraries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "vhdlang.yml"), "standard: \"2008\"\n")

	if _, err := Load(filepath.Join(dir, "vhdlang.yml")); err == nil {
		t.Error("expected an error for a project without libraries")
	}
}

func TestLoadProjectRejectsLibraryWithoutFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "vhdlang.yml"), `
libraries:
  work:
    files: []
`)
	if _, err := Load(filepath.Join(dir, "vhdlang.yml")); err == nil {
		t.Error("expected an error for a library without files")
	}
}

func TestIsSourceFile(t *testing.T) {
	if !IsSourceFile("a/b/top.vhd") || !IsSourceFile("pkg.vhdl") {
		t.Error("source extensions not recognized")
	}
	if IsSourceFile("README.md") {
		t.Error("README.md recognized as source")
	}
}
