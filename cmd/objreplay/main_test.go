package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/Faultbox/objstore/internal/config"
	"github.com/Faultbox/objstore/pkg/obj"
)

const sceneLog = `
events:
  - {kind: material, material: {name: Red}}
  - {kind: material, material: {name: Blue}}
  - {kind: v, v: [0, 0, 0]}
  - {kind: v, v: [1, 0, 0]}
  - {kind: v, v: [0, 1, 0]}
  - {kind: g, name: unused}
  - {kind: usemtl, name: Red}
  - {kind: f, f: ["1", "2", "3"]}
  - {kind: usemtl, name: Green}
  - {kind: usemtl, name: Blue}
  - {kind: f, f: ["3", "2", "1"]}
  - {kind: usemtl, name: Red}
  - {kind: f, f: ["1", "3", "2"]}
`

func writeLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.events.yaml")
	if err := os.WriteFile(path, []byte(sceneLog), 0644); err != nil {
		t.Fatalf("failed to write event log: %v", err)
	}
	return path
}

func TestRunAbortsOnUnknownMaterial(t *testing.T) {
	var out bytes.Buffer
	err := run("summary", writeLog(t), config.Default(), &out)
	if !errors.Is(err, obj.ErrUnknownMaterial) {
		t.Fatalf("expected ErrUnknownMaterial, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output on failure, got %q", out.String())
	}
}

func TestRunSummarySkipUnknown(t *testing.T) {
	cfg := config.Default()
	cfg.Replay.OnUnknownMaterial = config.OnUnknownSkip

	var out bytes.Buffer
	if err := run("summary", writeLog(t), cfg, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, want := range []string{"Vertices:  3", "Materials: 2", "Groups:    2", "Faces:     3"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in summary:\n%s", want, out.String())
		}
	}
}

func TestRunGroupsText(t *testing.T) {
	cfg := config.Default()
	cfg.Replay.OnUnknownMaterial = config.OnUnknownSkip

	var out bytes.Buffer
	if err := run("groups", writeLog(t), cfg, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 groups, got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[1], "unused") || !strings.Contains(lines[1], "Red") || !strings.HasSuffix(lines[1], "2") {
		t.Errorf("unexpected first group line %q", lines[1])
	}
	if !strings.Contains(lines[2], "default (Blue)") {
		t.Errorf("unexpected second group line %q", lines[2])
	}
}

func TestRunDumpYAML(t *testing.T) {
	cfg := config.Default()
	cfg.Replay.OnUnknownMaterial = config.OnUnknownSkip

	var out bytes.Buffer
	if err := run("dump", writeLog(t), cfg, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{"name: unused", "material: Red", "name: default (Blue)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in dump:\n%s", want, out.String())
		}
	}
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	if err := run("summary", filepath.Join(t.TempDir(), "missing.yaml"), config.Default(), &out); err == nil {
		t.Error("expected error for missing event log")
	}
}

func TestInitConfigToPath(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	path := filepath.Join(dir, "out", "objreplay.yaml")
	t.Cleanup(func() { config.ParseFlags([]string{"--skip-unknown=false"}) })

	got, err := initConfig([]string{"--skip-unknown", path})
	if err != nil {
		t.Fatalf("initConfig failed: %v", err)
	}
	if got != path {
		t.Errorf("expected %s, got %s", path, got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}
	if !strings.Contains(string(data), "on_unknown_material: skip") {
		t.Errorf("expected skip policy in saved config:\n%s", data)
	}
}

func TestInitConfigToUserDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir override via XDG_CONFIG_HOME is linux only")
	}
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	got, err := initConfig(nil)
	if err != nil {
		t.Fatalf("initConfig failed: %v", err)
	}
	want := filepath.Join(dir, "xdg", "objreplay", "config.yaml")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected saved config at %s: %v", want, err)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
