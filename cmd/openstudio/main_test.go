package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kingrea/openstudio/internal/config"
	"github.com/kingrea/openstudio/internal/logging"
)

func TestOpenModelLogsMissingDocumentBeforeClose(t *testing.T) {
	projectDir := t.TempDir()
	if err := config.InitProjectDir(projectDir); err != nil {
		t.Fatal(err)
	}
	logger, err := logging.New(projectDir, "info")
	if err != nil {
		t.Fatalf("logging.New returned error: %v", err)
	}
	m, err := openModel(filepath.Join(projectDir, "missing.osm.yaml"), logger.Logger)
	if err != nil {
		t.Fatalf("openModel returned error: %v", err)
	}
	if m.Workspace().Len() != 0 {
		t.Fatalf("expected empty model, got %d objects", m.Workspace().Len())
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(projectDir, config.ProjectDirName, "logs", logging.FileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "model not found, starting empty") {
		t.Fatalf("expected missing-model entry, got:\n%s", data)
	}
}

func TestResolveProjectDirPrefersHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("OPENSTUDIO_HOME", home)
	dir, err := resolveProjectDir()
	if err != nil {
		t.Fatalf("resolveProjectDir returned error: %v", err)
	}
	if dir != home {
		t.Fatalf("expected %q, got %q", home, dir)
	}
}
