package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/akyairhashvil/serenity/internal/models"
	"golang.org/x/term"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func restoreLog(t *testing.T) {
	t.Helper()
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

func TestSetupOpensStorageInDataDir(t *testing.T) {
	restoreLog(t)
	dataDir := t.TempDir()
	cfgPath := writeConfig(t, "data_dir: "+dataDir+"\nvolume: 40\n")
	a, err := setup(context.Background(), cfgPath)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	defer a.Close()
	if a.cfg.Volume != 40 {
		t.Fatalf("expected volume from config, got %d", a.cfg.Volume)
	}
	for _, name := range []string{config.DBFileName, config.LogFileName} {
		if _, err := os.Stat(filepath.Join(dataDir, name)); err != nil {
			t.Fatalf("expected %s in data dir: %v", name, err)
		}
	}
	if len(a.catalog.Tracks) == 0 {
		t.Fatalf("expected builtin catalog")
	}
}

func TestSetupRejectsBadConfig(t *testing.T) {
	restoreLog(t)
	if _, err := setup(context.Background(), writeConfig(t, "volume: [")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadCatalogOverrideMissing(t *testing.T) {
	if _, err := loadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing override")
	}
}

func TestImportData(t *testing.T) {
	restoreLog(t)
	dataDir := t.TempDir()
	a, err := setup(context.Background(), writeConfig(t, "data_dir: "+dataDir+"\n"))
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	defer a.Close()

	payload := `{"version":1,"exported_at":"2026-10-14T09:00:00Z","data":{"moodHistory":[{"timestamp":1,"mood":"great","stressLevel":2}],"favorites":["rain"],"completedGoals":[]}}`
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := importData(context.Background(), a.svc, path); err != nil {
		t.Fatalf("importData failed: %v", err)
	}
	entries := a.svc.RecentMoodEntries(context.Background(), 5)
	if len(entries) != 1 || entries[0].Mood != models.MoodGreat {
		t.Fatalf("unexpected entries %+v", entries)
	}
	if !a.svc.IsFavorite(context.Background(), "rain") {
		t.Fatalf("expected favorite imported")
	}
}

func TestRunRefusesNonTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	restoreLog(t)
	dataDir := t.TempDir()
	err := run(context.Background(), writeConfig(t, "data_dir: "+dataDir+"\n"), "/", "", false)
	if err != errNotTerminal {
		t.Fatalf("expected errNotTerminal, got %v", err)
	}
}

func TestRunResetClearsUserData(t *testing.T) {
	restoreLog(t)
	dataDir := t.TempDir()
	cfgPath := writeConfig(t, "data_dir: "+dataDir+"\n")
	a, err := setup(context.Background(), cfgPath)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := a.svc.ToggleFavorite(context.Background(), "rain"); err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	a.Close()

	if err := run(context.Background(), cfgPath, "/", "", true); err != nil {
		t.Fatalf("run -reset failed: %v", err)
	}

	again, err := setup(context.Background(), cfgPath)
	if err != nil {
		t.Fatalf("setup after reset failed: %v", err)
	}
	defer again.Close()
	if again.svc.IsFavorite(context.Background(), "rain") {
		t.Fatalf("expected favorites cleared by reset")
	}
}
