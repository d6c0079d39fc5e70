package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/serenity/internal/models"
)

// WriteFile creates dir if needed and writes the PDF report into it,
// returning the absolute path.
func WriteFile(dir string, entries []models.MoodEntry, goals []models.Goal, completed map[string]bool, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report dir: %w", err)
	}
	path := filepath.Join(dir, ExportFilename(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report: %w", err)
	}
	if err := WritePDF(f, entries, goals, completed, now); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing report: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// WriteJSON stores an exported user data payload next to the PDF reports.
func WriteJSON(dir string, payload []byte, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("serenity_export_%s.json", now.Format("2006-01-02")))
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}
