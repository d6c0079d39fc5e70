// Package report renders the progress summary as a PDF.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/akyairhashvil/serenity/internal/models"
	"github.com/go-pdf/fpdf"
)

// ExportFilename names the report file for a day.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("%s_report_%s.pdf", config.AppName, now.Format("2006-01-02"))
}

// WritePDF writes recent mood entries and today's goals to w.
func WritePDF(w io.Writer, entries []models.MoodEntry, goals []models.Goal, completed map[string]bool, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Wellness Report: %s", now.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Recent Mood Entries")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(entries) == 0 {
		pdf.Cell(0, 8, "  - No mood entries yet.")
		pdf.Ln(8)
	}
	for _, e := range entries {
		line := fmt.Sprintf("  %s  %-8s stress %d/10", e.Time().Format("Jan 2 15:04"), e.Mood, e.StressLevel)
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Daily Goals")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	done := 0
	for _, g := range goals {
		status := "[ ]"
		if completed[g.ID] {
			status = "[x]"
			done++
		}
		pdf.Cell(0, 8, fmt.Sprintf("  %s %s", status, g.Text))
		pdf.Ln(6)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Goals Completed: %d/%d", done, len(goals)))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
