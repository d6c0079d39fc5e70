package userdata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/akyairhashvil/serenity/internal/models"
)

const exportVersion = 1

// Export is the portable form of the user blob.
type Export struct {
	Version    int             `json:"version"`
	ExportedAt string          `json:"exported_at"`
	Data       models.UserData `json:"data"`
}

// Export renders the current user data as indented JSON.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	payload := Export{
		Version:    exportVersion,
		ExportedAt: s.clock.Now().UTC().Format(time.RFC3339),
		Data:       s.Load(ctx),
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}
	return append(out, '\n'), nil
}

// Import replaces the user data with a previously exported payload.
// Entries with unknown moods are dropped and history is capped as usual.
func (s *Service) Import(ctx context.Context, payload []byte) error {
	var in Export
	if err := json.Unmarshal(payload, &in); err != nil {
		return fmt.Errorf("parsing import: %w", err)
	}
	if in.Version != exportVersion {
		return fmt.Errorf("unsupported export version %d", in.Version)
	}
	d := in.Data
	kept := d.MoodHistory[:0]
	for _, e := range d.MoodHistory {
		if e.Mood.Valid() {
			kept = append(kept, e)
		}
	}
	if len(kept) > config.MaxMoodEntries {
		kept = kept[len(kept)-config.MaxMoodEntries:]
	}
	d.MoodHistory = kept
	return s.save(ctx, d)
}
