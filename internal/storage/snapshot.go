package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/benedictmc/news-trading/internal/domain"
)

// SnapshotWriter serializes expiring news events to durable JSON records
// for offline analysis, keyed by start time and symbol.
type SnapshotWriter struct {
	dir string
}

// NewSnapshotWriter creates a writer rooted at dir.
func NewSnapshotWriter(dir string) *SnapshotWriter {
	return &SnapshotWriter{dir: dir}
}

// ExportNewsEvent writes one event to <dir>/<startUnixNano><symbol>.json.
func (w *SnapshotWriter) ExportNewsEvent(ev domain.NewsEvent) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot dir: %w", err)
	}

	data, err := json.MarshalIndent(ev, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal news event: %w", err)
	}

	filename := fmt.Sprintf("%d%s.json", ev.StartedAt.UnixNano(), ev.Symbol)
	path := filepath.Join(w.dir, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write news event: %w", err)
	}

	slog.Info("news event exported",
		slog.String("symbol", ev.Symbol),
		slog.String("path", path))

	return nil
}
