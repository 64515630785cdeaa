// Package sink serializes parsed observation tables to per-station files,
// appending the station identity and position columns on the way out.
package sink

import (
	"os"
	"path/filepath"

	"ndbc-data/internal/metadata"
)

// Enrichment carries the constant-valued columns appended to every row of a
// station's table. Position may be nil when the metadata scan did not yield
// one; the latitude/longitude columns are then null, never zero.
type Enrichment struct {
	StationID string
	Position  *metadata.Position
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
