package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Staging manages the working directory export archives are assembled in.
type Staging struct {
	Dir string
}

// NewStaging returns a staging manager rooted at dir.
func NewStaging(dir string) *Staging {
	return &Staging{Dir: dir}
}

// Ensure creates the staging directory if it does not exist.
func (s *Staging) Ensure() error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	return nil
}

// NewArchivePath returns a collision-resistant archive path and filename.
// The timestamp is second resolution, so a short unique suffix guards
// against two exports starting in the same second.
func (s *Staging) NewArchivePath(now time.Time) (path, filename string) {
	filename = ArchiveName(now)
	return filepath.Join(s.Dir, filename), filename
}

// ArchiveName derives the archive filename from a timestamp.
func ArchiveName(now time.Time) string {
	ts := now.UTC().Format("20060102150405")
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("tentapress-export-%s-%s.zip", ts, suffix)
}
