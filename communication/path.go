package communication

import (
	"os"
	"path/filepath"

	"blobwar/meta"

	"github.com/google/uuid"
)

// NewSegmentPath returns a fresh segment file name in dir, or in the shared
// memory file system when dir is empty.
func NewSegmentPath(dir string) string {
	if dir == "" {
		dir = DefaultDir()
	}
	return filepath.Join(dir, meta.SegmentPrefix+uuid.NewString())
}

// DefaultDir is /dev/shm when it exists and the temporary directory otherwise.
func DefaultDir() string {
	if info, err := os.Stat("/dev/shm"); err == nil && info.IsDir() {
		return "/dev/shm"
	}
	return os.TempDir()
}
