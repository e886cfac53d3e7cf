package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"decora_festas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// LocalImageStore writes inspiration images to a directory on disk and
// returns the relative reference kept on the budget record.
//
// Env vars:
//   - UPLOADS_DIR (default: ./uploads)

type LocalImageStore struct {
	dir string
}

var _ interfaces.IImageStore = (*LocalImageStore)(nil)

func NewLocalImageStoreFromEnv() (*LocalImageStore, error) {
	dir := strings.TrimSpace(os.Getenv("UPLOADS_DIR"))
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalImageStore{dir: dir}, nil
}

func (s *LocalImageStore) Save(_ context.Context, name string, data []byte) (string, error) {
	// A fresh id prefix keeps collisions impossible and the original name
	// readable. Base is taken to strip any path components from the upload.
	ref := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(name))
	if err := os.WriteFile(filepath.Join(s.dir, ref), data, 0o644); err != nil {
		return "", err
	}
	return ref, nil
}
