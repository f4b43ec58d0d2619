package avatars

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DirStore keeps avatars as files in a local directory.
type DirStore struct {
	dir string
}

func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) Put(ctx context.Context, data []byte) (string, error) {
	ref := filepath.Join(s.dir, uuid.NewString())
	if err := os.WriteFile(ref, data, 0o600); err != nil {
		return "", fmt.Errorf("error writing avatar: %w", err)
	}
	return ref, nil
}

func (s *DirStore) URL(ctx context.Context, ref string) (string, error) {
	abs, err := filepath.Abs(ref)
	if err != nil {
		return "", err
	}
	return "file://" + abs, nil
}
