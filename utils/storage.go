package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore persists uploaded food images. Save picks a random
// collision-checked filename, keeping the original extension, and returns the
// stored path. Delete is best-effort cleanup; a missing file is not an error.
type ImageStore interface {
	Save(src io.Reader, ext string) (string, error)
	Delete(path string) error
}

func randomFilename(ext string) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + ext
}

// DiskStore writes images under a local directory and serves them as static
// files.
type DiskStore struct {
	Dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{Dir: dir}, nil
}

func (s *DiskStore) Save(src io.Reader, ext string) (string, error) {
	var location string
	for {
		location = filepath.Join(s.Dir, randomFilename(ext))
		if _, err := os.Stat(location); os.IsNotExist(err) {
			break
		}
	}

	out, err := os.Create(location)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}
	return filepath.ToSlash(location), nil
}

func (s *DiskStore) Delete(path string) error {
	err := os.Remove(filepath.FromSlash(path))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
