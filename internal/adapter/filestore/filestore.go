package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidReference indicates a reference that doesn't point inside the store.
var ErrInvalidReference = errors.New("invalid file reference")

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".pdf":  {},
}

// Store persists uploaded documents and hands back opaque references.
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
}

// DiskStore implements Store on the local filesystem. References are paths
// relative to the store root, safe to persist in order records.
type DiskStore struct {
	root   string
	logger *slog.Logger
}

// NewDiskStore creates the root directory if it doesn't exist yet.
func NewDiskStore(root string, logger *slog.Logger) (*DiskStore, error) {
	if root == "" {
		return nil, errors.New("filestore root must be provided")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create filestore root: %w", err)
	}
	return &DiskStore{root: root, logger: logger}, nil
}

// Save writes the content under a generated name, keeping only the original
// extension. The client-supplied filename never reaches the filesystem.
func (s *DiskStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: unsupported file type %q", ErrInvalidReference, ext)
	}

	ref := uuid.NewString() + ext
	path := filepath.Join(s.root, ref)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close file: %w", err)
	}

	s.logger.Debug("stored file", slog.String("ref", ref))
	return ref, nil
}

// Open returns the stored content for a previously issued reference.
func (s *DiskStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if ref == "" || ref != filepath.Base(ref) {
		return nil, ErrInvalidReference
	}

	f, err := os.Open(filepath.Join(s.root, ref))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrInvalidReference
		}
		return nil, fmt.Errorf("open file: %w", err)
	}
	return f, nil
}
