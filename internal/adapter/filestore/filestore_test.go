package filestore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := NewDiskStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestSaveAndOpen(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ref, err := store.Save(ctx, "receipt.JPG", strings.NewReader("proof-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(ref, ".jpg") {
		t.Fatalf("expected lowercased extension, got %q", ref)
	}
	if ref != filepath.Base(ref) {
		t.Fatalf("reference must not contain path separators: %q", ref)
	}

	f, err := store.Open(ctx, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != "proof-bytes" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"payload.exe", "noextension", "archive.zip"} {
		if _, err := store.Save(context.Background(), name, strings.NewReader("x")); !errors.Is(err, ErrInvalidReference) {
			t.Fatalf("expected ErrInvalidReference for %q, got %v", name, err)
		}
	}
}

func TestSaveIgnoresClientFilename(t *testing.T) {
	store := newTestStore(t)

	ref, err := store.Save(context.Background(), "../../etc/passwd.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(ref, "..") || strings.Contains(ref, "passwd") {
		t.Fatalf("reference leaks client filename: %q", ref)
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	for _, ref := range []string{"", "../secret.png", "a/b.png"} {
		if _, err := store.Open(context.Background(), ref); !errors.Is(err, ErrInvalidReference) {
			t.Fatalf("expected ErrInvalidReference for %q, got %v", ref, err)
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Open(context.Background(), "missing.png"); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestNewDiskStoreCreatesRoot(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	root := filepath.Join(t.TempDir(), "nested", "uploads")

	if _, err := NewDiskStore(root, logger); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		t.Fatalf("expected root directory, err=%v", err)
	}

	if _, err := NewDiskStore("", logger); err == nil {
		t.Fatal("expected error for empty root")
	}
}
