package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	pointdomain "github.com/ghuser/ecoleta/services/point/domain"
	"github.com/ghuser/ecoleta/services/point/domain/models"
)

func TestDiskStore_PutWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewDiskStore(dir, "http://localhost:8080/", 1024)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	ref, err := store.Put(context.Background(), &models.ImageUpload{Filename: "front.png", Data: pngHeader})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, ref))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(got) != string(pngHeader) {
		t.Fatal("stored bytes differ from upload")
	}

	if url := store.PublicURL(ref); url != "http://localhost:8080/uploads/"+ref {
		t.Fatalf("unexpected public url %q", url)
	}
}

func TestDiskStore_RejectsBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:8080", 16)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	_, err = store.Put(context.Background(), &models.ImageUpload{Filename: "a.txt", Data: []byte("text")})
	if !errors.Is(err, pointdomain.ErrImageRejected) {
		t.Fatalf("expected ErrImageRejected, got %v", err)
	}
	_, err = store.Put(context.Background(), &models.ImageUpload{Filename: "big.png", Data: oversizedPNG()})
	if !errors.Is(err, pointdomain.ErrImageTooLarge) {
		t.Fatalf("expected ErrImageTooLarge, got %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("expected no files, found %d", len(entries))
	}
}

func TestDiskStore_CancelledContext(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost:8080", 1024)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Put(ctx, &models.ImageUpload{Filename: "a.png", Data: pngHeader}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
