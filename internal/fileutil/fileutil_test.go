package fileutil

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"
)

func TestWriteFileLocked(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out", "export.dat")

	err := WriteFileLocked(context.Background(), dst, 0o644, func(w io.Writer) error {
		_, err := io.WriteString(w, "TI Vase\n**\n")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "TI Vase\n**\n" {
		t.Fatalf("content mismatch: got %q", got)
	}
	entries, err := os.ReadDir(filepath.Dir(dst))
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			t.Fatalf("temporary file left behind: %s", entry.Name())
		}
	}
}

func TestWriteFileLockedKeepsOriginalOnError(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "export.dat")
	if err := os.WriteFile(dst, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := WriteFileLocked(context.Background(), dst, 0o644, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected write error, got %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "original" {
		t.Fatalf("original content was replaced: %q", got)
	}
}

func TestWriteFileLockedWaitsForLock(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "export.dat")
	holder := flock.New(LockPath(dst))
	if err := holder.Lock(); err != nil {
		t.Fatal(err)
	}
	defer holder.Unlock() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	err := WriteFileLocked(ctx, dst, 0o644, func(w io.Writer) error { return nil })
	if err == nil {
		t.Fatal("expected lock acquisition to fail while held")
	}
	if _, statErr := os.Stat(dst); !os.IsNotExist(statErr) {
		t.Fatalf("target must not be written without the lock: %v", statErr)
	}
}
