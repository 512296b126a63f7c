package charset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFileStripsUTF8BOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.dat")
	if err := os.WriteFile(path, []byte("\xef\xbb\xbfTI Vase\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path, "")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "TI Vase\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestReadFileLatin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.dat")
	if err := os.WriteFile(path, []byte("TI K\xfcrbis\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path, "iso-8859-1")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "TI Kürbis\n" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestReadFileUTF16BOMOverridesLabel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utf16.dat")
	// "TI x" as UTF-16LE with BOM.
	data := []byte{0xff, 0xfe, 'T', 0, 'I', 0, ' ', 0, 'x', 0}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path, "windows-1252")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "TI x" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), "klingon")
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("expected ErrUnknownEncoding, got %v", err)
	}
	if !Valid("UTF-8") || Valid("klingon") {
		t.Fatal("Valid disagrees with Lookup")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.dat"), ""); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
