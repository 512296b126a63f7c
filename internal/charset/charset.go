package charset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when no label is configured.
const DefaultEncoding = "utf-8"

// ErrUnknownEncoding reports a label htmlindex does not know.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// Lookup resolves an encoding label. An empty label selects UTF-8.
func Lookup(label string) (encoding.Encoding, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	return enc, nil
}

// Valid reports whether label names a supported encoding.
func Valid(label string) bool {
	_, err := Lookup(label)
	return err == nil
}

// NewReader wraps r so that it yields UTF-8. A leading byte-order mark selects
// the matching Unicode encoding and is dropped, overriding label.
func NewReader(r io.Reader, label string) (io.Reader, error) {
	enc, err := Lookup(label)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// ReadFile reads path and returns its UTF-8 content.
func ReadFile(path, label string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	r, err := NewReader(file, label)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return string(data), nil
}
