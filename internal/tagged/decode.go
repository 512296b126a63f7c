package tagged

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"adlib/internal/fields"
	"adlib/internal/record"
)

const (
	// Separator splits record blocks.
	Separator = "**"
	// ContinuationPrefix marks a line that extends the previous value.
	ContinuationPrefix = "  "

	bom = "\uFEFF"
)

// Decode parses a tagged document into records, one per block. Empty blocks,
// such as the one after a trailing separator, yield empty records.
func Decode(text string) []*record.Record {
	text = strings.TrimPrefix(text, bom)
	blocks := strings.Split(text, Separator)
	out := make([]*record.Record, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, decodeBlock(block))
	}
	return out
}

// DecodeReader reads r to the end and decodes it.
func DecodeReader(r io.Reader) ([]*record.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read tagged data: %w", err)
	}
	return Decode(string(data)), nil
}

func decodeBlock(block string) *record.Record {
	rec := record.New()
	var prevtag fields.Code
	havePrev := false
	for _, line := range strings.Split(block, "\n") {
		if line == "" {
			continue
		}
		switch kind, tag := classify(line); kind {
		case lineContinuation:
			if havePrev {
				rec.AppendToLast(prevtag, continuationValue(line))
			}
		case lineTagged:
			rec.Add(tag, lineValue(line))
			prevtag = tag
			havePrev = true
		}
	}
	return rec
}

type lineKind int

const (
	lineSkip lineKind = iota
	lineContinuation
	lineTagged
)

func classify(line string) (lineKind, fields.Code) {
	if len(line) < 2 {
		return lineSkip, ""
	}
	prefix := line[:2]
	if prefix == ContinuationPrefix {
		return lineContinuation, ""
	}
	if strings.ContainsAny(prefix, "\r\n") || !utf8.ValidString(prefix) {
		return lineSkip, ""
	}
	return lineTagged, fields.Code(prefix)
}

// continuationValue drops the separator space at offset 2 when present; some
// exporters write the continued text directly after the two-space prefix.
func continuationValue(line string) string {
	if len(line) > 2 && line[2] != ' ' {
		return strings.ReplaceAll(line[2:], "\r", "")
	}
	return lineValue(line)
}

func lineValue(line string) string {
	if len(line) <= 3 {
		return ""
	}
	return strings.ReplaceAll(line[3:], "\r", "")
}
