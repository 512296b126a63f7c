package tagged

import (
	"io"
	"strings"

	"adlib/internal/fields"
	"adlib/internal/record"
)

// Encode serializes the selected fields of recs. A nil or empty selection
// writes every catalog field in catalog order. Fields outside the catalog are
// only written when selected explicitly.
func Encode(recs []*record.Record, selection []fields.Code) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_, _ = Write(&sb, recs, selection)
	return sb.String()
}

// Write streams the encoding of recs to w and returns the number of bytes
// written.
func Write(w io.Writer, recs []*record.Record, selection []fields.Code) (int64, error) {
	if len(selection) == 0 {
		selection = fields.Codes()
	}
	var total int64
	var stanza strings.Builder
	for _, rec := range recs {
		stanza.Reset()
		if !encodeRecord(&stanza, rec, selection) {
			continue
		}
		n, err := io.WriteString(w, stanza.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func encodeRecord(sb *strings.Builder, rec *record.Record, selection []fields.Code) bool {
	wrote := false
	for _, code := range selection {
		vals := rec.Values(code)
		if len(vals) == 0 {
			continue
		}
		for _, v := range vals {
			sb.WriteString(string(code))
			sb.WriteByte(' ')
			sb.WriteString(v)
			sb.WriteByte('\n')
		}
		wrote = true
	}
	if wrote {
		sb.WriteString(Separator)
		sb.WriteByte('\n')
	}
	return wrote
}
