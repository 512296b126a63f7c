package tagged

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adlib/internal/fields"
	"adlib/internal/record"
)

func TestEncodeSelectedFieldsInSelectionOrder(t *testing.T) {
	recs := Decode("TI Vase\nIN A-1\nIN A-1b\nBE blue\n**\n")
	got := Encode(recs, []fields.Code{fields.ObjectNumber, fields.Title})
	assert.Equal(t, "IN A-1\nIN A-1b\nTI Vase\n**\n", got)
}

func TestEncodeDropsRecordsWithoutSelectedFields(t *testing.T) {
	recs := Decode("TI a\n**\nIN 2\n**\nTI c\n**\n")
	got := Encode(recs, []fields.Code{fields.Title})
	assert.Equal(t, "TI a\n**\nTI c\n**\n", got)
}

func TestEncodeSkipsEmptySequences(t *testing.T) {
	rec := record.New()
	rec.Set(fields.Title, nil)
	assert.Equal(t, "", Encode([]*record.Record{rec}, []fields.Code{fields.Title}))
}

func TestEncodeAllFieldsUsesCatalogOrder(t *testing.T) {
	recs := Decode("TI t\nIN n\n%0 7\nZZ not in catalog\n")
	got := Encode(recs, nil)
	assert.Equal(t, "%0 7\nIN n\nTI t\n**\n", got)
}

func TestRoundTripPreservesValues(t *testing.T) {
	src := "%0 1\nIN A-1\nOB Vase\nTI Blue vase\nTI second title\nFN img/a.jpg\n**\n" +
		"%0 2\nIN A-2\nBE long\n  text\n**\n"
	recs := Decode(src)
	out := Encode(recs, nil)
	again := Decode(out)

	var nonEmpty []*record.Record
	for _, rec := range recs {
		if !rec.Empty() {
			nonEmpty = append(nonEmpty, rec)
		}
	}
	var reNonEmpty []*record.Record
	for _, rec := range again {
		if !rec.Empty() {
			reNonEmpty = append(reNonEmpty, rec)
		}
	}
	require.Len(t, reNonEmpty, len(nonEmpty))
	for i := range nonEmpty {
		for _, code := range nonEmpty[i].Codes() {
			assert.Equal(t, nonEmpty[i].Values(code), reNonEmpty[i].Values(code), "record %d field %s", i, code)
		}
	}
	assert.Equal(t, []string{"longtext"}, reNonEmpty[1].Values(fields.Description))
}

func TestRoundTripIsNotByteIdenticalWithEmptyRecords(t *testing.T) {
	src := "**\nTI a\n**\n"
	recs := Decode(src)
	require.Len(t, recs, 3)
	assert.True(t, recs[0].Empty())
	assert.Equal(t, "TI a\n**\n", Encode(recs, nil))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteReportsBytesAndErrors(t *testing.T) {
	recs := Decode("TI a\n**\nTI b\n")
	var buf bytes.Buffer
	n, err := Write(&buf, recs, []fields.Code{fields.Title})
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	_, err = Write(failingWriter{}, recs, []fields.Code{fields.Title})
	assert.EqualError(t, err, "disk full")
}
