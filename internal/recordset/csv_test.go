package recordset_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adlib/internal/fields"
	"adlib/internal/recordset"
	"adlib/internal/testsupport"
)

func TestLoadCSVWithHeaderRow(t *testing.T) {
	set := testsupport.WriteSampleSet(t)
	c := recordset.New("csv")

	rows, err := c.LoadCSV(set.CSV, nil, ";")
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
	require.Equal(t, 2, c.Len())

	recs := c.Records()
	nt := recs[0].Values(fields.RelatedObject)
	require.Len(t, nt, 4)
	assert.Equal(t, "AT-OeAI-02-000124", nt[3])
	assert.Equal(t, []string{"Rohton-Probe"}, recs[0].Values(fields.ObjectName))

	assert.Equal(t, []string{"AT-OeAI-02-000300"}, recs[1].Values(fields.ObjectNumber))
	assert.Equal(t, []string{"AT-OeAI-02-000125", "AT-OeAI-02-000126"}, recs[1].Values(fields.RelatedObject))
}

func TestLoadCSVAppends(t *testing.T) {
	set := testsupport.WriteSampleSet(t)
	c := recordset.New("mixed")
	_, err := c.LoadFile(set.Tagged)
	require.NoError(t, err)

	_, err = c.LoadCSV(set.CSV, nil, ";")
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())
}

func TestLoadCSVExplicitCodes(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFile(t, filepath.Join(dir, "plain.csv"), "A-1,Teller\nA-2,\n")

	c := recordset.New("plain")
	rows, err := c.LoadCSV(path, []fields.Code{fields.ObjectNumber, fields.ObjectName}, ",")
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "IN A-1\nOB Teller\n**\nIN A-2\n**\n",
		c.TaggedText([]fields.Code{fields.ObjectNumber, fields.ObjectName}))
}

func TestLoadCSVRequiresDelimiter(t *testing.T) {
	set := testsupport.WriteSampleSet(t)
	c := recordset.New("csv")
	_, err := c.LoadCSV(set.CSV, nil, "")
	assert.ErrorIs(t, err, recordset.ErrDelimiterRequired)
	assert.Zero(t, c.Len())
}

func TestLoadCSVMissingFile(t *testing.T) {
	c := recordset.New("csv")
	_, err := c.LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), nil, ";")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open csv file")
}
