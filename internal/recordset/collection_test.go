package recordset_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adlib/internal/fields"
	"adlib/internal/record"
	"adlib/internal/recordset"
	"adlib/internal/refcheck"
	"adlib/internal/testsupport"
)

func loadSample(t *testing.T) (*recordset.Collection, testsupport.SampleSet) {
	t.Helper()
	set := testsupport.WriteSampleSet(t)
	c := recordset.New("testset")
	n, err := c.LoadFile(set.Tagged)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	return c, set
}

func TestNewCollectionIsEmpty(t *testing.T) {
	c := recordset.New("empty")
	assert.Equal(t, "empty", c.Name())
	assert.Zero(t, c.Len())
	assert.Nil(t, c.SourceURL())
	assert.Equal(t, "", c.TaggedText(nil))
}

func TestSourceURL(t *testing.T) {
	c := recordset.New("remote")
	u, err := url.Parse("https://collections.example.org/export/17")
	require.NoError(t, err)
	c.SetSourceURL(u)
	assert.Equal(t, u, c.SourceURL())
}

func TestLoadFileKeepsTrailingEmptyRecord(t *testing.T) {
	c, _ := loadSample(t)

	recs := c.Records()
	require.Len(t, recs, 4)
	assert.True(t, recs[3].Empty())

	first, ok := recs[0].First(fields.ObjectNumber)
	require.True(t, ok)
	assert.Equal(t, "AT-OeAW-BA-3-27-A-GL1083_09_01", first)
	assert.Equal(t, []string{"1"}, recs[0].Values(fields.Priref))

	assert.Equal(t, []string{"Ansicht des Tempels,aufgenommen von Norden"}, recs[1].Values(fields.Description))
	assert.Equal(t, []string{"AT-OeAW-BA-3-27-A-GL1083_09_01", "AT-OeAW-BA-3-27-A-GL1083_09_02"},
		recs[2].Values(fields.RelatedObject))
}

func TestLoadFileReplacesContent(t *testing.T) {
	c, set := loadSample(t)
	other := testsupport.WriteFile(t, filepath.Join(set.Dir, "other.dat"), "IN x\n")

	n, err := c.LoadFile(other)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, c.Len())
}

func TestLoadFileMissing(t *testing.T) {
	c := recordset.New("missing")
	_, err := c.LoadFile(filepath.Join(t.TempDir(), "nope.dat"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "open tagged file")
}

func TestLoadFileLatin1(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteFile(t, filepath.Join(dir, "latin1.dat"), "TI Gr\xfc\xdfe\n")

	c := recordset.New("latin1", recordset.WithEncoding("iso-8859-1"))
	_, err := c.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Grüße"}, c.FieldValues(fields.Title))
}

func TestFilterByField(t *testing.T) {
	c, _ := loadSample(t)

	got := c.FilterByField(fields.RelatedObject, "AT-OeAW-BA-3-27-A-GL1083_09_02")
	require.Len(t, got, 1)
	assert.Equal(t, []string{"3"}, got[0].Values(fields.Priref))

	assert.Empty(t, c.FilterByField(fields.Title, "nothing"))
}

func TestRecordByFieldProjects(t *testing.T) {
	c, _ := loadSample(t)

	rec, ok := c.RecordByField(fields.Title, "GL1083_09_01", []fields.Code{fields.Title, fields.ObjectNumber, fields.Material})
	require.True(t, ok)
	assert.Equal(t, "AT-OeAW-BA-3-27-A-GL1083_09_01", rec.Values(fields.ObjectNumber)[0])
	assert.Equal(t, []fields.Code{fields.Title, fields.ObjectNumber, fields.Material}, rec.Codes())
	assert.Empty(t, rec.Values(fields.Material))
	assert.False(t, rec.Has(fields.ReproductionRef))

	_, ok = c.RecordByField(fields.Title, "absent", nil)
	assert.False(t, ok)
}

func TestTaggedTextSelection(t *testing.T) {
	c, _ := loadSample(t)

	text := c.TaggedText([]fields.Code{fields.ObjectNumber})
	want := "IN AT-OeAW-BA-3-27-A-GL1083_09_01\n**\n" +
		"IN AT-OeAW-BA-3-27-A-GL1083_09_02\n**\n" +
		"IN AT-OeAW-BA-3-27-A-GL1083_09_03\n**\n"
	assert.Equal(t, want, text)
}

func TestTaggedTextRoundTrip(t *testing.T) {
	c, set := loadSample(t)
	path := filepath.Join(set.Dir, "out", "roundtrip.dat")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	n, err := c.WriteFile(context.Background(), path, nil)
	require.NoError(t, err)
	content := testsupport.ReadFile(t, path)
	assert.EqualValues(t, len(content), n)

	again := recordset.New("again")
	count, err := again.LoadFile(path)
	require.NoError(t, err)
	// The empty record is dropped on export, and the trailing separator adds
	// one again on import.
	assert.Equal(t, 4, count)
	assert.Equal(t, c.TaggedText(nil), again.TaggedText(nil))
}

func TestFieldValuesOrder(t *testing.T) {
	c, _ := loadSample(t)
	assert.Equal(t, []string{"img/GL1083_09_01.jpg", "img/GL1083_09_02.jpg"}, c.FieldValues(fields.ReproductionRef))
	assert.Empty(t, c.FieldValues(fields.Technique))
}

func TestAppend(t *testing.T) {
	c := recordset.New("manual")
	rec := record.New()
	rec.Add(fields.Title, "one")
	c.Append(rec, record.New())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "TI one\n**\n", c.TaggedText(nil))
}

func TestCheckFiles(t *testing.T) {
	c, set := loadSample(t)

	results := c.CheckFiles(fields.ReproductionRef, set.FileDir)
	require.Len(t, results, 2)
	assert.Equal(t, refcheck.StatusOK, results[0].Status)
	assert.Equal(t, refcheck.StatusFail, results[1].Status)
	assert.Equal(t, filepath.Join(set.FileDir, "img", "GL1083_09_02.jpg"), results[1].Path)
}

func TestCheckLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		assert.Equal(t, "adlib-test", r.Header.Get("User-Agent"))
		if strings.HasSuffix(r.URL.Path, "/gone") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := recordset.New("links",
		recordset.WithHTTPClient(srv.Client()),
		recordset.WithUserAgent("adlib-test"),
	)
	for _, link := range []string{srv.URL + "/ok", srv.URL + "/gone"} {
		rec := record.New()
		rec.Add(fields.ExternalLink, link)
		c.Append(rec)
	}

	results := c.CheckLinks(context.Background(), fields.ExternalLink)
	require.Len(t, results, 2)
	assert.Equal(t, "200", results[0].Status())
	assert.True(t, results[0].OK())
	assert.Equal(t, "404", results[1].Status())
	assert.False(t, results[1].OK())
}

func TestCheckLinksCancelled(t *testing.T) {
	c, _ := loadSample(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := c.CheckLinks(ctx, fields.ExternalLink)
	require.Len(t, results, 1)
	assert.False(t, results[0].OK())
	assert.Equal(t, context.Canceled.Error(), results[0].Status())
}
