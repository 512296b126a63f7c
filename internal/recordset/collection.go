package recordset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"slices"
	"time"

	"adlib/internal/charset"
	"adlib/internal/csvimport"
	"adlib/internal/fields"
	"adlib/internal/fileutil"
	"adlib/internal/logging"
	"adlib/internal/record"
	"adlib/internal/refcheck"
	"adlib/internal/tagged"
)

// ErrDelimiterRequired is returned by LoadCSV when no delimiter is given.
var ErrDelimiterRequired = errors.New("csv delimiter is required")

// Collection is an ordered sequence of records identified by a name.
type Collection struct {
	name      string
	sourceURL *url.URL
	records   []*record.Record

	logger   *slog.Logger
	encoding string
	links    refcheck.LinkChecker
}

// Option configures a Collection.
type Option func(*Collection)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collection) {
		c.logger = logger
	}
}

// WithEncoding sets the text encoding label of source files.
func WithEncoding(label string) Option {
	return func(c *Collection) {
		c.encoding = label
	}
}

// WithHTTPClient sets the client used by CheckLinks.
func WithHTTPClient(client refcheck.HTTPDoer) Option {
	return func(c *Collection) {
		c.links.Client = client
	}
}

// WithLinkTimeout bounds each link probe.
func WithLinkTimeout(d time.Duration) Option {
	return func(c *Collection) {
		c.links.Timeout = d
	}
}

// WithLinkMethod selects the HTTP method used for link probes.
func WithLinkMethod(method string) Option {
	return func(c *Collection) {
		c.links.Method = method
	}
}

// WithUserAgent sets the User-Agent header sent with link probes.
func WithUserAgent(ua string) Option {
	return func(c *Collection) {
		c.links.UserAgent = ua
	}
}

// New returns an empty collection.
func New(name string, opts ...Option) *Collection {
	c := &Collection{
		name:     name,
		encoding: charset.DefaultEncoding,
		links:    refcheck.LinkChecker{Client: http.DefaultClient, Method: http.MethodHead},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "recordset").With(slog.String(logging.FieldSet, name))
	return c
}

// Name returns the collection name.
func (c *Collection) Name() string { return c.name }

// SourceURL returns the provenance locator, nil when unset.
func (c *Collection) SourceURL() *url.URL { return c.sourceURL }

// SetSourceURL records where the data came from.
func (c *Collection) SetSourceURL(u *url.URL) { c.sourceURL = u }

// Records returns the records in load order. The slice is a copy; the records
// are shared.
func (c *Collection) Records() []*record.Record {
	return slices.Clone(c.records)
}

// Len returns the number of records.
func (c *Collection) Len() int { return len(c.records) }

// Append adds records to the end of the collection.
func (c *Collection) Append(recs ...*record.Record) {
	c.records = append(c.records, recs...)
}

// LoadFile replaces the collection with the records of a tagged export and
// returns their count. Empty blocks are kept as empty records.
func (c *Collection) LoadFile(path string) (int, error) {
	text, err := charset.ReadFile(path, c.encoding)
	if err != nil {
		return 0, fmt.Errorf("open tagged file: %w", err)
	}
	recs := tagged.Decode(text)
	c.logger.Debug("parsing records", slog.String(logging.FieldPath, path), slog.Int("blocks", len(recs)))
	c.records = recs
	c.logger.Info("loaded tagged file", slog.String(logging.FieldPath, path), slog.Int("count", len(recs)))
	return len(recs), nil
}

// LoadCSV appends the rows of a delimited export. Without codes the first row
// supplies the headers, which may be field codes or field names. It returns the
// number of data rows read, which can exceed the number of records appended:
// rows without a usable field are dropped.
func (c *Collection) LoadCSV(path string, codes []fields.Code, delimiter string) (int, error) {
	if delimiter == "" {
		return 0, ErrDelimiterRequired
	}
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open csv file: %w", err)
	}
	defer file.Close()

	r, err := charset.NewReader(file, c.encoding)
	if err != nil {
		return 0, err
	}
	rows, err := c.readCSV(r, codes, delimiter)
	if err != nil {
		return 0, fmt.Errorf("parse csv file %s: %w", path, err)
	}

	recs := normalizeRows(rows)
	if dropped := len(rows) - len(recs); dropped > 0 {
		c.logger.Debug("dropped csv rows without usable fields", slog.Int("dropped", dropped))
	}
	c.records = append(c.records, recs...)
	c.logger.Info("loaded csv file",
		slog.String(logging.FieldPath, path),
		slog.Int("rows", len(rows)),
		slog.Int("appended", len(recs)),
	)
	return len(rows), nil
}

func (c *Collection) readCSV(r io.Reader, codes []fields.Code, delimiter string) ([]csvimport.Row, error) {
	opts := csvimport.Options{Delimiter: delimiter}
	for _, code := range codes {
		opts.Headers = append(opts.Headers, string(code))
	}
	return csvimport.Read(r, opts)
}

// normalizeRows resolves row keys to codes, drops unresolvable keys and empty
// values, and skips rows left without any field.
func normalizeRows(rows []csvimport.Row) []*record.Record {
	out := make([]*record.Record, 0, len(rows))
	for _, row := range rows {
		rec := record.New()
		for _, col := range row {
			code, ok := fields.Resolve(col.Key)
			if !ok {
				continue
			}
			for _, v := range col.Values {
				if v == "" {
					continue
				}
				rec.Add(code, v)
			}
		}
		if rec.Empty() {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// FilterByField returns every record whose sequence for code contains value.
func (c *Collection) FilterByField(code fields.Code, value string) []*record.Record {
	var out []*record.Record
	for _, rec := range c.records {
		if rec.Contains(code, value) {
			out = append(out, rec)
		}
	}
	return out
}

// RecordByField returns the first record matching code/value, projected onto
// selected.
func (c *Collection) RecordByField(code fields.Code, value string, selected []fields.Code) (*record.Record, bool) {
	for _, rec := range c.records {
		if rec.Contains(code, value) {
			return record.Project(rec, selected), true
		}
	}
	return nil, false
}

// TaggedText serializes the selected fields; nil selects the whole catalog.
func (c *Collection) TaggedText(selected []fields.Code) string {
	return tagged.Encode(c.records, selected)
}

// WriteFile writes TaggedText to path under a file lock and returns the number
// of bytes written.
func (c *Collection) WriteFile(ctx context.Context, path string, selected []fields.Code) (int64, error) {
	var written int64
	err := fileutil.WriteFileLocked(ctx, path, 0o644, func(w io.Writer) error {
		n, err := tagged.Write(w, c.records, selected)
		written = n
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("write tagged file: %w", err)
	}
	c.logger.Info("wrote tagged file", slog.String(logging.FieldPath, path), slog.Int64("bytes", written))
	return written, nil
}

// FieldValues returns every value stored under code, walking records and then
// values in order.
func (c *Collection) FieldValues(code fields.Code) []string {
	var out []string
	for _, rec := range c.records {
		out = append(out, rec.Values(code)...)
	}
	return out
}

// CheckFiles reports, for each value of code, whether the referenced file
// exists under baseDir.
func (c *Collection) CheckFiles(code fields.Code, baseDir string) []refcheck.FileResult {
	results := refcheck.CheckFiles(c.FieldValues(code), baseDir)
	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	c.logger.Info("checked file references",
		slog.String(logging.FieldField, string(code)),
		slog.Int("checked", len(results)),
		slog.Int("failed", failed),
	)
	return results
}

// CheckLinks probes every URL stored under code, one request at a time.
func (c *Collection) CheckLinks(ctx context.Context, code fields.Code) []refcheck.LinkResult {
	results := c.links.Check(ctx, c.FieldValues(code))
	for _, r := range results {
		if !r.OK() {
			c.logger.Debug("link probe failed", slog.String("link", r.Link), slog.String("status", r.Status()))
		}
	}
	c.logger.Info("checked links",
		slog.String(logging.FieldField, string(code)),
		slog.Int("checked", len(results)),
	)
	return results
}
