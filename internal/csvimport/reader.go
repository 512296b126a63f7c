package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

var (
	// ErrDelimiter reports a delimiter that is empty or longer than one character.
	ErrDelimiter = errors.New("csv delimiter must be a single character")
	// ErrEmptyHeader reports a file with no header row.
	ErrEmptyHeader = errors.New("csv header row is missing")
)

// Column is one header and the cells found under it, in column order.
type Column struct {
	Key    string
	Values []string
}

// Row is an ordered list of columns. Each key appears once.
type Row []Column

// Values returns the cells collected for key.
func (r Row) Values(key string) []string {
	for _, c := range r {
		if c.Key == key {
			return c.Values
		}
	}
	return nil
}

// Options controls parsing. With no Headers the first row supplies them.
type Options struct {
	Delimiter string
	Headers   []string
}

// Read parses every data row of r.
func Read(r io.Reader, opts Options) ([]Row, error) {
	comma, size := utf8.DecodeRuneInString(opts.Delimiter)
	if opts.Delimiter == "" || size != len(opts.Delimiter) || comma == utf8.RuneError {
		return nil, fmt.Errorf("%w: %q", ErrDelimiter, opts.Delimiter)
	}

	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	headers := opts.Headers
	if len(headers) == 0 {
		first, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyHeader
		}
		if err != nil {
			return nil, fmt.Errorf("read csv header: %w", err)
		}
		headers = first
	}

	var rows []Row
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, groupRow(headers, cells))
	}
	return rows, nil
}

func groupRow(headers, cells []string) Row {
	row := make(Row, 0, len(headers))
	index := make(map[string]int, len(headers))
	for i, key := range headers {
		if i >= len(cells) {
			break
		}
		pos, ok := index[key]
		if !ok {
			pos = len(row)
			index[key] = pos
			row = append(row, Column{Key: key})
		}
		row[pos].Values = append(row[pos].Values, cells[i])
	}
	return row
}
