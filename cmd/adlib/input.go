package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"adlib/internal/fields"
	"adlib/internal/recordset"
)

// inputFlags select how positional input files are read.
type inputFlags struct {
	csv       bool
	delimiter string
	headers   string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.csv, "csv", false, "Read inputs as CSV (implied for .csv files)")
	cmd.Flags().StringVarP(&f.delimiter, "delimiter", "d", "", "CSV delimiter (defaults to input.csv_delimiter)")
	cmd.Flags().StringVar(&f.headers, "headers", "", "Comma separated field codes or names for CSV columns; default reads the header row")
}

func (f *inputFlags) isCSV(path string) bool {
	return f.csv || strings.EqualFold(filepath.Ext(path), ".csv")
}

// load reads every path into one collection. The first tagged file sets the
// collection content; later files and all CSV rows are appended in order.
func (f *inputFlags) load(ctx *commandContext, paths []string) (*recordset.Collection, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("an input file is required")
	}
	set, err := ctx.newCollection(paths[0])
	if err != nil {
		return nil, err
	}

	for i, path := range paths {
		if f.isCSV(path) {
			if err := f.loadCSV(ctx, set, path); err != nil {
				return nil, err
			}
			continue
		}
		if i == 0 {
			if _, err := set.LoadFile(path); err != nil {
				return nil, err
			}
			continue
		}
		other, err := ctx.loadTagged(path)
		if err != nil {
			return nil, err
		}
		set.Append(other.Records()...)
	}
	return set, nil
}

func (f *inputFlags) loadCSV(ctx *commandContext, set *recordset.Collection, path string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	delimiter := f.delimiter
	if delimiter == "" {
		delimiter = cfg.Input.CSVDelimiter
	}
	var codes []fields.Code
	if strings.TrimSpace(f.headers) != "" {
		if codes, err = parseFieldList(f.headers); err != nil {
			return err
		}
	}
	_, err = set.LoadCSV(path, codes, delimiter)
	return err
}
