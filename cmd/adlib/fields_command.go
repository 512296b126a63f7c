package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"adlib/internal/fields"
)

func newFieldsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:         "fields",
		Short:       "List the field catalog in export order",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			entries := fields.All()
			switch format {
			case formatJSON:
				return writeJSON(cmd, entries)
			case formatYAML:
				return writeYAML(cmd, entries)
			case formatDump:
				writeDump(cmd, entries)
				return nil
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{string(e.Code), e.Name, e.Description})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Code", "Name", "Description"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table, json, yaml or dump")
	return cmd
}
