package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"adlib/internal/fields"
	"adlib/internal/record"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var input inputFlags
	var fieldFlag string
	var value string
	var selectFlag string
	var format string

	cmd := &cobra.Command{
		Use:   "show <file>...",
		Short: "Show the first record whose field holds a value",
		Example: "  adlib show export.dat --field TI --value GL1083_09_01 --select IN,TI\n" +
			"  adlib show export.dat --field object_number --value A-1 --format yaml",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			code, ok := fields.Resolve(strings.TrimSpace(fieldFlag))
			if !ok {
				return fmt.Errorf("unknown field %q", fieldFlag)
			}
			selected, err := ctx.selection(selectFlag)
			if err != nil {
				return err
			}
			if selected == nil {
				selected = fields.Codes()
			}

			set, err := input.load(ctx, args)
			if err != nil {
				return err
			}
			rec, found := set.RecordByField(code, value, selected)
			if !found {
				return fmt.Errorf("no record in %s with %s = %q", set.Name(), code, value)
			}
			return renderRecord(cmd, rec, format)
		},
	}

	input.register(cmd)
	cmd.Flags().StringVar(&fieldFlag, "field", string(fields.ObjectNumber), "Field code or name to match")
	cmd.Flags().StringVar(&value, "value", "", "Exact value to look for")
	cmd.Flags().StringVarP(&selectFlag, "select", "s", "", "Comma separated fields to display (default: output.fields or the whole catalog)")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table, json, yaml or dump")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func renderRecord(cmd *cobra.Command, rec *record.Record, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(cmd, rec)
	case formatYAML:
		return writeYAML(cmd, rec)
	case formatDump:
		writeDump(cmd, rec)
		return nil
	}

	out := cmd.OutOrStdout()
	rows := make([][]string, 0, rec.Len())
	for _, code := range rec.Codes() {
		name, _ := fields.NameOf(code)
		values := rec.Values(code)
		if len(values) == 0 {
			rows = append(rows, []string{string(code), name, ""})
			continue
		}
		for _, v := range values {
			rows = append(rows, []string{string(code), name, v})
		}
	}
	fmt.Fprintln(out, renderTable(out, []string{"Code", "Field", "Value"}, rows, nil))
	return nil
}
