package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"adlib/internal/config"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var input inputFlags
	var fieldsFlag string
	var outPath string

	cmd := &cobra.Command{
		Use:   "convert <file>...",
		Short: "Write tagged text for the selected fields",
		Long: "Load tagged or CSV exports and write the selected fields as tagged text.\n" +
			"Records without any selected field are left out.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := ctx.selection(fieldsFlag)
			if err != nil {
				return err
			}
			set, err := input.load(ctx, args)
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outPath)
			if target == "" || target == "-" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), set.TaggedText(selected))
				return err
			}
			if target, err = config.ExpandPath(target); err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			n, err := set.WriteFile(cmd.Context(), target, selected)
			if err != nil {
				return err
			}
			if logger, err := ctx.ensureLogger(); err == nil {
				logger.Debug("convert finished", slog.Int("records", set.Len()), slog.Int64("bytes", n))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", n, target)
			return nil
		},
	}

	input.register(cmd)
	cmd.Flags().StringVarP(&fieldsFlag, "fields", "f", "", "Comma separated field codes or names to export (default: output.fields or the whole catalog)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file; stdout when empty or -")
	return cmd
}
