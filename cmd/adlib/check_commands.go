package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"adlib/internal/config"
	"adlib/internal/fields"
	"adlib/internal/refcheck"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify files and links referenced by records",
	}

	checkCmd.AddCommand(newCheckFilesCommand(ctx))
	checkCmd.AddCommand(newCheckLinksCommand(ctx))

	return checkCmd
}

type checkFlags struct {
	input      inputFlags
	field      string
	format     string
	failedOnly bool
}

func (f *checkFlags) register(cmd *cobra.Command, defaultField fields.Code) {
	f.input.register(cmd)
	cmd.Flags().StringVar(&f.field, "field", string(defaultField), "Field code or name holding the references")
	cmd.Flags().StringVar(&f.format, "format", formatTable, "Output format: table or json")
	cmd.Flags().BoolVar(&f.failedOnly, "failed-only", false, "Only list failed references")
}

func (f *checkFlags) resolve() (fields.Code, error) {
	if f.format != formatTable && f.format != formatJSON {
		return "", fmt.Errorf("unsupported --format %q (want table or json)", f.format)
	}
	code, ok := fields.Resolve(strings.TrimSpace(f.field))
	if !ok {
		return "", fmt.Errorf("unknown field %q", f.field)
	}
	return code, nil
}

func newCheckFilesCommand(ctx *commandContext) *cobra.Command {
	var flags checkFlags
	var baseDir string

	cmd := &cobra.Command{
		Use:   "files <file>...",
		Short: "Check that referenced reproduction files exist",
		Long: "Resolve every value of the field against the base directory and report\n" +
			"whether the file exists and is readable. Exits non-zero when any is missing.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := flags.resolve()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			base := cfg.Files.BaseDir
			if strings.TrimSpace(baseDir) != "" {
				if base, err = config.ExpandPath(baseDir); err != nil {
					return fmt.Errorf("resolve base directory: %w", err)
				}
			}

			set, err := flags.input.load(ctx, args)
			if err != nil {
				return err
			}
			results := set.CheckFiles(code, base)

			failed := 0
			rows := make([][]string, 0, len(results))
			shown := make([]refcheck.FileResult, 0, len(results))
			for _, r := range results {
				if !r.OK() {
					failed++
				} else if flags.failedOnly {
					continue
				}
				shown = append(shown, r)
				rows = append(rows, []string{r.Path, r.Status})
			}

			if flags.format == formatJSON {
				if err := writeJSON(cmd, shown); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				if len(rows) > 0 {
					fmt.Fprintln(out, renderTable(out, []string{"Path", "Status"}, rows, nil))
				}
				fmt.Fprintf(out, "%d checked, %d missing\n", len(results), failed)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d referenced files missing", failed, len(results))
			}
			return nil
		},
	}

	flags.register(cmd, fields.ReproductionRef)
	cmd.Flags().StringVar(&baseDir, "base-dir", "", "Directory relative references resolve against (default: files.base_dir)")
	return cmd
}

func newCheckLinksCommand(ctx *commandContext) *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "links <file>...",
		Short: "Check that referenced URLs answer with a 2xx status",
		Long: "Probe every value of the field, one request at a time, and report the HTTP\n" +
			"status or the transport error. Exits non-zero when any probe fails.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := flags.resolve()
			if err != nil {
				return err
			}
			set, err := flags.input.load(ctx, args)
			if err != nil {
				return err
			}
			results := set.CheckLinks(cmd.Context(), code)

			failed := 0
			rows := make([][]string, 0, len(results))
			shown := make([]refcheck.LinkResult, 0, len(results))
			for _, r := range results {
				if !r.OK() {
					failed++
				} else if flags.failedOnly {
					continue
				}
				shown = append(shown, r)
				rows = append(rows, []string{r.Link, r.Status()})
			}

			if flags.format == formatJSON {
				if err := writeJSON(cmd, shown); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				if len(rows) > 0 {
					fmt.Fprintln(out, renderTable(out, []string{"Link", "Status"}, rows, []columnAlignment{alignLeft, alignRight}))
				}
				fmt.Fprintf(out, "%d checked, %d failed\n", len(results), failed)
			}
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d links failed", failed, len(results))
			}
			return nil
		},
	}

	flags.register(cmd, fields.ExternalLink)
	return cmd
}
