package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountCommand(ctx *commandContext) *cobra.Command {
	var input inputFlags

	cmd := &cobra.Command{
		Use:   "count <file>...",
		Short: "Print the number of records in an export",
		Long: "Load one or more exports and print the record count. Tagged exports count\n" +
			"every block, including the empty one after a trailing separator.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := input.load(ctx, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), set.Len())
			return nil
		},
	}

	input.register(cmd)
	return cmd
}
