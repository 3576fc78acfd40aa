package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"livepair/internal/replace"
)

func newCleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean DIR...",
		Short: "Remove staged temp files left by interrupted runs",
		Long: `Clean scans the given directories for hidden staging files that an
interrupted stamping run left behind. Leftovers whose original file
survived are deleted; a leftover that is the only remaining copy is
renamed back to its original name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, dir := range args {
				removed, restored, err := replace.SweepOrphans(dir)
				for _, path := range removed {
					fmt.Fprintf(out, "removed %s\n", path)
				}
				for _, path := range restored {
					fmt.Fprintf(out, "restored %s\n", path)
				}
				if err != nil {
					return fmt.Errorf("clean %s: %w", dir, err)
				}
			}
			return nil
		},
	}
}
