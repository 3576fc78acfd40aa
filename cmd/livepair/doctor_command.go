package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"livepair/internal/preflight"
)

func newDoctorCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [DIR...]",
		Short: "Check external tools and directory permissions",
		Long: `Doctor verifies that exiftool, ffmpeg, and ffprobe resolve from the
active configuration, and that any directories given as arguments are
readable and writable. It makes no changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(args)+3)
			failures := 0
			for _, status := range preflight.CheckTools(cfg) {
				state := "ok"
				detail := status.Command
				if !status.Available {
					state = "missing"
					detail = status.Detail
					failures++
				}
				rows = append(rows, []string{status.Name, state, detail})
			}
			for _, dir := range args {
				result := preflight.CheckDirectoryAccess("Directory", dir)
				state := "ok"
				if !result.Passed {
					state = "error"
					failures++
				}
				rows = append(rows, []string{result.Name, state, result.Detail})
			}

			if colorize := shouldColorize(os.Stdout); colorize {
				for _, row := range rows {
					if row[1] == "ok" {
						row[1] = ansiGreen + row[1] + ansiReset
					} else {
						row[1] = ansiRed + row[1] + ansiReset
					}
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Check", "Status", "Detail"}, rows))

			if failures > 0 {
				return fmt.Errorf("%d check(s) failed", failures)
			}
			return nil
		},
	}
}
