package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool
	opts := &runOptions{}

	ctx := newCommandContext(&configFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:   "livepair [flags] FILES...",
		Short: "Stamp photo + video pairs so they import as Live Photos",
		Long: `livepair writes a shared content identifier into a still image (JPEG/HEIC)
and a companion movie (MOV/MP4) so photo managers recognize the pair as a
single Live Photo.

Positional FILES are matched into pairs by filename stem (case-sensitive);
unmatched files are reported but not an error. Explicit pairs bypass the
matching with --manual IMAGE,VIDEO.

Examples:
  livepair photo.jpeg photo.mov          # stamp one matched pair
  livepair --check trip/*                # report pairing state, mutate nothing
  livepair --pvt -m img.heic,clip.mov    # package an explicit pair as a .pvt bundle`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPairs(cmd, ctx, opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print the identifier used per pair")
	rootCmd.Flags().StringArrayVarP(&opts.manual, "manual", "m", nil, "Explicit IMAGE,VIDEO pair (repeatable, bypasses stem matching)")
	rootCmd.Flags().BoolVarP(&opts.check, "check", "c", false, "Read-only: report whether each pair is already a Live Photo")
	rootCmd.Flags().BoolVarP(&opts.pvt, "pvt", "p", false, "Package each pair as a .pvt bundle instead of stamping in place")

	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newCleanCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
