package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"livepair/internal/bundle"
	"livepair/internal/container"
	"livepair/internal/livephoto"
	"livepair/internal/pairing"
)

type runOptions struct {
	manual []string
	check  bool
	pvt    bool
}

// runPairs is the root command body: partition the arguments into pairs
// and route each through check, bundle, or in-place stamping.
//
// Exit policy: unmatched files and failures on auto-matched pairs are
// warnings, not failures. Only an empty invocation or an invalid or
// failing --manual pair exits non-zero.
func runPairs(cmd *cobra.Command, cctx *commandContext, opts *runOptions, args []string) error {
	if len(args) == 0 && len(opts.manual) == 0 {
		return errors.New("no files given; pass FILES or --manual IMAGE,VIDEO")
	}

	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cctx.newLogger(cfg)
	if err != nil {
		return err
	}
	toolkit := cctx.newToolkit(cfg, logger)

	manualPairs, err := parseManualPairs(opts.manual)
	if err != nil {
		return err
	}

	matched := pairing.Match(args)
	errOut := cmd.ErrOrStderr()
	for _, path := range matched.Unsupported {
		fmt.Fprintf(errOut, "warning: %s is not a supported image or movie file\n", path)
	}
	for _, path := range matched.UnmatchedImages {
		fmt.Fprintf(errOut, "warning: no matching video for %s\n", path)
	}
	for _, path := range matched.UnmatchedVideos {
		fmt.Fprintf(errOut, "warning: no matching image for %s\n", path)
	}

	var report pairReport
	process := func(pair pairing.Pair, manual bool) error {
		result, err := processPair(cmd, cctx, toolkit, cfg.Output.BundleDir, opts, pair)
		if err != nil {
			if manual {
				return err
			}
			fmt.Fprintf(errOut, "warning: %s + %s: %v\n", pair.Image, pair.Video, err)
			return nil
		}
		report.add(result)
		return nil
	}
	for _, pair := range manualPairs {
		if err := process(pair, true); err != nil {
			return err
		}
	}
	for _, pair := range matched.Pairs {
		if err := process(pair, false); err != nil {
			return err
		}
	}

	if opts.check {
		fmt.Fprintln(cmd.OutOrStdout(), report.renderCheckTable(colorizeOutput()))
	}
	return nil
}

type pairResult struct {
	pair       pairing.Pair
	identifier string
	bundlePath string
	paired     bool
}

func processPair(cmd *cobra.Command, cctx *commandContext, toolkit *livephoto.Toolkit, bundleDir string, opts *runOptions, pair pairing.Pair) (pairResult, error) {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	result := pairResult{pair: pair}

	switch {
	case opts.check:
		id, err := toolkit.CheckPair(ctx, pair.Image, pair.Video)
		if err != nil {
			return result, err
		}
		result.identifier = id
		result.paired = id != ""
	case opts.pvt:
		id, bundlePath, err := bundle.Make(ctx, toolkit, pair.Image, pair.Video, bundle.Options{Dir: bundleDir})
		if err != nil {
			return result, err
		}
		result.identifier = id
		result.bundlePath = bundlePath
		result.paired = true
		fmt.Fprintf(out, "created bundle %s\n", bundlePath)
		if cctx.verbose() {
			fmt.Fprintf(out, "asset ID %s written to %s\n", id, bundlePath)
		}
	default:
		id, err := toolkit.Make(ctx, pair.Image, pair.Video, "")
		if err != nil {
			return result, err
		}
		result.identifier = id
		result.paired = true
		if cctx.verbose() {
			fmt.Fprintf(out, "asset ID %s written to %s and %s\n", id, pair.Image, pair.Video)
		}
	}
	return result, nil
}

// parseManualPairs validates every --manual value up front: each must be
// IMAGE,VIDEO with supported extensions in the right roles. The first
// invalid pair fails the whole invocation before anything is touched.
func parseManualPairs(values []string) ([]pairing.Pair, error) {
	pairs := make([]pairing.Pair, 0, len(values))
	for _, value := range values {
		parts := strings.Split(value, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("--manual expects IMAGE,VIDEO, got %q", value)
		}
		image := strings.TrimSpace(parts[0])
		video := strings.TrimSpace(parts[1])
		if !container.IsImage(image) {
			return nil, fmt.Errorf("--manual pair %q: %s is not a JPEG or HEIC image", value, image)
		}
		if !container.IsVideo(video) {
			return nil, fmt.Errorf("--manual pair %q: %s is not a QuickTime or MP4 movie", value, video)
		}
		pairs = append(pairs, pairing.Pair{Image: image, Video: video})
	}
	return pairs, nil
}
