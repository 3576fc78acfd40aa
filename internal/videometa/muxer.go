package videometa

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"livepair/internal/container"
)

// Muxer is the capability interface over a movie multiplexer: stream-copy
// src into a fresh container of the same type at dst, replacing the timed
// metadata item list with items. The replacement is wholesale — metadata
// not in items is not carried over. On error the content at dst, if any,
// must be treated as partial.
type Muxer interface {
	RemuxPassthrough(ctx context.Context, src, dst string, items []Item) error
}

// FFmpeg remuxes through an ffmpeg binary. The multiplexer runs as a
// background process; RemuxPassthrough blocks on its completion before
// reporting, so callers never observe a partial result as success.
type FFmpeg struct {
	binary string
	logger *slog.Logger
}

// NewFFmpeg returns an ffmpeg-backed muxer. binary may be empty, in which
// case "ffmpeg" is resolved from PATH.
func NewFFmpeg(binary string, logger *slog.Logger) *FFmpeg {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1 << 30)}))
	}
	return &FFmpeg{binary: strings.TrimSpace(binary), logger: logger}
}

// RemuxPassthrough implements Muxer.
func (f *FFmpeg) RemuxPassthrough(ctx context.Context, src, dst string, items []Item) error {
	args := remuxArgs(src, dst, items)

	binary := f.binary
	if binary == "" {
		binary = "ffmpeg"
	}
	cmd := exec.CommandContext(ctx, binary, args...)
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}
	f.logger.Debug("remux started",
		slog.String("source", src),
		slog.String("destination", dst),
		slog.Int("metadata_items", len(items)),
	)

	// Block until the background mux signals completion.
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()
	if err := <-done; err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			return fmt.Errorf("ffmpeg remux: %w", err)
		}
		return fmt.Errorf("ffmpeg remux: %w: %s", err, detail)
	}
	return nil
}

// remuxArgs builds the ffmpeg invocation: copy every stream without
// re-encoding, drop the container metadata inherited from src, and write
// the replacement items. -movflags use_metadata_tags makes ffmpeg emit
// reverse-DNS keys into the mdta key space instead of remapping them.
func remuxArgs(src, dst string, items []Item) []string {
	args := []string{
		"-hide_banner",
		"-nostdin",
		"-loglevel", "error",
		"-y",
		"-i", src,
		"-map", "0",
		"-c", "copy",
		"-map_metadata", "-1",
		"-movflags", "use_metadata_tags",
	}
	for _, item := range items {
		args = append(args, "-metadata", item.Key+"="+item.Value)
	}
	if format := container.MovieFormat(dst); format != "" {
		args = append(args, "-f", format)
	}
	return append(args, dst)
}
