package videometa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Prober enumerates the timed-metadata items of a movie container.
type Prober interface {
	TimedMetadata(ctx context.Context, path string) ([]Item, error)
}

// FFprobe inspects movie containers through an ffprobe binary.
type FFprobe struct {
	binary string
}

// NewFFprobe returns an ffprobe-backed prober. binary may be empty, in
// which case "ffprobe" is resolved from PATH.
func NewFFprobe(binary string) *FFprobe {
	return &FFprobe{binary: strings.TrimSpace(binary)}
}

// probeResult mirrors the slice of ffprobe's JSON output the toolkit needs.
type probeResult struct {
	Format probeFormat `json:"format"`
}

type probeFormat struct {
	Filename   string            `json:"filename"`
	FormatName string            `json:"format_name"`
	Tags       map[string]string `json:"tags"`
}

// TimedMetadata implements Prober. ffmpeg surfaces mdta items as container
// tags keyed by their full reverse-DNS name, so every format tag maps back
// to one metadata item in the QuickTime key space.
func (p *FFprobe) TimedMetadata(ctx context.Context, path string) ([]Item, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("ffprobe inspect: empty path")
	}

	binary := p.binary
	if binary == "" {
		binary = "ffprobe"
	}
	cmd := exec.CommandContext(ctx, binary,
		"-v", "error",
		"-hide_banner",
		"-show_format",
		"-of", "json",
		"--", path,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return parseTimedMetadata(output)
}

func parseTimedMetadata(payload []byte) ([]Item, error) {
	var result probeResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("ffprobe parse: %w", err)
	}
	items := make([]Item, 0, len(result.Format.Tags))
	for key, value := range result.Format.Tags {
		items = append(items, Item{
			Key:      key,
			KeySpace: QuickTimeKeySpace,
			Value:    value,
		})
	}
	return items, nil
}

// LookupIdentifier returns the content identifier among items, or "" when
// no item occupies the well-known (key, key space) slot.
func LookupIdentifier(items []Item) string {
	for _, item := range items {
		if item.IsContentIdentifier() {
			return item.Value
		}
	}
	return ""
}
