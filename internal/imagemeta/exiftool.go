package imagemeta

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	exiftool "github.com/barasher/go-exiftool"
)

// contentIdentifierTag is exiftool's name for maker dictionary key "17".
const contentIdentifierTag = "ContentIdentifier"

// ExifTool is the production Codec. Each call spawns a short-lived exiftool
// process; the toolkit is single-shot per pair, so a stay-open pool buys
// nothing. Encoder diagnostics on the child's stderr are known to be noisy
// for HEIC and are never surfaced as failures: a write only fails when
// exiftool reports one.
type ExifTool struct {
	binary string
	logger *slog.Logger
}

// NewExifTool returns an exiftool-backed codec. binary may be empty, in
// which case "exiftool" is resolved from PATH.
func NewExifTool(binary string, logger *slog.Logger) *ExifTool {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1 << 30)}))
	}
	return &ExifTool{binary: strings.TrimSpace(binary), logger: logger}
}

// Decode reads the full metadata store of the image at path.
func (c *ExifTool) Decode(ctx context.Context, path string) (*Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	et, err := c.open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = et.Close()
	}()

	metas := et.ExtractMetadata(path)
	if len(metas) == 0 {
		return nil, fmt.Errorf("open image container %s: no metadata returned", path)
	}
	meta := metas[0]
	if meta.Err != nil {
		return nil, fmt.Errorf("open image container %s: %w", path, meta.Err)
	}

	store := NewStore()
	for key, value := range meta.Fields {
		if key == contentIdentifierTag {
			store.Maker[AssetIdentifierKey] = fmt.Sprint(value)
			continue
		}
		store.Fields[key] = value
	}
	return store, nil
}

// Encode re-serializes the container at path with the edited store.
// exiftool rewrites the whole file and carries the untouched tag groups
// over itself, so only the fields stamping mutates are sent: the maker
// identifier and, when present, the normalized keyword list.
func (c *ExifTool) Encode(ctx context.Context, path string, store *Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	et, err := c.open()
	if err != nil {
		return err
	}
	defer func() {
		_ = et.Close()
	}()

	meta := exiftool.EmptyFileMetadata()
	meta.File = path
	if id := store.Identifier(); id != "" {
		meta.SetString(contentIdentifierTag, id)
	}
	if subject := store.NormalizedSubject(); len(subject) > 0 {
		meta.SetStrings(subjectTag, subject)
	}

	metas := []exiftool.FileMetadata{meta}
	et.WriteMetadata(metas)
	if metas[0].Err != nil {
		return fmt.Errorf("write image container %s: %w", path, metas[0].Err)
	}
	c.logger.Debug("image container rewritten",
		slog.String("path", path),
		slog.String("identifier", store.Identifier()),
	)
	return nil
}

func (c *ExifTool) open() (*exiftool.Exiftool, error) {
	opts := make([]func(*exiftool.Exiftool) error, 0, 1)
	if c.binary != "" {
		opts = append(opts, exiftool.SetExiftoolBinaryPath(c.binary))
	}
	et, err := exiftool.NewExiftool(opts...)
	if err != nil {
		return nil, fmt.Errorf("start exiftool: %w", err)
	}
	return et, nil
}
