// Package livephoto pairs a still image with a companion movie by stamping
// a shared content identifier into both containers.
//
// The Toolkit is the public entry point. It validates inputs, reads and
// writes identifiers through the capability interfaces in imagemeta and
// videometa, and drives the safe replace protocol for the movie side.
// Operations on distinct paths are independent; two Toolkit calls against
// the same path must not overlap (the replace protocol detects that and
// fails fast).
package livephoto

import (
	"context"
	"io"
	"log/slog"
	"os"

	"livepair/internal/container"
	"livepair/internal/identifier"
	"livepair/internal/imagemeta"
	"livepair/internal/replace"
	"livepair/internal/videometa"
)

// Toolkit bundles the container drivers behind one stamping API.
type Toolkit struct {
	image  imagemeta.Codec
	muxer  videometa.Muxer
	prober videometa.Prober
	logger *slog.Logger
}

// New builds a Toolkit from the given drivers. A nil logger disables
// logging.
func New(image imagemeta.Codec, muxer videometa.Muxer, prober videometa.Prober, logger *slog.Logger) *Toolkit {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1 << 30)}))
	}
	return &Toolkit{image: image, muxer: muxer, prober: prober, logger: logger}
}

// Lookup returns the content identifier carried by the image or movie file
// at path, or "" when the file has none.
func (t *Toolkit) Lookup(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", Wrap(ErrNotFound, "lookup", path, nil)
		}
		return "", Wrap(ErrIO, "lookup", path, err)
	}
	switch container.Classify(path) {
	case container.KindImage:
		id, err := imagemeta.Identifier(ctx, t.image, path)
		if err != nil {
			return "", Wrap(ErrIO, "lookup image", path, err)
		}
		return id, nil
	case container.KindVideo:
		items, err := t.prober.TimedMetadata(ctx, path)
		if err != nil {
			return "", Wrap(ErrIO, "lookup video", path, err)
		}
		return videometa.LookupIdentifier(items), nil
	default:
		return "", Wrap(ErrUnsupportedFormat, "lookup", path, nil)
	}
}

// CheckPair reports the shared content identifier when both files carry
// the same one, or "" when either has none or they differ. Role mismatch
// (image path without an image extension, movie path without a movie
// extension) is a format error regardless of argument order.
func (t *Toolkit) CheckPair(ctx context.Context, imagePath, videoPath string) (string, error) {
	if err := t.validatePair(imagePath, videoPath); err != nil {
		return "", err
	}
	imageID, err := t.Lookup(ctx, imagePath)
	if err != nil {
		return "", err
	}
	if imageID == "" {
		return "", nil
	}
	videoID, err := t.Lookup(ctx, videoPath)
	if err != nil {
		return "", err
	}
	if videoID == "" || videoID != imageID {
		return "", nil
	}
	return imageID, nil
}

// Make stamps the pair with a shared content identifier and returns it.
// When id is "" a fresh one is generated, so repeated calls without an
// explicit identifier re-stamp with new values. Both files are mutated in
// place. If the movie stamping fails after the image stamping succeeded,
// the image keeps the new identifier while the movie is restored — callers
// needing all-or-nothing semantics must snapshot both files themselves.
func (t *Toolkit) Make(ctx context.Context, imagePath, videoPath, id string) (string, error) {
	if err := t.validatePair(imagePath, videoPath); err != nil {
		return "", err
	}
	if id == "" {
		id = identifier.New()
	}

	if err := imagemeta.Stamp(ctx, t.image, imagePath, id); err != nil {
		return "", Wrap(ErrCodec, "stamp image", imagePath, err)
	}
	t.logger.Info("image stamped",
		slog.String("path", imagePath),
		slog.String("identifier", id),
	)

	item := videometa.ContentIdentifierItem(id)
	err := replace.Replace(videoPath, id, func(src, dst string) error {
		return t.muxer.RemuxPassthrough(ctx, src, dst, []videometa.Item{item})
	})
	if err != nil {
		return "", Wrap(ErrRemux, "stamp video", videoPath, err)
	}
	t.logger.Info("video stamped",
		slog.String("path", videoPath),
		slog.String("identifier", id),
	)
	return id, nil
}

// validatePair applies the precondition checks in contract order: image
// exists, video exists, image extension supported, video extension
// supported.
func (t *Toolkit) validatePair(imagePath, videoPath string) error {
	if _, err := os.Stat(imagePath); os.IsNotExist(err) {
		return Wrap(ErrNotFound, "image", imagePath, nil)
	}
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return Wrap(ErrNotFound, "video", videoPath, nil)
	}
	if !container.IsImage(imagePath) {
		return Wrap(ErrUnsupportedFormat, "image", imagePath+" is not a JPEG or HEIC image", nil)
	}
	if !container.IsVideo(videoPath) {
		return Wrap(ErrUnsupportedFormat, "video", videoPath+" is not a QuickTime or MP4 movie", nil)
	}
	return nil
}
