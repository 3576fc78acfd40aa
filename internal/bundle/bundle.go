// Package bundle packages a stamped image/video pair into a portable .pvt
// directory that photo managers import as a single Live Photo.
package bundle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"livepair/internal/container"
	"livepair/internal/fileutil"
	"livepair/internal/livephoto"
)

// Extension is the bundle directory suffix.
const Extension = ".pvt"

const manifestName = "metadata.plist"

// manifestContent is the fixed version-1 package manifest. Nothing else
// ever goes in it.
const manifestContent = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>PackageMetadataVersion</key>
	<string>1</string>
</dict>
</plist>
`

// Options control bundle placement and stamping.
type Options struct {
	// Dir is the directory the bundle is created in. Empty means the
	// image's parent directory.
	Dir string
	// Identifier forces a re-stamp with this identifier even when the
	// copies already form a valid pair.
	Identifier string
}

// Make copies the pair into a <imageStem>.pvt directory, ensures the
// copies are a stamped pair, writes the manifest, and returns the
// identifier used plus the bundle path. Creation is idempotent: an
// existing bundle directory is reused and files of the same name are
// overwritten.
func Make(ctx context.Context, toolkit *livephoto.Toolkit, imagePath, videoPath string, opts Options) (string, string, error) {
	targetDir := opts.Dir
	if targetDir == "" {
		targetDir = filepath.Dir(imagePath)
	}
	bundlePath := filepath.Join(targetDir, container.Stem(imagePath)+Extension)
	if err := os.MkdirAll(bundlePath, 0o755); err != nil {
		return "", "", fmt.Errorf("create bundle directory: %w", err)
	}

	bundledImage := filepath.Join(bundlePath, filepath.Base(imagePath))
	bundledVideo := filepath.Join(bundlePath, filepath.Base(videoPath))
	if err := fileutil.CopyFile(imagePath, bundledImage); err != nil {
		return "", "", fmt.Errorf("copy image into bundle: %w", err)
	}
	// The movie is usually the large half of the pair; verify the copy.
	if err := fileutil.CopyFileVerified(videoPath, bundledVideo); err != nil {
		return "", "", fmt.Errorf("copy video into bundle: %w", err)
	}

	id, err := toolkit.CheckPair(ctx, bundledImage, bundledVideo)
	if err != nil {
		return "", "", err
	}
	if id == "" || opts.Identifier != "" {
		id, err = toolkit.Make(ctx, bundledImage, bundledVideo, opts.Identifier)
		if err != nil {
			return "", "", err
		}
	}

	manifest := filepath.Join(bundlePath, manifestName)
	if err := os.WriteFile(manifest, []byte(manifestContent), 0o644); err != nil {
		return "", "", fmt.Errorf("write bundle manifest: %w", err)
	}
	return id, bundlePath, nil
}
