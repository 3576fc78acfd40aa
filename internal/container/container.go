// Package container classifies file paths into the image and movie
// container families the toolkit can stamp.
//
// Classification is extension-based and case-insensitive. Content sniffing
// belongs to the external codec binaries; by the time exiftool or ffmpeg
// touches a file, a wrong extension surfaces as a codec failure.
package container

import (
	"path/filepath"
	"strings"
)

// Kind identifies the container family of a path.
type Kind int

const (
	// KindUnknown marks paths outside both supported families.
	KindUnknown Kind = iota
	// KindImage marks still-image containers (JPEG, HEIC/HEIF).
	KindImage
	// KindVideo marks movie containers (QuickTime, MP4).
	KindVideo
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".heic": {},
	".heif": {},
}

// videoFormats maps supported movie extensions to the ffmpeg muxer that
// preserves the container type on remux.
var videoFormats = map[string]string{
	".mov": "mov",
	".mp4": "mp4",
}

// Classify returns the container family for path.
func Classify(path string) Kind {
	ext := normalizedExt(path)
	if _, ok := imageExtensions[ext]; ok {
		return KindImage
	}
	if _, ok := videoFormats[ext]; ok {
		return KindVideo
	}
	return KindUnknown
}

// IsImage reports whether path carries a supported still-image extension.
func IsImage(path string) bool {
	return Classify(path) == KindImage
}

// IsVideo reports whether path carries a supported movie extension.
func IsVideo(path string) bool {
	return Classify(path) == KindVideo
}

// MovieFormat returns the ffmpeg muxer name matching the path's movie
// extension, or "" when the path is not a supported movie container.
func MovieFormat(path string) string {
	return videoFormats[normalizedExt(path)]
}

// Stem returns the file name without its extension. Pairing matches stems
// case-sensitively, so no folding happens here.
func Stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func normalizedExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}
