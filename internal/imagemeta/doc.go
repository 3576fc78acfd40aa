// Package imagemeta reads and rewrites the metadata graph of still-image
// containers (JPEG, HEIC/HEIF).
//
// It models the decoded graph as a Store: the flat tag map plus the
// distinguished maker-specific dictionary where the Live Photo content
// identifier lives under key "17". The Codec interface abstracts the
// container library; the ExifTool implementation drives an exiftool binary
// through github.com/barasher/go-exiftool. Tests swap in fakes so stamping
// logic is exercised without the binary.
package imagemeta
