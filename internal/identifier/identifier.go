// Package identifier generates and validates Live Photo content identifiers.
//
// A content identifier is an uppercase canonical UUID string. Photos treats
// it as the sole grouping key for an image/video pair, so the exact textual
// rendering (case, hyphenation) is a cross-format contract shared by the
// image maker dictionary and the QuickTime metadata item.
package identifier

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a freshly generated content identifier: a random 128-bit UUID
// rendered as an uppercase 8-4-4-4-12 string.
func New() string {
	return strings.ToUpper(uuid.NewString())
}

// IsValid reports whether value parses as a canonical hyphenated UUID.
// Supplied identifiers are stamped verbatim and are not required to pass
// this check; it exists for the temp-file sweep, which must only ever touch
// files whose names embed an identifier this package produced.
func IsValid(value string) bool {
	if len(value) != 36 {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
