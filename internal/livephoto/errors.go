package livephoto

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers for the toolkit's failure taxonomy. Every public
// operation fails per call with one of these; nothing here retries or
// aborts a batch on its own.
var (
	// ErrNotFound marks a required path that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnsupportedFormat marks an extension outside both supported
	// container families, or a path in the wrong role.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrIO marks a container the image library could not open.
	ErrIO = errors.New("io error")
	// ErrCodec marks an image container the library could not produce.
	ErrCodec = errors.New("codec error")
	// ErrRemux marks a failure reported by the movie multiplexer. The
	// safe replace protocol has already restored the original by the
	// time this surfaces.
	ErrRemux = errors.New("remux error")
)

// Wrap tags err with the given marker and operation context so callers can
// classify failures with errors.Is. The marker should be one of the
// exported sentinels above.
func Wrap(marker error, operation, detail string, err error) error {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if detail = strings.TrimSpace(detail); detail != "" {
		parts = append(parts, detail)
	}
	message := strings.Join(parts, ": ")
	if message == "" {
		message = "live photo failure"
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, message, err)
	}
	return fmt.Errorf("%w: %s", marker, message)
}
