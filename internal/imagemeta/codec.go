package imagemeta

import (
	"context"
	"fmt"
)

// Codec is the capability interface over an image container library:
// decode the full metadata store of the first frame, and re-serialize the
// container in place with a replacement store.
type Codec interface {
	Decode(ctx context.Context, path string) (*Store, error)
	Encode(ctx context.Context, path string, store *Store) error
}

// Stamp injects the content identifier into the image at path, preserving
// the rest of the metadata graph modulo the normalization Normalize
// documents. The container type never changes: JPEG stays JPEG, HEIC stays
// HEIC. The file is rewritten in place.
func Stamp(ctx context.Context, codec Codec, path, id string) error {
	store, err := codec.Decode(ctx, path)
	if err != nil {
		return fmt.Errorf("decode image metadata: %w", err)
	}
	edited := store.Clone()
	edited.Normalize()
	edited.SetIdentifier(id)
	if err := codec.Encode(ctx, path, edited); err != nil {
		return fmt.Errorf("encode image container: %w", err)
	}
	return nil
}

// Identifier reads the content identifier from the image at path, or ""
// when the maker dictionary is absent or carries no identifier.
func Identifier(ctx context.Context, codec Codec, path string) (string, error) {
	store, err := codec.Decode(ctx, path)
	if err != nil {
		return "", fmt.Errorf("decode image metadata: %w", err)
	}
	return store.Identifier(), nil
}
