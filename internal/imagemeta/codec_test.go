package imagemeta

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// memoryCodec keeps stores keyed by path, mimicking a container library.
type memoryCodec struct {
	stores    map[string]*Store
	decodeErr error
	encodeErr error
	encoded   int
}

func newMemoryCodec() *memoryCodec {
	return &memoryCodec{stores: make(map[string]*Store)}
}

func (m *memoryCodec) Decode(_ context.Context, path string) (*Store, error) {
	if m.decodeErr != nil {
		return nil, m.decodeErr
	}
	store, ok := m.stores[path]
	if !ok {
		return nil, fmt.Errorf("no container at %s", path)
	}
	return store, nil
}

func (m *memoryCodec) Encode(_ context.Context, path string, store *Store) error {
	if m.encodeErr != nil {
		return m.encodeErr
	}
	m.stores[path] = store
	m.encoded++
	return nil
}

func TestStampPreservesFieldsAndSetsIdentifier(t *testing.T) {
	codec := newMemoryCodec()
	original := NewStore()
	original.Fields["Description"] = "A beach"
	original.Fields[tagsListTag] = []any{"beach", "sunset"}
	codec.stores["photo.jpg"] = original

	if err := Stamp(context.Background(), codec, "photo.jpg", "AAAA-1111"); err != nil {
		t.Fatalf("stamp: %v", err)
	}

	stamped := codec.stores["photo.jpg"]
	if got := stamped.Identifier(); got != "AAAA-1111" {
		t.Fatalf("identifier = %q, want AAAA-1111", got)
	}
	if stamped.Fields["Description"] != "A beach" {
		t.Fatalf("description not preserved: %v", stamped.Fields["Description"])
	}
	want := []string{"Beach", "Sunset"}
	if !reflect.DeepEqual(stamped.NormalizedSubject(), want) {
		t.Fatalf("subject = %v, want %v", stamped.NormalizedSubject(), want)
	}
	// The editable copy must not alias the decoded store.
	if original.Identifier() != "" {
		t.Fatalf("stamping mutated the decoded store in place")
	}
}

func TestStampOverwritesExistingIdentifier(t *testing.T) {
	codec := newMemoryCodec()
	store := NewStore()
	store.SetIdentifier("OLD")
	codec.stores["photo.heic"] = store

	if err := Stamp(context.Background(), codec, "photo.heic", "NEW"); err != nil {
		t.Fatalf("stamp: %v", err)
	}
	if got := codec.stores["photo.heic"].Identifier(); got != "NEW" {
		t.Fatalf("identifier = %q, want NEW", got)
	}
}

func TestStampPropagatesEncodeFailureWithoutRetry(t *testing.T) {
	codec := newMemoryCodec()
	codec.stores["photo.jpg"] = NewStore()
	codec.encodeErr = errors.New("destination unavailable")

	err := Stamp(context.Background(), codec, "photo.jpg", "ID")
	if err == nil || !errors.Is(err, codec.encodeErr) {
		t.Fatalf("expected encode failure to propagate, got %v", err)
	}
	if codec.encoded != 0 {
		t.Fatalf("no container should have been produced")
	}
}

func TestIdentifierAbsent(t *testing.T) {
	codec := newMemoryCodec()
	codec.stores["photo.jpg"] = NewStore()

	id, err := Identifier(context.Background(), codec, "photo.jpg")
	if err != nil {
		t.Fatalf("identifier: %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty identifier, got %q", id)
	}
}
