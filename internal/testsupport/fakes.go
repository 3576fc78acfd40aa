// Package testsupport provides fake container drivers for tests.
//
// The fakes agree on a tiny JSON "container" file format holding a payload
// plus metadata, so orchestrator, replace, and bundle tests can run
// end-to-end against real files in temp directories without the exiftool
// and ffmpeg binaries. Renames and copies of fixture files behave exactly
// like the real thing because the metadata travels inside the file.
package testsupport

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"livepair/internal/imagemeta"
	"livepair/internal/videometa"
)

type imageContainer struct {
	Payload string            `json:"payload"`
	Fields  map[string]any    `json:"fields,omitempty"`
	Maker   map[string]string `json:"maker,omitempty"`
}

type videoContainer struct {
	Payload string           `json:"payload"`
	Items   []videometa.Item `json:"items,omitempty"`
}

// WriteImageFixture creates a fake image container at path.
func WriteImageFixture(t testing.TB, path, payload string, fields map[string]any, maker map[string]string) {
	t.Helper()
	writeJSON(t, path, imageContainer{Payload: payload, Fields: fields, Maker: maker})
}

// WriteVideoFixture creates a fake movie container at path.
func WriteVideoFixture(t testing.TB, path, payload string, items ...videometa.Item) {
	t.Helper()
	writeJSON(t, path, videoContainer{Payload: payload, Items: items})
}

func writeJSON(t testing.TB, path string, value any) {
	t.Helper()
	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

// ImageCodec implements imagemeta.Codec over fake image containers.
type ImageCodec struct {
	DecodeErr error
	EncodeErr error
}

func (c *ImageCodec) Decode(_ context.Context, path string) (*imagemeta.Store, error) {
	if c.DecodeErr != nil {
		return nil, c.DecodeErr
	}
	var file imageContainer
	if err := readJSON(path, &file); err != nil {
		return nil, err
	}
	store := imagemeta.NewStore()
	for k, v := range file.Fields {
		store.Fields[k] = v
	}
	for k, v := range file.Maker {
		store.Maker[k] = v
	}
	return store, nil
}

func (c *ImageCodec) Encode(_ context.Context, path string, store *imagemeta.Store) error {
	if c.EncodeErr != nil {
		return c.EncodeErr
	}
	var file imageContainer
	if err := readJSON(path, &file); err != nil {
		return err
	}
	file.Fields = store.Fields
	file.Maker = store.Maker
	data, err := json.Marshal(file)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Muxer implements videometa.Muxer over fake movie containers. The item
// list replaces whatever the source carried, matching the passthrough
// export semantics.
type Muxer struct {
	// Err forces the remux to fail after optionally writing partial
	// output, exercising the replace protocol's rollback.
	Err          error
	LeavePartial bool
	Calls        int
}

func (m *Muxer) RemuxPassthrough(_ context.Context, src, dst string, items []videometa.Item) error {
	m.Calls++
	if m.Err != nil {
		if m.LeavePartial {
			if err := os.WriteFile(dst, []byte("partial"), 0o644); err != nil {
				return err
			}
		}
		return m.Err
	}
	var file videoContainer
	if err := readJSON(src, &file); err != nil {
		return err
	}
	file.Items = append([]videometa.Item(nil), items...)
	data, err := json.Marshal(file)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

// Prober implements videometa.Prober over fake movie containers.
type Prober struct {
	Err error
}

func (p *Prober) TimedMetadata(_ context.Context, path string) ([]videometa.Item, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	var file videoContainer
	if err := readJSON(path, &file); err != nil {
		return nil, err
	}
	return file.Items, nil
}

func readJSON(path string, value any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, value); err != nil {
		return fmt.Errorf("parse fake container %s: %w", path, err)
	}
	return nil
}
