package videometa

import (
	"strings"
	"testing"
)

func TestContentIdentifierItem(t *testing.T) {
	item := ContentIdentifierItem("ABCD-1234")
	if item.Key != "com.apple.quicktime.content.identifier" {
		t.Fatalf("unexpected key: %s", item.Key)
	}
	if item.KeySpace != "mdta" {
		t.Fatalf("unexpected key space: %s", item.KeySpace)
	}
	if item.Value != "ABCD-1234" {
		t.Fatalf("unexpected value: %s", item.Value)
	}
	if !item.IsContentIdentifier() {
		t.Fatalf("item should match the well-known slot")
	}
}

func TestRemuxArgsStreamCopyAndReplaceMetadata(t *testing.T) {
	args := remuxArgs("/tmp/.ID_clip.mov", "/tmp/clip.mov", []Item{ContentIdentifierItem("ID")})
	joined := strings.Join(args, " ")

	for _, fragment := range []string{
		"-c copy",
		"-map_metadata -1",
		"-movflags use_metadata_tags",
		"-metadata com.apple.quicktime.content.identifier=ID",
		"-f mov",
	} {
		if !strings.Contains(joined, fragment) {
			t.Fatalf("args missing %q: %s", fragment, joined)
		}
	}
	if args[len(args)-1] != "/tmp/clip.mov" {
		t.Fatalf("destination must be the final argument: %v", args)
	}
	if strings.Contains(joined, "-c:v libx") {
		t.Fatalf("remux must never re-encode: %s", joined)
	}
}

func TestRemuxArgsPreserveContainerType(t *testing.T) {
	args := remuxArgs("in.mp4", "out.mp4", nil)
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-f mp4") {
		t.Fatalf("expected mp4 muxer selection: %s", joined)
	}
}

func TestParseTimedMetadata(t *testing.T) {
	payload := []byte(`{
		"format": {
			"filename": "clip.mov",
			"format_name": "mov,mp4,m4a,3gp,3g2,mj2",
			"tags": {
				"com.apple.quicktime.content.identifier": "4F2E1B3C-9A7D-4E11-8C2F-6B1A2D3E4F50",
				"com.apple.quicktime.make": "Apple"
			}
		}
	}`)
	items, err := parseTimedMetadata(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if got := LookupIdentifier(items); got != "4F2E1B3C-9A7D-4E11-8C2F-6B1A2D3E4F50" {
		t.Fatalf("unexpected identifier: %q", got)
	}
}

func TestParseTimedMetadataWithoutTags(t *testing.T) {
	items, err := parseTimedMetadata([]byte(`{"format": {"filename": "clip.mp4"}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %v", items)
	}
	if got := LookupIdentifier(items); got != "" {
		t.Fatalf("expected empty identifier, got %q", got)
	}
}

func TestParseTimedMetadataRejectsGarbage(t *testing.T) {
	if _, err := parseTimedMetadata([]byte("not json")); err == nil {
		t.Fatal("expected parse error")
	}
}
