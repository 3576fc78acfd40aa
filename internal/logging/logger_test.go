package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleOutputIncludesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	WithComponent(logger, "stamper").Info("image stamped",
		slog.String("path", "photo.jpeg"),
		slog.String("identifier", "ABCD"),
	)

	line := buf.String()
	for _, fragment := range []string{"INF", "[stamper]", "image stamped", "path=photo.jpeg", "identifier=ABCD"} {
		if !strings.Contains(line, fragment) {
			t.Fatalf("console line missing %q: %s", fragment, line)
		}
	}
}

func TestConsoleQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("note", slog.String("detail", "two words"))
	if !strings.Contains(buf.String(), `detail="two words"`) {
		t.Fatalf("value not quoted: %s", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept")
	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Fatalf("level filtering broken: %s", out)
	}
}

func TestJSONOutputShape(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("video stamped", slog.String("path", "clip.mov"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid json: %v: %s", err, buf.String())
	}
	if record["msg"] != "video stamped" || record["level"] != "info" {
		t.Fatalf("unexpected record: %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("missing ts: %v", record)
	}
}

func TestNewNopDiscards(t *testing.T) {
	// Must not panic and must report disabled at every level.
	logger := NewNop()
	logger.Error("discarded")
	if logger.Enabled(nil, slog.LevelError) {
		t.Fatal("nop logger should be disabled")
	}
}
