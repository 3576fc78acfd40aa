package main

import (
	"strings"
	"testing"
)

func TestParseManualPairs(t *testing.T) {
	pairs, err := parseManualPairs([]string{"img.heic,clip.mov", " photo.jpg , movie.mp4 "})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Image != "img.heic" || pairs[0].Video != "clip.mov" {
		t.Fatalf("unexpected first pair: %+v", pairs[0])
	}
	if pairs[1].Image != "photo.jpg" || pairs[1].Video != "movie.mp4" {
		t.Fatalf("whitespace not trimmed: %+v", pairs[1])
	}
}

func TestParseManualPairsRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  string
	}{
		{"missing comma", "img.heic clip.mov", "expects IMAGE,VIDEO"},
		{"too many parts", "a.jpg,b.mov,c.mov", "expects IMAGE,VIDEO"},
		{"swapped roles", "clip.mov,img.heic", "not a JPEG or HEIC image"},
		{"unsupported image", "notes.txt,clip.mov", "not a JPEG or HEIC image"},
		{"unsupported video", "img.jpg,clip.avi", "not a QuickTime or MP4 movie"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseManualPairs([]string{tc.value}); err == nil {
				t.Fatal("expected error")
			} else if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
