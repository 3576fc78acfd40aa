package pairing

import (
	"reflect"
	"testing"
)

func TestMatchPairsByStem(t *testing.T) {
	result := Match([]string{
		"trip/IMG_0001.jpeg",
		"trip/IMG_0001.mov",
		"trip/IMG_0002.heic",
		"trip/IMG_0003.mov",
		"trip/notes.txt",
	})

	wantPairs := []Pair{{Image: "trip/IMG_0001.jpeg", Video: "trip/IMG_0001.mov"}}
	if !reflect.DeepEqual(result.Pairs, wantPairs) {
		t.Fatalf("pairs = %v, want %v", result.Pairs, wantPairs)
	}
	if !reflect.DeepEqual(result.UnmatchedImages, []string{"trip/IMG_0002.heic"}) {
		t.Fatalf("unmatched images = %v", result.UnmatchedImages)
	}
	if !reflect.DeepEqual(result.UnmatchedVideos, []string{"trip/IMG_0003.mov"}) {
		t.Fatalf("unmatched videos = %v", result.UnmatchedVideos)
	}
	if !reflect.DeepEqual(result.Unsupported, []string{"trip/notes.txt"}) {
		t.Fatalf("unsupported = %v", result.Unsupported)
	}
}

func TestMatchStemComparisonIsCaseSensitive(t *testing.T) {
	result := Match([]string{"photo.jpeg", "PHOTO.mov"})
	if len(result.Pairs) != 0 {
		t.Fatalf("differently cased stems must not pair: %v", result.Pairs)
	}
	if len(result.UnmatchedImages) != 1 || len(result.UnmatchedVideos) != 1 {
		t.Fatalf("both files should be unmatched: %+v", result)
	}
}

func TestMatchDuplicateStems(t *testing.T) {
	result := Match([]string{"a/photo.jpeg", "b/photo.jpg", "a/photo.mov"})
	if len(result.Pairs) != 1 || result.Pairs[0].Image != "a/photo.jpeg" {
		t.Fatalf("first image should win: %v", result.Pairs)
	}
	if !reflect.DeepEqual(result.UnmatchedImages, []string{"b/photo.jpg"}) {
		t.Fatalf("duplicate image should be unmatched: %v", result.UnmatchedImages)
	}
}

func TestMatchEmptyInput(t *testing.T) {
	result := Match(nil)
	if len(result.Pairs)+len(result.UnmatchedImages)+len(result.UnmatchedVideos)+len(result.Unsupported) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}
