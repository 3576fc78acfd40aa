package container

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		want Kind
	}{
		{"photo.jpg", KindImage},
		{"photo.JPEG", KindImage},
		{"photo.heic", KindImage},
		{"photo.HEIF", KindImage},
		{"clip.mov", KindVideo},
		{"clip.MP4", KindVideo},
		{"notes.txt", KindUnknown},
		{"archive.tar.gz", KindUnknown},
		{"noextension", KindUnknown},
		{"/nested/dir/photo.jpeg", KindImage},
	}
	for _, tc := range cases {
		if got := Classify(tc.path); got != tc.want {
			t.Fatalf("Classify(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestMovieFormat(t *testing.T) {
	if got := MovieFormat("clip.MOV"); got != "mov" {
		t.Fatalf("expected mov muxer, got %q", got)
	}
	if got := MovieFormat("clip.mp4"); got != "mp4" {
		t.Fatalf("expected mp4 muxer, got %q", got)
	}
	if got := MovieFormat("photo.jpg"); got != "" {
		t.Fatalf("expected empty muxer for image, got %q", got)
	}
}

func TestStem(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/a/b/photo.jpeg", "photo"},
		{"Photo.MOV", "Photo"},
		{"archive.tar.gz", "archive.tar"},
		{"noextension", "noextension"},
	}
	for _, tc := range cases {
		if got := Stem(tc.path); got != tc.want {
			t.Fatalf("Stem(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
