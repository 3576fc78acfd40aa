// Package pairing matches loose files into image/video candidate pairs by
// filename stem. This is CLI glue: the stamping core takes explicit pairs
// and never guesses.
package pairing

import (
	"livepair/internal/container"
)

// Pair is an image/video candidate sharing a filename stem.
type Pair struct {
	Image string
	Video string
}

// Result partitions an argument list into pairs and leftovers. Unsupported
// paths and unmatched singles are reported, never errors.
type Result struct {
	Pairs           []Pair
	UnmatchedImages []string
	UnmatchedVideos []string
	Unsupported     []string
}

// Match partitions paths by extension and joins images to videos whose
// stems are equal, case-sensitively. When several files of the same kind
// share a stem, the first one wins and the rest are reported unmatched.
func Match(paths []string) Result {
	var result Result
	images := make(map[string]string)
	videos := make(map[string]string)
	var imageOrder, videoOrder []string

	for _, path := range paths {
		switch container.Classify(path) {
		case container.KindImage:
			stem := container.Stem(path)
			if _, dup := images[stem]; dup {
				result.UnmatchedImages = append(result.UnmatchedImages, path)
				continue
			}
			images[stem] = path
			imageOrder = append(imageOrder, stem)
		case container.KindVideo:
			stem := container.Stem(path)
			if _, dup := videos[stem]; dup {
				result.UnmatchedVideos = append(result.UnmatchedVideos, path)
				continue
			}
			videos[stem] = path
			videoOrder = append(videoOrder, stem)
		default:
			result.Unsupported = append(result.Unsupported, path)
		}
	}

	for _, stem := range imageOrder {
		video, ok := videos[stem]
		if !ok {
			result.UnmatchedImages = append(result.UnmatchedImages, images[stem])
			continue
		}
		result.Pairs = append(result.Pairs, Pair{Image: images[stem], Video: video})
		delete(videos, stem)
	}
	for _, stem := range videoOrder {
		if video, ok := videos[stem]; ok {
			result.UnmatchedVideos = append(result.UnmatchedVideos, video)
		}
	}
	return result
}
