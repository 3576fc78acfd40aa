// Package videometa reads and rewrites timed metadata in movie containers
// (QuickTime, MP4).
//
// Movie containers cannot be edited in place, so the write path is a
// passthrough remux: every stream is copied bit-for-bit into a fresh
// container of the same type while the metadata item list is replaced
// wholesale. The Muxer and Prober interfaces abstract the multiplexer;
// the production implementations drive ffmpeg and ffprobe the same way
// the rest of the toolkit drives exiftool.
package videometa
