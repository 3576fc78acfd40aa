package videometa

// Well-known key and key space of the Live Photo content identifier in
// QuickTime timed metadata.
const (
	ContentIdentifierKey = "com.apple.quicktime.content.identifier"
	QuickTimeKeySpace    = "mdta"

	utf8DataType = "com.apple.metadata.datatype.UTF-8"
)

// Item is one timed-metadata entry of a movie container, keyed by its
// (key, key space) pair.
type Item struct {
	Key      string
	KeySpace string
	Value    string
	DataType string
}

// ContentIdentifierItem builds the metadata item carrying the content
// identifier. Pure construction, no failure modes.
func ContentIdentifierItem(id string) Item {
	return Item{
		Key:      ContentIdentifierKey,
		KeySpace: QuickTimeKeySpace,
		Value:    id,
		DataType: utf8DataType,
	}
}

// IsContentIdentifier reports whether the item's (key, key space) pair
// matches the well-known content identifier slot exactly.
func (i Item) IsContentIdentifier() bool {
	return i.Key == ContentIdentifierKey && i.KeySpace == QuickTimeKeySpace
}
