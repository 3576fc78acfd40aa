package imagemeta

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AssetIdentifierKey is the key of the content identifier inside the
// maker-specific dictionary. exiftool reports it as MakerNotes:ContentIdentifier.
const AssetIdentifierKey = "17"

// Tag names used when the store is re-serialized.
const (
	subjectTag  = "Subject"
	tagsListTag = "TagsList"
)

// Store is the decoded metadata graph of one image container: every
// top-level tag plus the maker-specific dictionary.
type Store struct {
	Fields map[string]any
	Maker  map[string]string
}

// NewStore returns an empty metadata store.
func NewStore() *Store {
	return &Store{
		Fields: make(map[string]any),
		Maker:  make(map[string]string),
	}
}

// Clone returns an editable copy of the store. Field values are shared;
// stamping only replaces whole entries, never mutates them in place.
func (s *Store) Clone() *Store {
	clone := &Store{
		Fields: make(map[string]any, len(s.Fields)),
		Maker:  make(map[string]string, len(s.Maker)),
	}
	for k, v := range s.Fields {
		clone.Fields[k] = v
	}
	for k, v := range s.Maker {
		clone.Maker[k] = v
	}
	return clone
}

// SetIdentifier writes the content identifier into the maker dictionary,
// creating the dictionary when the container had none.
func (s *Store) SetIdentifier(id string) {
	if s.Maker == nil {
		s.Maker = make(map[string]string, 1)
	}
	s.Maker[AssetIdentifierKey] = id
}

// Identifier returns the content identifier carried by the maker
// dictionary, or "" when absent.
func (s *Store) Identifier() string {
	if s.Maker == nil {
		return ""
	}
	return s.Maker[AssetIdentifierKey]
}

var titleCaser = cases.Title(language.Und)

// Normalize applies the value normalization a full re-serialization of the
// container performs: keyword lists migrate from TagsList to Subject and
// every entry is rewritten in title case. This is a documented side effect
// of stamping, not something callers opt into.
func (s *Store) Normalize() {
	keywords := s.keywordList()
	if keywords == nil {
		return
	}
	normalized := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		normalized = append(normalized, titleCaser.String(keyword))
	}
	delete(s.Fields, tagsListTag)
	s.Fields[subjectTag] = normalized
}

// NormalizedSubject returns the title-cased keyword list produced by
// Normalize, or nil when the store carries none.
func (s *Store) NormalizedSubject() []string {
	list, ok := s.Fields[subjectTag].([]string)
	if !ok {
		return nil
	}
	return list
}

// keywordList extracts the keyword list from whichever tag holds it.
// exiftool decodes single-entry lists as a bare string.
func (s *Store) keywordList() []string {
	for _, tag := range []string{tagsListTag, subjectTag} {
		switch value := s.Fields[tag].(type) {
		case nil:
			continue
		case string:
			return []string{value}
		case []string:
			return value
		case []any:
			list := make([]string, 0, len(value))
			for _, entry := range value {
				if text, ok := entry.(string); ok {
					list = append(list, text)
				}
			}
			return list
		}
	}
	return nil
}
