package domain

import "strings"

// Segment is one translatable text run extracted from an IDML story.
// The (StoryPath, Index) pair identifies a segment within its document
// and is the merge key; it is stable across reloads of the same file.
type Segment struct {
	StoryPath      string `json:"storyPath"`
	Index          int    `json:"index"`
	OriginalText   string `json:"originalText"`
	TranslatedText string `json:"translatedText,omitempty"`
}

// Translated reports whether the segment carries a non-blank translation.
func (s Segment) Translated() bool { return strings.TrimSpace(s.TranslatedText) != "" }

// Translatable reports whether the segment has source text worth sending out.
// Whitespace-only runs are kept in the list but never translated.
func (s Segment) Translatable() bool { return strings.TrimSpace(s.OriginalText) != "" }
