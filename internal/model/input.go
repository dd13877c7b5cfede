package model

import "time"

// Origin is where a piece of raw text came from.
type Origin string

const (
	OriginVoice Origin = "voice" // speech-to-text transcript
	OriginChat  Origin = "chat"  // forwarded or shared chat message
)

// Valid reports whether o is a known origin.
func (o Origin) Valid() bool {
	return o == OriginVoice || o == OriginChat
}

// RawInput is the unstructured text handed to the extractor.
type RawInput struct {
	Text       string
	Origin     Origin
	ReceivedAt time.Time
}

// Span is a contiguous slice of RawInput.Text, addressed by byte offsets.
type Span struct {
	Text   string // RawInput.Text[Start:End]
	Start  int
	End    int
	Listed bool // introduced by a numbered, bulleted or checkbox marker
}

// Overlaps reports whether the offset ranges of s and o intersect.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}
