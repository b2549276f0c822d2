package stt

import (
	"context"
	"strings"

	"github.com/samber/lo"
)

// Segment is a timed span of recognized speech emitted by a recognizer.
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcriber converts an audio file into a flat transcript string.
// Implementations are safe for concurrent use; they hold no per-call
// mutable state.
type Transcriber interface {
	Transcript(ctx context.Context, inputFilePath string) (string, error)
}

// JoinSegments flattens recognizer segments into a single transcript,
// space-joined in the order the engine returned them. Segment texts are
// not trimmed and empty segments are not filtered; the joined string
// must reproduce the engine output exactly.
func JoinSegments(segments []Segment) string {
	texts := lo.Map(segments, func(s Segment, _ int) string {
		return s.Text
	})
	return strings.Join(texts, " ")
}
