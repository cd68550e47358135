// Package core defines the normalized transcript representation — one
// speaker-attributed utterance per diarized turn — that the transcriber and
// the file reader produce and all renderers consume.
package core

import "time"

// Transcript is an ordered sequence of diarized utterances from a single
// recording.
type Transcript struct {
	Source     string      `json:"source"`               // base name of the originating audio or transcript file
	CreatedAt  time.Time   `json:"created_at,omitempty"` // when the transcript was produced
	Utterances []Utterance `json:"utterances"`
}

// Utterance is a single speaker turn.
type Utterance struct {
	Speaker string `json:"speaker"` // short label: "A", "B", ...
	Text    string `json:"text"`
	StartMs int64  `json:"start_ms,omitempty"` // offset into the audio; zero when read from a transcript file
	EndMs   int64  `json:"end_ms,omitempty"`
}

// Speakers returns the distinct speaker labels in order of first appearance.
// This ordering is the only invariant renderers rely on for color assignment,
// so the same transcript always yields the same speaker→color mapping.
func (t *Transcript) Speakers() []string {
	seen := make(map[string]bool)
	var labels []string
	for _, u := range t.Utterances {
		if !seen[u.Speaker] {
			seen[u.Speaker] = true
			labels = append(labels, u.Speaker)
		}
	}
	return labels
}

// SpeakerIndex maps each speaker label to its first-appearance position,
// the index renderers use to pick a palette color.
func (t *Transcript) SpeakerIndex() map[string]int {
	idx := make(map[string]int)
	for _, label := range t.Speakers() {
		idx[label] = len(idx)
	}
	return idx
}
