package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeakers(t *testing.T) {
	tests := []struct {
		name       string
		utterances []Utterance
		want       []string
	}{
		{
			name: "first appearance order",
			utterances: []Utterance{
				{Speaker: "B", Text: "Hi"},
				{Speaker: "A", Text: "Hello"},
				{Speaker: "B", Text: "How are you"},
				{Speaker: "C", Text: "Fine"},
			},
			want: []string{"B", "A", "C"},
		},
		{
			name: "single speaker",
			utterances: []Utterance{
				{Speaker: "A", Text: "monologue"},
				{Speaker: "A", Text: "continues"},
			},
			want: []string{"A"},
		},
		{
			name: "empty transcript",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &Transcript{Utterances: tt.utterances}
			assert.Equal(t, tt.want, tr.Speakers())
		})
	}
}

func TestSpeakerIndex(t *testing.T) {
	tr := &Transcript{Utterances: []Utterance{
		{Speaker: "B"},
		{Speaker: "A"},
		{Speaker: "B"},
	}}

	idx := tr.SpeakerIndex()
	assert.Equal(t, map[string]int{"B": 0, "A": 1}, idx)

	// Deterministic across calls.
	assert.Equal(t, idx, tr.SpeakerIndex())
}
