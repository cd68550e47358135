package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/srijan/shruti/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTranscript() *core.Transcript {
	return &core.Transcript{
		Source: "call1_transcript.txt",
		Utterances: []core.Utterance{
			{Speaker: "A", Text: "Hello"},
			{Speaker: "B", Text: "Hi there"},
			{Speaker: "A", Text: "Shall we begin?"},
		},
	}
}

func TestSpeakerColors(t *testing.T) {
	r := New()
	tr := sampleTranscript()

	colors := r.SpeakerColors(tr)
	assert.Equal(t, DefaultPalette[0], colors["A"])
	assert.Equal(t, DefaultPalette[1], colors["B"])

	// Deterministic across runs.
	assert.Equal(t, colors, r.SpeakerColors(tr))
}

func TestSpeakerColorsCyclePalette(t *testing.T) {
	r := &Renderer{Palette: []string{"AA0000", "00BB00"}}
	tr := &core.Transcript{Utterances: []core.Utterance{
		{Speaker: "A"}, {Speaker: "B"}, {Speaker: "C"},
	}}

	colors := r.SpeakerColors(tr)
	assert.Equal(t, "AA0000", colors["A"])
	assert.Equal(t, "00BB00", colors["B"])
	assert.Equal(t, "AA0000", colors["C"])
}

// documentXML renders tr and returns the word/document.xml payload of the
// resulting .docx archive.
func documentXML(t *testing.T, r *Renderer, tr *core.Transcript) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, tr))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatal("word/document.xml not found in archive")
	return ""
}

func TestRender(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	r := &Renderer{Title: "Interview", Now: func() time.Time { return fixed }}
	tr := sampleTranscript()

	xml := documentXML(t, r, tr)

	assert.Contains(t, xml, "Interview")
	assert.Contains(t, xml, "call1_transcript.txt")
	assert.Contains(t, xml, "2026-03-14 09:26")

	// Every utterance present, in input order.
	first := strings.Index(xml, "Hello")
	second := strings.Index(xml, "Hi there")
	third := strings.Index(xml, "Shall we begin?")
	assert.True(t, first >= 0 && second > first && third > second)

	// Speaker colors from the palette.
	assert.Contains(t, xml, DefaultPalette[0])
	assert.Contains(t, xml, DefaultPalette[1])
}

func TestRenderEmptyTranscript(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, &core.Transcript{Source: "empty.txt"}))

	// Still a valid zip archive.
	_, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	assert.NoError(t, err)
}
