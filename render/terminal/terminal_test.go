package terminal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/srijan/shruti/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tr := &core.Transcript{
		Source:    "call1_transcript.txt",
		CreatedAt: time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC),
		Utterances: []core.Utterance{
			{Speaker: "A", Text: "Hello", StartMs: 0, EndMs: 1200},
			{Speaker: "B", Text: "Hi there", StartMs: 1300, EndMs: 2400},
			{Speaker: "A", Text: "Shall we begin?", StartMs: 2500, EndMs: 4000},
		},
	}

	r := &Renderer{Width: 100}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, tr))

	out := ansi.Strip(buf.String())

	assert.Contains(t, out, "call1_transcript.txt")
	assert.Contains(t, out, "3 turns")
	assert.Contains(t, out, "2 speakers")
	assert.Contains(t, out, "Mar 14, 2026")
	assert.Contains(t, out, "[0:00:00] Speaker A: Hello")
	assert.Contains(t, out, "[0:00:01] Speaker B: Hi there")
	assert.Contains(t, out, "[0:00:02] Speaker A: Shall we begin?")
}

func TestRenderWithoutOffsets(t *testing.T) {
	tr := &core.Transcript{
		Source: "notes_transcript.txt",
		Utterances: []core.Utterance{
			{Speaker: "A", Text: "Hello"},
		},
	}

	r := &Renderer{Width: 80}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, tr))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "Speaker A: Hello")
	assert.NotContains(t, out, "[0:00:00]")
}

func TestRenderOrderPreserved(t *testing.T) {
	tr := &core.Transcript{
		Source: "x.txt",
		Utterances: []core.Utterance{
			{Speaker: "B", Text: "first"},
			{Speaker: "A", Text: "second"},
			{Speaker: "B", Text: "third"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, (&Renderer{Width: 80}).Render(&buf, tr))

	out := ansi.Strip(buf.String())
	i := strings.Index(out, "first")
	j := strings.Index(out, "second")
	k := strings.Index(out, "third")
	assert.True(t, i >= 0 && j > i && k > j)
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "0:00:00", formatOffset(0))
	assert.Equal(t, "0:01:05", formatOffset(65_000))
	assert.Equal(t, "1:02:03", formatOffset(3_723_000))
}
