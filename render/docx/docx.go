// Package docx renders a transcript as a Word document: a title block, a
// metadata header, then one paragraph per utterance with the text colored by
// speaker. Colors are assigned from a fixed palette in speaker
// first-appearance order, so conversion is deterministic.
package docx

import (
	"fmt"
	"io"
	"time"

	godocx "github.com/fumiama/go-docx"
	"github.com/srijan/shruti/core"
)

// DefaultTitle is used when no document title is configured.
const DefaultTitle = "Session Transcript"

// DefaultPalette holds the speaker color cycle as RRGGBB values.
var DefaultPalette = []string{
	"1F497D", // dark blue
	"4F81BD", // blue
	"7030A0", // purple
	"008000", // green
	"C0504D", // red
	"806000", // brown
}

const colorMuted = "808080"

// Renderer writes transcripts as .docx documents.
type Renderer struct {
	// Title overrides DefaultTitle.
	Title string

	// Palette overrides DefaultPalette. Cycled when there are more
	// speakers than colors.
	Palette []string

	// Now overrides the generation timestamp source. Nil means time.Now.
	Now func() time.Time
}

// New creates a docx Renderer with the default title and palette.
func New() *Renderer {
	return &Renderer{}
}

// SpeakerColors returns the palette color for each speaker label, assigned in
// first-appearance order.
func (r *Renderer) SpeakerColors(t *core.Transcript) map[string]string {
	palette := r.palette()
	colors := make(map[string]string)
	for label, i := range t.SpeakerIndex() {
		colors[label] = palette[i%len(palette)]
	}
	return colors
}

// Render writes the transcript as a complete .docx file to w.
func (r *Renderer) Render(w io.Writer, t *core.Transcript) error {
	doc := godocx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.Justification("center")
	title.AddText(r.title()).Size("36").Bold()

	meta := doc.AddParagraph()
	meta.AddText("Source file: ").Bold().Color(colorMuted)
	meta.AddText(t.Source).Color(colorMuted)

	generated := doc.AddParagraph()
	generated.AddText("Generated: ").Bold().Color(colorMuted)
	generated.AddText(r.now().Format("2006-01-02 15:04")).Color(colorMuted)

	note := doc.AddParagraph()
	note.AddText("Speakers are labeled as diarized (Speaker A, Speaker B, ...).").Italic().Color(colorMuted)

	doc.AddParagraph()

	colors := r.SpeakerColors(t)
	for _, u := range t.Utterances {
		color := colors[u.Speaker]
		p := doc.AddParagraph()
		p.AddText(fmt.Sprintf("Speaker %s: ", u.Speaker)).Bold().Color(color)
		p.AddText(u.Text).Color(color)
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

func (r *Renderer) title() string {
	if r.Title != "" {
		return r.Title
	}
	return DefaultTitle
}

func (r *Renderer) palette() []string {
	if len(r.Palette) > 0 {
		return r.Palette
	}
	return DefaultPalette
}

func (r *Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
