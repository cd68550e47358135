// Package terminal renders transcripts as ANSI-colored speaker turns, using
// the same first-appearance color assignment as the document output.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/srijan/shruti/core"
)

const defaultWidth = 100

// Renderer pretty-prints a transcript to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the transcript as ANSI-colored speaker turns to w.
func (r *Renderer) Render(w io.Writer, t *core.Transcript) error {
	width := r.termWidth()

	writeHeader(w, t)
	writeSeparator(w, width)

	idx := t.SpeakerIndex()
	for _, u := range t.Utterances {
		label := speakerStyle(idx[u.Speaker]).Render("Speaker " + u.Speaker + ":")
		if u.EndMs > 0 {
			label = styleTimestamp.Render("["+formatOffset(u.StartMs)+"]") + " " + label
		}
		fmt.Fprintln(w, label+" "+u.Text)
	}

	fmt.Fprintln(w)
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// writeHeader renders the transcript metadata block.
func writeHeader(w io.Writer, t *core.Transcript) {
	fmt.Fprintln(w, styleTitle.Render(t.Source))

	parts := []string{
		fmt.Sprintf("%d turns", len(t.Utterances)),
		fmt.Sprintf("%d speakers", len(t.Speakers())),
	}
	if !t.CreatedAt.IsZero() {
		parts = append(parts, t.CreatedAt.Format("Jan 2, 2006 3:04 PM"))
	}
	fmt.Fprintln(w, styleMeta.Render(strings.Join(parts, "  ")))
}

// writeSeparator renders a horizontal rule.
func writeSeparator(w io.Writer, width int) {
	n := min(width, 72)
	fmt.Fprintln(w, styleSeparator.Render(strings.Repeat("─", n)))
}

// formatOffset renders a millisecond audio offset as H:MM:SS.
func formatOffset(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
