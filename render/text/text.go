// Package text renders a transcript in the plain-text transcript file format:
// one turn per line, "Speaker A: <text>". This is the format the reader
// package parses, so the two round-trip.
package text

import (
	"bufio"
	"fmt"
	"io"

	"github.com/srijan/shruti/core"
)

// Renderer writes transcripts as plain text.
type Renderer struct{}

// New creates a text Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes one "Speaker X: text" line per utterance to w.
func (r *Renderer) Render(w io.Writer, t *core.Transcript) error {
	bw := bufio.NewWriter(w)
	for _, u := range t.Utterances {
		if _, err := fmt.Fprintf(bw, "Speaker %s: %s\n", u.Speaker, u.Text); err != nil {
			return err
		}
	}
	return bw.Flush()
}
