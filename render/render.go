// Package render defines the interface for rendering transcripts into output
// formats, and the atomic file write shared by all of them.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/srijan/shruti/core"
)

// Renderer writes a transcript to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, t *core.Transcript) error
}

// WriteFile renders t to path through a temporary file and rename, so a
// failed render never leaves a partial artifact at the destination. Any
// failure is an output error.
func WriteFile(path string, r Renderer, t *core.Transcript) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", core.ErrOutput, path, err)
	}
	tmpPath := tmp.Name()

	if err := r.Render(tmp, t); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: render %s: %w", core.ErrOutput, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: write %s: %w", core.ErrOutput, path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: move into place: %w", core.ErrOutput, err)
	}
	return nil
}
