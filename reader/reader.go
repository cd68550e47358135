// Package reader parses plain-text transcript files — one diarized turn per
// line, "Speaker A: <text>" — into the normalized transcript format.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/srijan/shruti/core"
)

// lineRE matches one transcript line. The "Speaker " prefix is part of the
// file format; the captured label is the short identifier after it.
var lineRE = regexp.MustCompile(`^Speaker +(\S+): ?(.*)$`)

// maxLineSize caps a single transcript line at 1 MB. Long uninterrupted turns
// can exceed the default bufio.Scanner buffer.
const maxLineSize = 1 << 20

// ReadFile parses the transcript file at path. A missing or unreadable file
// is an input error; any non-blank line that does not match the
// "Speaker X: text" shape aborts the parse with an error naming the line.
func ReadFile(path string) (*core.Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open transcript: %w", core.ErrInput, err)
	}
	defer f.Close()

	t, err := Read(f, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Read parses transcript lines from r. source names the originating file in
// the returned transcript.
func Read(r io.Reader, source string) (*core.Transcript, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)

	t := &core.Transcript{Source: source}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d does not match \"Speaker X: text\": %q", core.ErrParse, lineNo, line)
		}
		t.Utterances = append(t.Utterances, core.Utterance{
			Speaker: m[1],
			Text:    strings.TrimSpace(m[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan transcript: %w", core.ErrInput, err)
	}

	return t, nil
}
