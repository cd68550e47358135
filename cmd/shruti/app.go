package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/srijan/shruti/config"
	"github.com/srijan/shruti/render"
	docxrender "github.com/srijan/shruti/render/docx"
	"github.com/srijan/shruti/render/terminal"
	textrender "github.com/srijan/shruti/render/text"
)

// app holds the renderer registry used by CLI commands.
type app struct {
	renderers map[string]func(cfg config.Config) render.Renderer
}

func newApp() *app {
	return &app{
		renderers: map[string]func(cfg config.Config) render.Renderer{
			"docx": func(cfg config.Config) render.Renderer {
				return &docxrender.Renderer{Title: cfg.DocumentTitle, Palette: cfg.Palette}
			},
			"text":     func(config.Config) render.Renderer { return textrender.New() },
			"terminal": func(config.Config) render.Renderer { return terminal.New() },
		},
	}
}

func (a *app) renderer(name string, cfg config.Config) (render.Renderer, error) {
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(cfg), nil
}

// transcriptPath derives the transcribe output path: the audio base name plus
// a timestamp suffix, next to the audio file. The timestamp keeps repeated
// runs from overwriting earlier transcripts.
func transcriptPath(audioPath string, now time.Time) string {
	base := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	return fmt.Sprintf("%s_%s_transcript.txt", base, now.Format("20060102-150405"))
}

// outputExt maps an output format to its file extension.
var outputExt = map[string]string{
	"docx": ".docx",
	"text": ".txt",
}

// convertOutputPath derives the default converter output path from the input
// transcript name.
func convertOutputPath(transcriptPath, format string) string {
	base := strings.TrimSuffix(transcriptPath, filepath.Ext(transcriptPath))
	return base + outputExt[format]
}
