// Package assemblyai implements transcribe.Transcriber on the official
// AssemblyAI Go SDK. The SDK carries the upload and polling protocol; this
// package bounds the wait with a timeout and maps the diarized response into
// the normalized transcript format.
package assemblyai

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/srijan/shruti/core"
	"github.com/srijan/shruti/transcribe"
)

// Client submits audio to AssemblyAI and waits for the result.
type Client struct {
	client *aai.Client
	opts   transcribe.Options
}

var _ transcribe.Transcriber = (*Client)(nil)

// New creates a Client with the given API key and request options.
func New(apiKey string, opts transcribe.Options) *Client {
	return &Client{client: aai.NewClient(apiKey), opts: opts}
}

// Transcribe uploads the audio file and blocks until the service reports a
// terminal status or the poll timeout elapses. A missing audio file is an
// input error; a failed or timed-out transcription is a remote service error.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (*core.Transcript, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open audio file: %w", core.ErrInput, err)
	}
	defer f.Close()

	if c.opts.PollTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.PollTimeout)
		defer cancel()
	}

	params := &aai.TranscriptOptionalParams{
		LanguageCode:  aai.TranscriptLanguageCode(c.opts.LanguageCode),
		SpeakerLabels: aai.Bool(c.opts.SpeakerLabels),
	}
	if c.opts.SpeechModel != "" {
		params.SpeechModel = aai.SpeechModel(c.opts.SpeechModel)
	}

	resp, err := c.client.Transcripts.TranscribeFromReader(ctx, f, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrRemoteService, err)
	}
	if resp.Status == aai.TranscriptStatusError {
		return nil, fmt.Errorf("%w: transcription failed: %s", core.ErrRemoteService, aai.ToString(resp.Error))
	}

	t := toTranscript(filepath.Base(audioPath), resp)
	t.CreatedAt = time.Now()
	return t, nil
}

// toTranscript maps a completed service response into the normalized format.
// Utterance order is preserved as returned, which is chronological. When
// diarization was disabled the response has no utterances; the full text
// becomes a single turn attributed to speaker A.
func toTranscript(source string, resp aai.Transcript) *core.Transcript {
	t := &core.Transcript{Source: source}
	for _, u := range resp.Utterances {
		t.Utterances = append(t.Utterances, core.Utterance{
			Speaker: aai.ToString(u.Speaker),
			Text:    aai.ToString(u.Text),
			StartMs: aai.ToInt64(u.Start),
			EndMs:   aai.ToInt64(u.End),
		})
	}
	if len(t.Utterances) == 0 && aai.ToString(resp.Text) != "" {
		t.Utterances = append(t.Utterances, core.Utterance{
			Speaker: "A",
			Text:    aai.ToString(resp.Text),
		})
	}
	return t
}
