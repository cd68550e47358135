// Package transcribe defines the interface to remote speech-to-text services
// and loads the local API credential.
package transcribe

import (
	"context"
	"time"

	"github.com/srijan/shruti/core"
)

// Options configures a transcription request. Values come from the static
// config file, not from runtime inputs.
type Options struct {
	// LanguageCode is the language hint for the service (e.g. "en_us").
	LanguageCode string

	// SpeechModel selects the service's speech model.
	SpeechModel string

	// SpeakerLabels requests speaker diarization.
	SpeakerLabels bool

	// PollTimeout bounds the synchronous wait for a terminal status. Zero
	// means no bound beyond the caller's context.
	PollTimeout time.Duration
}

// Transcriber submits an audio file to a remote service and blocks until the
// service reports completion or failure.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*core.Transcript, error)
}
