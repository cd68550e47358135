// Package config loads the static configuration file (shruti.json) that
// controls the remote transcription request and document styling. Values are
// edited, not passed at runtime; every key has a default.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/srijan/shruti/core"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "shruti.json"

// Config holds all static settings.
type Config struct {
	// LanguageCode is the language hint sent to the transcription service.
	LanguageCode string `json:"language_code"`

	// SpeechModels is an ordered operator preference; the first entry is
	// used for the request.
	SpeechModels []string `json:"speech_models"`

	// SpeakerLabels enables diarization. Nil means enabled.
	SpeakerLabels *bool `json:"speaker_labels,omitempty"`

	// PollTimeoutMinutes bounds the synchronous wait for the remote result.
	PollTimeoutMinutes int `json:"poll_timeout_minutes"`

	// DocumentTitle is the title line of generated documents.
	DocumentTitle string `json:"document_title"`

	// Palette is the speaker color cycle as RRGGBB hex values.
	Palette []string `json:"palette"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LanguageCode:       "en_us",
		SpeechModels:       []string{"best"},
		PollTimeoutMinutes: 60,
		DocumentTitle:      "Session Transcript",
		Palette: []string{
			"1F497D", // dark blue
			"4F81BD", // blue
			"7030A0", // purple
			"008000", // green
			"C0504D", // red
			"806000", // brown
		},
	}
}

// Load reads the config file at path. A missing file yields Default(); an
// unreadable or invalid file is a configuration error. Keys absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: read %s: %w", core.ErrConfiguration, path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s is not valid JSON: %w", core.ErrConfiguration, path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", core.ErrConfiguration, path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.LanguageCode == "" {
		return fmt.Errorf("language_code must not be empty")
	}
	if len(c.SpeechModels) == 0 {
		return fmt.Errorf("speech_models must be a non-empty list")
	}
	if c.PollTimeoutMinutes <= 0 {
		return fmt.Errorf("poll_timeout_minutes must be positive")
	}
	return nil
}

// Diarize reports whether speaker labels are requested.
func (c Config) Diarize() bool {
	return c.SpeakerLabels == nil || *c.SpeakerLabels
}

// SpeechModel returns the model used for requests: the first entry of the
// preference list.
func (c Config) SpeechModel() string {
	return c.SpeechModels[0]
}
