package core

import "errors"

// Error kinds. Every failure surfaced by a command wraps exactly one of
// these, so callers can classify with errors.Is without parsing messages.
var (
	// ErrConfiguration indicates a missing or invalid credential or config file.
	ErrConfiguration = errors.New("configuration error")

	// ErrInput indicates a missing or unreadable input file.
	ErrInput = errors.New("input error")

	// ErrParse indicates a malformed transcript line.
	ErrParse = errors.New("parse error")

	// ErrRemoteService indicates the transcription service reported a failure.
	ErrRemoteService = errors.New("remote service error")

	// ErrOutput indicates the destination path could not be written.
	ErrOutput = errors.New("output error")
)
