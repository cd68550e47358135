// Package redact provides an opt-in redaction layer for sanitizing PII from
// transcript text before it is rendered into a shareable document.
package redact

import (
	"fmt"
	"regexp"
)

// Rule detects sensitive data in a string and provides a replacement.
type Rule interface {
	Name() string
	Detect(s string) []Match
	Replacement(m Match) string
}

// Match represents a detected occurrence within a string.
type Match struct {
	Start int
	End   int
	Value string
}

type regexRule struct {
	name    string
	pattern *regexp.Regexp
}

func (r *regexRule) Name() string { return r.name }

func (r *regexRule) Detect(s string) []Match {
	locs := r.pattern.FindAllStringIndex(s, -1)
	matches := make([]Match, len(locs))
	for i, loc := range locs {
		matches[i] = Match{Start: loc[0], End: loc[1], Value: s[loc[0]:loc[1]]}
	}
	return matches
}

func (r *regexRule) Replacement(_ Match) string {
	return fmt.Sprintf("[REDACTED:%s]", r.name)
}

// PIIRules returns the built-in PII detection rules for spoken transcripts:
// identifiers that survive speech-to-text as literal strings.
func PIIRules() []Rule {
	return []Rule{
		&regexRule{
			name:    "email",
			pattern: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
		},
		&regexRule{
			name:    "phone",
			pattern: regexp.MustCompile(`(?:\+?\d{1,2}[ .-]?)?\(?\d{3}\)?[ .-]?\d{3}[ .-]?\d{4}\b`),
		},
		&regexRule{
			name:    "ssn",
			pattern: regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
		},
		&regexRule{
			name:    "credit_card",
			pattern: regexp.MustCompile(`\b(?:\d[ -]?){13,16}\b`),
		},
	}
}
