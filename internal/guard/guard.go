// Package guard sanitizes and screens visitor-submitted chat input.
package guard

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxMessageLen is the maximum accepted message length in bytes.
const MaxMessageLen = 500

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Sanitize trims surrounding whitespace, truncates to MaxMessageLen, and
// strips HTML-tag-shaped substrings. It is total: any input yields a string,
// possibly empty.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	s = truncate(s, MaxMessageLen)
	return tagPattern.ReplaceAllString(s, "")
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Screener decides whether a sanitized message should be deflected instead
// of forwarded to the model. Implementations are heuristics, not a security
// boundary: the endpoint treats a positive result as a content-level
// redirect, never as an error.
type Screener interface {
	Blocked(text string) bool
}

// RegexScreener screens messages against a fixed set of case-insensitive
// patterns that catch common prompt-injection phrasings.
type RegexScreener struct {
	patterns []*regexp.Regexp
}

// NewRegexScreener returns a screener with the default injection patterns.
func NewRegexScreener() *RegexScreener {
	return &RegexScreener{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)ignore (all |your |previous |above )?instructions`),
			regexp.MustCompile(`(?i)you are now`),
			regexp.MustCompile(`(?i)new system prompt`),
			regexp.MustCompile(`(?i)forget (all |your |everything)`),
			regexp.MustCompile(`(?i)act as`),
			regexp.MustCompile(`(?i)pretend to be`),
		},
	}
}

// Blocked reports whether text matches any injection pattern.
func (s *RegexScreener) Blocked(text string) bool {
	for _, p := range s.patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
