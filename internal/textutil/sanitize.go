package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SanitizeName converts a display name into a safe path segment. Letters,
// digits, spaces, dashes, and underscores pass through; runs of anything else
// collapse to a single underscore. The result is trimmed; empty input stays
// empty so callers can apply their own fallback.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	var b strings.Builder
	var sep strings.Builder
	unsafeRun := false
	flush := func() {
		if b.Len() > 0 {
			if unsafeRun {
				b.WriteByte('_')
			} else {
				b.WriteString(sep.String())
			}
		}
		sep.Reset()
		unsafeRun = false
	}
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			flush()
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			sep.WriteRune(r)
		default:
			unsafeRun = true
		}
	}
	return strings.Trim(b.String(), " _-")
}

var titleCaser = cases.Title(language.Und)

// FallbackTitle normalizes a fallback display name: collapses separator runs
// to single spaces and title-cases the words. Empty input yields empty output.
func FallbackTitle(name string) string {
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return ""
	}
	return titleCaser.String(title)
}
