// Package normalize holds the text utilities shared by every source
// extractor: whitespace collapsing, dateline stripping, date normalization
// and HTML-to-Markdown conversion for content previews.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CleanText collapses every run of whitespace (including newlines) into a
// single space and trims both ends.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DatelineStyle selects the leading place/date pattern a source prefixes
// its first paragraphs with.
type DatelineStyle int

const (
	// DatelineNone leaves text untouched.
	DatelineNone DatelineStyle = iota
	// DatelineAbbrev matches "KATHMANDU, Jan 12: ".
	DatelineAbbrev
	// DatelineFullMonth matches "Kathmandu, January 28 ".
	DatelineFullMonth
)

var (
	abbrevDateline    = regexp.MustCompile(`^[A-Z\s]+,\s+[A-Za-z]+\s+\d{1,2}:\s*`)
	fullMonthDateline = regexp.MustCompile(`^[A-Z][a-z]+,\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}\b\s*`)
)

// StripDateline removes a leading dateline of the given style. The rest of
// the text is returned verbatim.
func StripDateline(s string, style DatelineStyle) string {
	switch style {
	case DatelineAbbrev:
		return abbrevDateline.ReplaceAllString(s, "")
	case DatelineFullMonth:
		return fullMonthDateline.ReplaceAllString(s, "")
	default:
		return s
	}
}

// TitleCase capitalizes each word, e.g. "national news" → "National News".
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Markdown converts an HTML fragment into Markdown.
func Markdown(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
