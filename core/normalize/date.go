package normalize

import (
	"regexp"
	"strings"
	"time"
)

const isoLayout = "2006-01-02"

var months = map[string]string{
	"january": "01", "february": "02", "march": "03",
	"april": "04", "may": "05", "june": "06",
	"july": "07", "august": "08", "september": "09",
	"october": "10", "november": "11", "december": "12",
}

var (
	freeDatePattern = regexp.MustCompile(`([A-Za-z]+)\s+(\d{1,2}),\s+(\d{4})`)
	isoPrefix       = regexp.MustCompile(`^\s*(\d{4}-\d{2}-\d{2})`)
)

// ParseFreeDate finds a "<Month> <day>, <year>" date in s and returns it as
// YYYY-MM-DD. It returns "" when no such date with a full English month name
// is present or when the date does not exist on the calendar.
func ParseFreeDate(s string) string {
	for _, m := range freeDatePattern.FindAllStringSubmatch(s, -1) {
		month, ok := months[strings.ToLower(m[1])]
		if !ok {
			continue
		}
		day := m[2]
		if len(day) == 1 {
			day = "0" + day
		}
		iso := m[3] + "-" + month + "-" + day
		if _, err := time.Parse(isoLayout, iso); err != nil {
			return ""
		}
		return iso
	}
	return ""
}

// ISODate returns the leading YYYY-MM-DD of a timestamp such as
// "2026-01-27T10:15:00+05:45", or "" if s does not start with a valid date.
func ISODate(s string) string {
	m := isoPrefix.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	if _, err := time.Parse(isoLayout, m[1]); err != nil {
		return ""
	}
	return m[1]
}

// NormalizeDate tries the ISO prefix first and falls back to free text.
func NormalizeDate(s string) string {
	if iso := ISODate(s); iso != "" {
		return iso
	}
	return ParseFreeDate(s)
}
