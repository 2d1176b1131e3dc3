package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"only whitespace", " \n\t ", ""},
		{"inner runs", "Police  said\n\nthe  road was\tclosed", "Police said the road was closed"},
		{"trims ends", "  hello world  ", "hello world"},
		{"non-breaking text kept", "Nepal’s capital", "Nepal’s capital"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestStripDateline(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		style DatelineStyle
		want  string
	}{
		{
			name:  "abbrev colon form",
			in:    "KATHMANDU, Jan 12: Police said the suspects were arrested.",
			style: DatelineAbbrev,
			want:  "Police said the suspects were arrested.",
		},
		{
			name:  "abbrev multi-word place",
			in:    "NEW DELHI, Mar 3: Officials met on Friday.",
			style: DatelineAbbrev,
			want:  "Officials met on Friday.",
		},
		{
			name:  "abbrev requires colon",
			in:    "KATHMANDU, Jan 12 Police said.",
			style: DatelineAbbrev,
			want:  "KATHMANDU, Jan 12 Police said.",
		},
		{
			name:  "full month form",
			in:    "Kathmandu, January 28 The government has decided to extend the deadline.",
			style: DatelineFullMonth,
			want:  "The government has decided to extend the deadline.",
		},
		{
			name:  "full month ignores ordinary sentences",
			in:    "However, about 20 people were injured in the blast.",
			style: DatelineFullMonth,
			want:  "However, about 20 people were injured in the blast.",
		},
		{
			name:  "none is a no-op",
			in:    "KATHMANDU, Jan 12: Police said.",
			style: DatelineNone,
			want:  "KATHMANDU, Jan 12: Police said.",
		},
		{
			name:  "only leading dateline",
			in:    "He said: KATHMANDU, Jan 12: was calm.",
			style: DatelineAbbrev,
			want:  "He said: KATHMANDU, Jan 12: was calm.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripDateline(tt.in, tt.style))
		})
	}
}

func TestParseFreeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"February 26, 2019", "2019-02-26"},
		{"not a date", ""},
		{"", ""},
		{"Published at : March 5, 2021", "2021-03-05"},
		{"Updated at : 10:15 AM, December 1, 2020", "2020-12-01"},
		{"Feb 26, 2019", ""},
		{"Smarch 3, 2020", ""},
		{"february 9, 2018", "2018-02-09"},
		{"February 30, 2019", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFreeDate(tt.in))
		})
	}
}

func TestISODate(t *testing.T) {
	assert.Equal(t, "2026-01-27", ISODate("2026-01-27T10:15:00+05:45"))
	assert.Equal(t, "2026-01-27", ISODate(" 2026-01-27 "))
	assert.Equal(t, "", ISODate("27-01-2026"))
	assert.Equal(t, "", ISODate("2026-13-01"))
	assert.Equal(t, "", ISODate(""))
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-05-02", NormalizeDate("2024-05-02T08:00:00Z"))
	assert.Equal(t, "2019-02-26", NormalizeDate("Tuesday, February 26, 2019"))
	assert.Equal(t, "", NormalizeDate("yesterday"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "National News", TitleCase("national news"))
	assert.Equal(t, "Business", TitleCase("BUSINESS"))
	assert.Equal(t, "", TitleCase(""))
}

func TestMarkdown(t *testing.T) {
	md, err := Markdown(`<div><h2>Heading</h2><p>First paragraph.</p></div>`)
	require.NoError(t, err)
	assert.True(t, strings.Contains(md, "## Heading"), md)
	assert.True(t, strings.Contains(md, "First paragraph."), md)
}
