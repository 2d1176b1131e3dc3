package extract

import (
	"errors"
	"testing"

	"github.com/gaurav-prasanna/newspipe/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute(t *testing.T) {
	r := DefaultRouter()

	tests := []struct {
		url  string
		want string
	}{
		{"https://kathmandupost.com/politics/2024/01/01/story", "Kathmandu Post"},
		{"https://myrepublica.nagariknetwork.com/news/story", "Republica"},
		{"https://english.onlinekhabar.com/story.html", "OnlineKhabar"},
		{"https://en.setopati.com/social/123", "Setopati"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s, err := r.Route(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Name())
		})
	}
}

func TestRouteUnsupported(t *testing.T) {
	s, err := DefaultRouter().Route("https://example.com/page")
	assert.Nil(t, s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnsupportedSource))
	assert.Contains(t, err.Error(), "https://example.com/page")
}

func TestRouteFirstMatchWins(t *testing.T) {
	// A Setopati link quoting another domain in its query still routes by
	// registration order.
	s, err := DefaultRouter().Route("https://en.setopati.com/x?ref=kathmandupost.com")
	require.NoError(t, err)
	assert.Equal(t, "Kathmandu Post", s.Name())

	s, err = NewRouter(Setopati{}, KathmanduPost{}).Route("https://en.setopati.com/x?ref=kathmandupost.com")
	require.NoError(t, err)
	assert.Equal(t, "Setopati", s.Name())
}

func TestSourcesIsACopy(t *testing.T) {
	r := DefaultRouter()
	got := r.Sources()
	require.Len(t, got, 4)
	got[0] = nil
	assert.NotNil(t, r.Sources()[0])
}
