package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id   int
	link string
}

type fakeSource struct {
	rows []row
	err  error
}

func (f fakeSource) Each(_ context.Context, fn func(int, string) error) error {
	for _, r := range f.rows {
		if err := fn(r.id, r.link); err != nil {
			return err
		}
	}
	return f.err
}

func TestLoadEmpty(t *testing.T) {
	l, err := Load(context.Background(), fakeSource{})
	require.NoError(t, err)
	assert.Equal(t, 1, l.NextID())
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.ShouldSkip("https://kathmandupost.com/a"))
}

func TestLoadUsesMaxID(t *testing.T) {
	l, err := Load(context.Background(), fakeSource{rows: []row{
		{3, "https://a"},
		{7, "https://b"},
		{5, "https://c"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 8, l.NextID())
	assert.True(t, l.ShouldSkip("https://b"))
	assert.False(t, l.ShouldSkip("https://d"))
}

func TestAssignAndRecord(t *testing.T) {
	l := New()
	assert.Equal(t, 1, l.Assign())
	l.RecordWritten("https://a")
	assert.Equal(t, 2, l.Assign())
	l.RecordWritten("https://b")

	assert.Equal(t, 3, l.NextID())
	assert.Equal(t, 3, l.NextID(), "peeking does not advance")
	assert.True(t, l.ShouldSkip("https://a"))
	assert.Equal(t, 2, l.Len())
}

func TestLoadErrors(t *testing.T) {
	boom := errors.New("bad row")
	_, err := Load(context.Background(), fakeSource{err: boom})
	require.ErrorIs(t, err, boom)

	_, err = Load(context.Background(), fakeSource{rows: []row{{0, "https://a"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id 0")
}
