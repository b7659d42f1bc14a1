package ingestors

import (
	"bytes"
	"testing"

	"weblog-stats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogfileCreator_CreateEntries_RangesAndOrder(t *testing.T) {
	t.Parallel()

	entries := NewLogfileCreator(2015, 42).CreateEntries(500)
	require.Len(t, entries, 500)

	for i, entry := range entries {
		assert.Equal(t, 2015, entry.Year)
		assert.GreaterOrEqual(t, entry.Month, 1)
		assert.LessOrEqual(t, entry.Month, 12)
		assert.GreaterOrEqual(t, entry.Day, 1)
		assert.LessOrEqual(t, entry.Day, 28)
		assert.GreaterOrEqual(t, entry.Hour, 0)
		assert.LessOrEqual(t, entry.Hour, 23)
		assert.GreaterOrEqual(t, entry.Minute, 0)
		assert.LessOrEqual(t, entry.Minute, 59)
		if i > 0 {
			assert.False(t, entry.Before(entries[i-1]), "entries must be chronological")
		}
	}
}

func TestLogfileCreator_SameSeedSameOutput(t *testing.T) {
	t.Parallel()

	a := NewLogfileCreator(2015, 7).CreateEntries(50)
	b := NewLogfileCreator(2015, 7).CreateEntries(50)
	assert.Equal(t, a, b)
}

func TestLogfileCreator_WriteLogfile_IsReadable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewLogfileCreator(2015, 1).WriteLogfile(&buf, 100))

	expected := NewLogfileCreator(2015, 1).CreateEntries(100)

	reader := NewLogfileReader("generated.txt", &buf)
	var got []models.LogEntry
	for reader.HasNext() {
		entry, err := reader.Next()
		require.NoError(t, err)
		got = append(got, entry)
	}
	assert.Equal(t, expected, got)
}
