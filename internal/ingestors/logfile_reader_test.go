package ingestors

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"weblog-stats/internal/models"
	"weblog-stats/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogfileReader_ReadsEntries(t *testing.T) {
	t.Parallel()

	log := "2015 06 01 23 45\n\n   \n2015 12 31 00 05 extra-field\n"
	reader := NewLogfileReader("weblog.txt", strings.NewReader(log))

	require.True(t, reader.HasNext())
	entry, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, models.LogEntry{Year: 2015, Month: 6, Day: 1, Hour: 23, Minute: 45}, entry)

	require.True(t, reader.HasNext())
	entry, err = reader.Next()
	require.NoError(t, err)
	assert.Equal(t, models.LogEntry{Year: 2015, Month: 12, Day: 31, Hour: 0, Minute: 5}, entry)

	assert.False(t, reader.HasNext())
	_, err = reader.Next()
	assert.ErrorIs(t, err, ErrSourceExhausted)
}

func TestLogfileReader_HasNextIsIdempotent(t *testing.T) {
	t.Parallel()

	reader := NewLogfileReader("weblog.txt", strings.NewReader("2015 01 02 03 04\n"))

	assert.True(t, reader.HasNext())
	assert.True(t, reader.HasNext())

	entry, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, entry.Hour)
	assert.False(t, reader.HasNext())
}

func TestLogfileReader_DoesNotCheckRanges(t *testing.T) {
	t.Parallel()

	reader := NewLogfileReader("weblog.txt", strings.NewReader("2015 13 32 24 61\n"))

	entry, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, models.LogEntry{Year: 2015, Month: 13, Day: 32, Hour: 24, Minute: 61}, entry)
}

func TestLogfileReader_MalformedLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{name: "too few fields", line: "2015 06 01 23"},
		{name: "non numeric field", line: "2015 jun 01 23 45"},
		{name: "garbage", line: "GET /index.html HTTP/1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reader := NewLogfileReader("weblog.txt", strings.NewReader("2015 01 01 01 01\n"+tt.line+"\n2015 01 01 02 02\n"))

			_, err := reader.Next()
			require.NoError(t, err)

			require.True(t, reader.HasNext())
			_, err = reader.Next()
			require.Error(t, err)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, "ING_1000", svcErr.Code)
			assert.Equal(t, "invalid_argument", svcErr.Category)
			assert.Equal(t, "malformed log line 2 in weblog.txt", svcErr.Message)

			// reading continues after the malformed line
			entry, err := reader.Next()
			require.NoError(t, err)
			assert.Equal(t, 2, entry.Hour)
		})
	}
}

func TestLogfileReader_ReadFailure(t *testing.T) {
	t.Parallel()

	reader := NewLogfileReader("broken.txt", iotest.ErrReader(io.ErrUnexpectedEOF))

	require.True(t, reader.HasNext())
	_, err := reader.Next()
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ING_9000", svcErr.Code)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	assert.False(t, reader.HasNext())
}

type trackingReadCloser struct {
	io.Reader
	closed bool
}

func (t *trackingReadCloser) Close() error {
	t.closed = true
	return nil
}

func TestLogfileReader_CloseClosesUnderlyingReader(t *testing.T) {
	t.Parallel()

	rc := &trackingReadCloser{Reader: strings.NewReader("")}
	reader := NewLogfileReader("weblog.txt", rc)

	require.NoError(t, reader.Close())
	assert.True(t, rc.closed)

	plain := NewLogfileReader("weblog.txt", strings.NewReader(""))
	assert.NoError(t, plain.Close())
}

func TestParseLogLine(t *testing.T) {
	t.Parallel()

	entry, err := ParseLogLine("  2016  2 29 7 8 ")
	require.NoError(t, err)
	assert.Equal(t, models.LogEntry{Year: 2016, Month: 2, Day: 29, Hour: 7, Minute: 8}, entry)

	_, err = ParseLogLine("")
	assert.Error(t, err)
}
