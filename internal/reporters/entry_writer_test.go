package reporters

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"weblog-stats/internal/ingestors"
	ingestormocks "weblog-stats/internal/ingestors/mocks"
	"weblog-stats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWriteEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		log      string
		expected string
		written  int
	}{
		{name: "two entries", log: "2015 1 5 9 7\n2015 12 31 23 59\n", expected: "2015 01 05 09 07\n2015 12 31 23 59\n", written: 2},
		{name: "empty log", log: "", expected: "", written: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			written, err := WriteEntries(&buf, ingestors.NewLogfileReader("weblog.txt", strings.NewReader(tt.log)))
			require.NoError(t, err)
			assert.Equal(t, tt.written, written)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteEntries_StopsAtFailingNext(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	readErr := errors.New("read failed")
	source := ingestormocks.NewMockEntrySource(ctrl)
	gomock.InOrder(
		source.EXPECT().HasNext().Return(true),
		source.EXPECT().Next().Return(models.LogEntry{Year: 2015, Month: 2, Day: 3, Hour: 4, Minute: 5}, nil),
		source.EXPECT().HasNext().Return(true),
		source.EXPECT().Next().Return(models.LogEntry{}, readErr),
	)

	var buf bytes.Buffer
	written, err := WriteEntries(&buf, source)
	assert.ErrorIs(t, err, readErr)
	assert.Equal(t, 1, written)
	assert.Equal(t, "2015 02 03 04 05\n", buf.String())
}
