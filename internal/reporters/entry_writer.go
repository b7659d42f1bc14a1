package reporters

import (
	"bufio"
	"fmt"
	"io"

	"weblog-stats/internal/ingestors"
)

// WriteEntries drains source and writes one "year month day hour minute" line per entry.
// It returns the number of entries written before any error.
func WriteEntries(w io.Writer, source ingestors.EntrySource) (int, error) {
	bw := bufio.NewWriter(w)

	written := 0
	for source.HasNext() {
		entry, err := source.Next()
		if err != nil {
			_ = bw.Flush()
			return written, err
		}
		if _, err := fmt.Fprintln(bw, entry.String()); err != nil {
			return written, err
		}
		written++
	}
	return written, bw.Flush()
}
