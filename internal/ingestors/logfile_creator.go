package ingestors

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"

	"weblog-stats/internal/models"
)

// LogfileCreator generates synthetic access logs for a single year.
// Days are drawn from 1-28 so every generated date exists.
type LogfileCreator struct {
	year int
	rng  *rand.Rand
}

// NewLogfileCreator returns a creator whose output is fully determined by year and seed.
func NewLogfileCreator(year int, seed uint64) *LogfileCreator {
	return &LogfileCreator{
		year: year,
		rng:  rand.New(rand.NewPCG(seed, seed)),
	}
}

// CreateEntries returns n random entries in chronological order.
func (c *LogfileCreator) CreateEntries(n int) []models.LogEntry {
	entries := make([]models.LogEntry, n)
	for i := range entries {
		entries[i] = models.LogEntry{
			Year:   c.year,
			Month:  c.rng.IntN(models.MonthsPerYear) + 1,
			Day:    c.rng.IntN(28) + 1,
			Hour:   c.rng.IntN(models.HoursPerDay),
			Minute: c.rng.IntN(60),
		}
	}

	slices.SortStableFunc(entries, func(a, b models.LogEntry) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		default:
			return 0
		}
	})
	return entries
}

// WriteLogfile writes n random entries to w in the format NewLogfileReader reads.
func (c *LogfileCreator) WriteLogfile(w io.Writer, n int) error {
	bw := bufio.NewWriter(w)
	for _, entry := range c.CreateEntries(n) {
		if _, err := fmt.Fprintln(bw, entry.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
