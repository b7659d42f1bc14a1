package aggregators

import (
	"weblog-stats/internal/ingestors"
	"weblog-stats/internal/models"
)

// AccessAggregator counts log entries per hour of day, day of month and month
// of year, and answers statistical queries over those counts.
//
// Each Analyze* pass drains the current source completely and fills exactly one
// counter array. Sources are single-pass: running a second pass against a
// drained source counts nothing, so supply a fresh source with SetSource before
// each pass. Counters are never reset; use a new AccessAggregator instead.
//
// Entries are not range checked. An hour outside [0,23], a day outside [1,31]
// or a month outside [1,12] panics with an index out of range.
//
// An AccessAggregator must not be used from several goroutines at once.
type AccessAggregator struct {
	hourCounts  [models.HoursPerDay]int
	dayCounts   [models.DaysPerMonth]int
	monthCounts [models.MonthsPerYear]int

	source ingestors.EntrySource
}

// NewAccessAggregator returns an aggregator with zeroed counters reading from source.
// A nil source is replaced by an empty one.
func NewAccessAggregator(source ingestors.EntrySource) *AccessAggregator {
	a := &AccessAggregator{}
	a.SetSource(source)
	return a
}

// SetSource replaces the source read by the next Analyze* pass.
func (a *AccessAggregator) SetSource(source ingestors.EntrySource) {
	if source == nil {
		source = ingestors.NewEmptySource()
	}
	a.source = source
}

// AnalyzeHourly counts every remaining entry of the source by hour.
func (a *AccessAggregator) AnalyzeHourly() error {
	return a.drain(func(entry models.LogEntry) {
		a.hourCounts[entry.Hour]++
	})
}

// AnalyzeDaily counts every remaining entry of the source by day of month.
func (a *AccessAggregator) AnalyzeDaily() error {
	return a.drain(func(entry models.LogEntry) {
		a.dayCounts[entry.Day-1]++
	})
}

// AnalyzeMonthly counts every remaining entry of the source by month.
func (a *AccessAggregator) AnalyzeMonthly() error {
	return a.drain(func(entry models.LogEntry) {
		a.monthCounts[entry.Month-1]++
	})
}

// drain stops at the first failing Next; entries counted before it stay counted.
func (a *AccessAggregator) drain(count func(models.LogEntry)) error {
	for a.source.HasNext() {
		entry, err := a.source.Next()
		if err != nil {
			return err
		}
		count(entry)
	}
	return nil
}

// NumberOfAccesses returns the number of entries counted by AnalyzeHourly.
func (a *AccessAggregator) NumberOfAccesses() int {
	return sum(a.hourCounts[:])
}

// AverageAccessesPerMonth returns the monthly total divided by 12, truncated.
// It is 0 until AnalyzeMonthly has counted something.
func (a *AccessAggregator) AverageAccessesPerMonth() int {
	return sum(a.monthCounts[:]) / models.MonthsPerYear
}

// BusiestHour returns the hour with the most accesses, the earliest on ties.
func (a *AccessAggregator) BusiestHour() int {
	return busiestIndex(a.hourCounts[:])
}

// QuietestHour returns the hour with the fewest accesses, the earliest on ties.
func (a *AccessAggregator) QuietestHour() int {
	return quietestIndex(a.hourCounts[:])
}

// BusiestDay returns the day of month (1-31) with the most accesses.
func (a *AccessAggregator) BusiestDay() int {
	return busiestIndex(a.dayCounts[:]) + 1
}

// QuietestDay returns the day of month (1-31) with the fewest accesses.
func (a *AccessAggregator) QuietestDay() int {
	return quietestIndex(a.dayCounts[:]) + 1
}

// BusiestMonth returns the month (1-12) with the most accesses.
func (a *AccessAggregator) BusiestMonth() int {
	return busiestIndex(a.monthCounts[:]) + 1
}

// QuietestMonth returns the month (1-12) with the fewest accesses.
func (a *AccessAggregator) QuietestMonth() int {
	return quietestIndex(a.monthCounts[:]) + 1
}

// BusiestDoubleHour returns the first hour of the busiest pair of adjacent
// hours (h, h+1), h in [0,22]. The earliest pair wins ties; with no accesses it is 0.
func (a *AccessAggregator) BusiestDoubleHour() int {
	busiest, busiestTotal := 0, 0
	for hour := 0; hour < len(a.hourCounts)-1; hour++ {
		total := a.hourCounts[hour] + a.hourCounts[hour+1]
		if total > busiestTotal {
			busiest, busiestTotal = hour, total
		}
	}
	return busiest
}

// HourCounts returns a copy of the hourly counters, index = hour.
func (a *AccessAggregator) HourCounts() [models.HoursPerDay]int {
	return a.hourCounts
}

// DayCounts returns a copy of the daily counters, index = day - 1.
func (a *AccessAggregator) DayCounts() [models.DaysPerMonth]int {
	return a.dayCounts
}

// MonthCounts returns a copy of the monthly counters, index = month - 1.
func (a *AccessAggregator) MonthCounts() [models.MonthsPerYear]int {
	return a.monthCounts
}

func busiestIndex(counts []int) int {
	busiest := 0
	for i, count := range counts {
		if count > counts[busiest] {
			busiest = i
		}
	}
	return busiest
}

func quietestIndex(counts []int) int {
	quietest := 0
	for i, count := range counts {
		if count < counts[quietest] {
			quietest = i
		}
	}
	return quietest
}

func sum(counts []int) int {
	total := 0
	for _, count := range counts {
		total += count
	}
	return total
}
