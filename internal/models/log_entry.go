package models

import "fmt"

const (
	HoursPerDay   = 24
	DaysPerMonth  = 31
	MonthsPerYear = 12
)

// LogEntry is one access read from a web server log.
// Hour is in [0,23], Day in [1,31], Month in [1,12]. Fields are taken as read,
// no calendar consistency is enforced (day 31 of a 30 day month is kept).
type LogEntry struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// String formats the entry the way a log line is written: "year month day hour minute".
func (e LogEntry) String() string {
	return fmt.Sprintf("%d %02d %02d %02d %02d", e.Year, e.Month, e.Day, e.Hour, e.Minute)
}

// Before reports whether e happened strictly before other.
func (e LogEntry) Before(other LogEntry) bool {
	if e.Year != other.Year {
		return e.Year < other.Year
	}
	if e.Month != other.Month {
		return e.Month < other.Month
	}
	if e.Day != other.Day {
		return e.Day < other.Day
	}
	if e.Hour != other.Hour {
		return e.Hour < other.Hour
	}
	return e.Minute < other.Minute
}
