package models

import (
	"fmt"
	"strings"
)

// BucketKind names one of the fixed counter arrays.
type BucketKind string

const (
	BucketHour  BucketKind = "hour"
	BucketDay   BucketKind = "day"
	BucketMonth BucketKind = "month"
)

// NewBucketKindFromString parses a bucket kind, case-insensitively.
func NewBucketKindFromString(s string) (BucketKind, error) {
	switch kind := BucketKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case BucketHour, BucketDay, BucketMonth:
		return kind, nil
	default:
		return "", fmt.Errorf("invalid bucket kind: %q", s)
	}
}

// Size returns the number of slots of the kind's counter array.
func (k BucketKind) Size() int {
	switch k {
	case BucketHour:
		return HoursPerDay
	case BucketDay:
		return DaysPerMonth
	case BucketMonth:
		return MonthsPerYear
	default:
		panic(fmt.Sprintf("invalid BucketKind: %q", k))
	}
}

// FirstValue is the value stored at index 0: hours start at 0, days and months at 1.
func (k BucketKind) FirstValue() int {
	if k.Size() == HoursPerDay {
		return 0
	}
	return 1
}

// BucketID labels the slot at index, e.g. "hour-05", "day-01", "month-12".
func (k BucketKind) BucketID(index int) string {
	return fmt.Sprintf("%s-%02d", k, index+k.FirstValue())
}
