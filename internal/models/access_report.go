package models

import "time"

// AccessReport is the result of one analysis run: the three counter arrays and
// the statistics derived from them.
//
// Example JSON (counters shortened):
//
//	{
//	  "reportId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "generatedAt": "2025-12-28T18:03:00Z",
//	  "hourCounts": [3, 1, 4, 1, 5, 9, 2, 6, ...],
//	  "dayCounts": [12, 0, 7, ...],
//	  "monthCounts": [30, 7, 0, ...],
//	  "numberOfAccesses": 37,
//	  "averageAccessesPerMonth": 3,
//	  "busiestHour": 5,
//	  "quietestHour": 8,
//	  "busiestDoubleHour": 4,
//	  "busiestDay": 1,
//	  "quietestDay": 2,
//	  "busiestMonth": 1,
//	  "quietestMonth": 3
//	}
//
// Hours are 0-based, days and months are 1-based. BusiestDoubleHour is the
// first hour of the busiest pair of adjacent hours.
type AccessReport struct {
	ReportID    string    `json:"reportId"`
	GeneratedAt time.Time `json:"generatedAt"`

	HourCounts  [HoursPerDay]int   `json:"hourCounts"`
	DayCounts   [DaysPerMonth]int  `json:"dayCounts"`
	MonthCounts [MonthsPerYear]int `json:"monthCounts"`

	NumberOfAccesses        int `json:"numberOfAccesses"`
	AverageAccessesPerMonth int `json:"averageAccessesPerMonth"`
	BusiestHour             int `json:"busiestHour"`
	QuietestHour            int `json:"quietestHour"`
	BusiestDoubleHour       int `json:"busiestDoubleHour"`
	BusiestDay              int `json:"busiestDay"`
	QuietestDay             int `json:"quietestDay"`
	BusiestMonth            int `json:"busiestMonth"`
	QuietestMonth           int `json:"quietestMonth"`
}

// BucketCount is one labelled slot of a counter array.
type BucketCount struct {
	BucketID string `json:"bucketId"`
	Value    int    `json:"value"`
	Count    int    `json:"count"`
}

// Counts returns a copy of the counter array of the given kind.
func (r *AccessReport) Counts(kind BucketKind) []int {
	switch kind {
	case BucketHour:
		return append([]int(nil), r.HourCounts[:]...)
	case BucketDay:
		return append([]int(nil), r.DayCounts[:]...)
	case BucketMonth:
		return append([]int(nil), r.MonthCounts[:]...)
	default:
		panic("invalid BucketKind: " + string(kind))
	}
}

// Buckets returns the (label, count) pairs of the given kind in bucket order.
func (r *AccessReport) Buckets(kind BucketKind) []BucketCount {
	counts := r.Counts(kind)
	buckets := make([]BucketCount, len(counts))
	for i, count := range counts {
		buckets[i] = BucketCount{
			BucketID: kind.BucketID(i),
			Value:    i + kind.FirstValue(),
			Count:    count,
		}
	}
	return buckets
}
