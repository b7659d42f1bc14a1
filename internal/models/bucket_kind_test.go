package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketKind_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     BucketKind
		expected int
	}{
		{name: "hour", kind: BucketHour, expected: 24},
		{name: "day", kind: BucketDay, expected: 31},
		{name: "month", kind: BucketMonth, expected: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.kind.Size())
		})
	}
}

func TestBucketKind_Size_Invalid(t *testing.T) {
	t.Parallel()

	invalidKind := BucketKind("week")
	assert.Panics(t, func() {
		invalidKind.Size()
	}, "Size should panic on invalid BucketKind")
}

func TestBucketKind_BucketID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     BucketKind
		index    int
		expected string
	}{
		{name: "first hour is zero", kind: BucketHour, index: 0, expected: "hour-00"},
		{name: "last hour", kind: BucketHour, index: 23, expected: "hour-23"},
		{name: "first day is one", kind: BucketDay, index: 0, expected: "day-01"},
		{name: "last day", kind: BucketDay, index: 30, expected: "day-31"},
		{name: "first month is one", kind: BucketMonth, index: 0, expected: "month-01"},
		{name: "last month", kind: BucketMonth, index: 11, expected: "month-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.kind.BucketID(tt.index))
		})
	}
}

func TestBucketKind_BucketID_Invalid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		BucketKind("").BucketID(0)
	}, "BucketID should panic on invalid BucketKind")
}

func TestNewBucketKindFromString(t *testing.T) {
	t.Parallel()

	kind, err := NewBucketKindFromString(" Month ")
	require.NoError(t, err)
	assert.Equal(t, BucketMonth, kind)

	_, err = NewBucketKindFromString("minute")
	assert.Error(t, err)
}
