// Package week maps calendar dates onto month-scoped week buckets and the
// string keys the progress document is indexed by.
//
// A week bucket is a (year, month, week-of-month) triple. Week boundaries
// align to calendar weeks starting Sunday, but a bucket never spans two
// months: the first and last buckets of a month may hold fewer than seven
// days.
package week

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OfMonth returns the 1-based week-of-month for a date. Computed as
// ceil((firstWeekday + dayOfMonth) / 7) with Sunday as weekday 0.
func OfMonth(date time.Time) int {
	first := int(time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).Weekday())
	return (first + date.Day() + 6) / 7
}

// Key returns the bucket key, e.g. "2026-1-week2". Month and week are
// unpadded, so keys sort lexicographically only within a single year.
func Key(year, month, weekNum int) string {
	return fmt.Sprintf("%d-%d-week%d", year, month, weekNum)
}

// KeyFor returns the bucket key for a date.
func KeyFor(date time.Time) string {
	return Key(date.Year(), int(date.Month()), OfMonth(date))
}

// DateKey returns the canonical key for a single date, e.g. "2026-1-5".
func DateKey(year, month, day int) string {
	return fmt.Sprintf("%d-%d-%d", year, month, day)
}

// DateKeyFor returns the canonical date key for a time value.
func DateKeyFor(date time.Time) string {
	return DateKey(date.Year(), int(date.Month()), date.Day())
}

// ParseDateKey parses a "{year}-{month}-{day}" key into a date at midnight
// UTC. Zero-padded components are accepted; callers should re-derive the
// canonical key with DateKeyFor before using it as a map index.
func ParseDateKey(key string) (time.Time, error) {
	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("date key %q: want year-month-day", key)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("date key %q: %w", key, err)
		}
		nums[i] = n
	}
	if nums[1] < 1 || nums[1] > 12 {
		return time.Time{}, fmt.Errorf("date key %q: month out of range", key)
	}
	if nums[2] < 1 || nums[2] > daysInMonth(nums[0], time.Month(nums[1])) {
		return time.Time{}, fmt.Errorf("date key %q: day out of range", key)
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.UTC), nil
}

// ParseKey parses a "{year}-{month}-week{n}" bucket key.
func ParseKey(key string) (year, month, weekNum int, err error) {
	parts := strings.Split(key, "-")
	if len(parts) != 3 || !strings.HasPrefix(parts[2], "week") {
		return 0, 0, 0, fmt.Errorf("week key %q: want year-month-weekN", key)
	}
	if year, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("week key %q: %w", key, err)
	}
	if month, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("week key %q: %w", key, err)
	}
	if weekNum, err = strconv.Atoi(strings.TrimPrefix(parts[2], "week")); err != nil {
		return 0, 0, 0, fmt.Errorf("week key %q: %w", key, err)
	}
	return year, month, weekNum, nil
}

// Days returns the days of the month that fall in the given bucket, in
// ascending order. Buckets at the edges of a month return fewer than seven
// days; an out-of-range week number returns nil.
func Days(year, month, weekNum int) []int {
	var days []int
	m := time.Month(month)
	for d := 1; d <= daysInMonth(year, m); d++ {
		if OfMonth(time.Date(year, m, d, 0, 0, 0, 0, time.UTC)) == weekNum {
			days = append(days, d)
		}
	}
	return days
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
