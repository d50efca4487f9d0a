// Package plan computes the commit schedule for a backfill run.
package plan

import "time"

// Commit timestamps for a day are spread across a fixed window,
// 08:00:00.000000 through 23:59:59.999999 local time.
const (
	windowStartHour = 8
	windowEndNanos  = 999999000 // 23:59:59.999999
)

// Window returns the start and end of the commit window for the given day.
func Window(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), windowStartHour, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, windowEndNanos, day.Location())
	return start, end
}

// Timestamps returns count commit times spread across the given day.
// For count == 0 the result is empty; for count == 1 it is the window
// start; otherwise timestamps are evenly spaced from window start to
// window end, both inclusive.
func Timestamps(day time.Time, count int) []time.Time {
	if count <= 0 {
		return nil
	}
	start, end := Window(day)
	if count == 1 {
		return []time.Time{start}
	}

	span := float64(end.Sub(start))
	out := make([]time.Time, count)
	for i := range out {
		out[i] = start.Add(time.Duration(span * float64(i) / float64(count-1)))
	}
	return out
}

// Days returns the first day of the backfill window and the total number
// of days to process: from January 1 of startYear through today inclusive,
// clamped to maxDays when maxDays > 0 and floored at zero when the start
// year lies in the future.
func Days(startYear int, today time.Time, maxDays int) (time.Time, int) {
	start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, today.Location())

	total := daysBetween(start, today) + 1
	if total < 0 {
		total = 0
	}
	if maxDays > 0 && total > maxDays {
		total = maxDays
	}
	return start, total
}

// daysBetween returns the number of calendar days from a to b.
// Both are reduced to UTC midnights first so DST transitions in the
// local zone cannot skew the count.
func daysBetween(a, b time.Time) int {
	am := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bm := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bm.Sub(am) / (24 * time.Hour))
}
