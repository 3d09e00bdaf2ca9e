package progress

import (
	"slices"
	"time"
)

// StreakPolicy controls how far back the most recent run may end and still
// count as the current streak.
type StreakPolicy struct {
	// GraceDays is the number of days before today on which the current run
	// may end. 0 requires activity today; 1 also accepts yesterday.
	GraceDays int
}

// DefaultStreakPolicy keeps a streak alive until the end of the day after the
// last activity.
func DefaultStreakPolicy() StreakPolicy {
	return StreakPolicy{GraceDays: 1}
}

// Streaks holds run lengths in days.
type Streaks struct {
	Current int
	Longest int
}

type dayRun struct {
	start, end time.Time
	length     int
	// throughToday counts the run's days on or before today.
	throughToday int
}

// ComputeStreaks finds runs of consecutive calendar days in dates. Dates are
// truncated to days in now's location and de-duplicated, so order and
// repeats do not matter.
func ComputeStreaks(dates []time.Time, now time.Time, policy StreakPolicy) Streaks {
	days := CalendarDays(dates, now.Location())
	if len(days) == 0 {
		return Streaks{}
	}

	today := startOfDay(now, now.Location())
	cutoff := today.AddDate(0, 0, -max(policy.GraceDays, 0))

	var runs []dayRun
	var cur dayRun
	for i, d := range days {
		if i == 0 || !d.Equal(cur.end.AddDate(0, 0, 1)) {
			if i > 0 {
				runs = append(runs, cur)
			}
			cur = dayRun{start: d}
		}
		cur.end = d
		cur.length++
		if !d.After(today) {
			cur.throughToday++
		}
	}
	runs = append(runs, cur)

	// Days after today never extend the current streak.
	var s Streaks
	for _, r := range runs {
		s.Longest = max(s.Longest, r.length)
		if r.throughToday == 0 {
			continue
		}
		lastCounted := r.start.AddDate(0, 0, r.throughToday-1)
		if !lastCounted.Before(cutoff) {
			s.Current = r.throughToday
		}
	}
	return s
}

// CalendarDays normalises timestamps to midnight in loc, removes duplicates
// and sorts ascending.
func CalendarDays(dates []time.Time, loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.UTC
	}
	seen := make(map[time.Time]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := startOfDay(d, loc)
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })
	return days
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
