// Package accounting holds the pure time-accounting functions: elapsed hours,
// daily and weekly totals, and display formatting. Everything here is
// deterministic given its inputs; "now" is always passed in explicitly so an
// open shift accrues hours without the package reading the wall clock.
package accounting

import (
	"fmt"
	"math"
	"time"

	"github.com/contoso/timereg-backend-go/internal/domain/timerecord"
)

// HoursBetween returns the elapsed time between start and end in fractional
// hours. A nil end means the shift is still open and now stands in for it.
func HoursBetween(start time.Time, end *time.Time, now time.Time) float64 {
	stop := now
	if end != nil {
		stop = *end
	}
	return stop.Sub(start).Hours()
}

// FormatDuration renders fractional hours as "{h}h {m}m". Minutes are
// rounded; rounding up to 60 rolls over into the hour component.
func FormatDuration(hours float64) string {
	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// SameDay reports whether a and b fall on the same calendar date in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// TodayTotal sums the hours of every record checked in on the same calendar
// date as now, in loc. Open records accrue up to now.
func TodayTotal(records []timerecord.TimeRecord, now time.Time, loc *time.Location) float64 {
	var total float64
	for _, r := range records {
		if SameDay(r.CheckInTime, now, loc) {
			total += HoursBetween(r.CheckInTime, r.CheckOutTime, now)
		}
	}
	return total
}

// MostRecentMonday returns midnight of the Monday of ref's week in loc.
// Sunday maps back six days, so the week runs Monday through Sunday.
func MostRecentMonday(ref time.Time, loc *time.Location) time.Time {
	local := ref.In(loc)
	back := int(local.Weekday()) - int(time.Monday)
	if back < 0 {
		back = 6
	}
	monday := local.AddDate(0, 0, -back)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, loc)
}

// WeekTotal sums the hours of every record checked in since the most recent
// Monday midnight relative to now, in loc.
func WeekTotal(records []timerecord.TimeRecord, now time.Time, loc *time.Location) float64 {
	return TotalSince(records, MostRecentMonday(now, loc), now)
}

// TotalSince sums the hours of every record checked in at or after cutoff.
func TotalSince(records []timerecord.TimeRecord, cutoff time.Time, now time.Time) float64 {
	var total float64
	for _, r := range records {
		if !r.CheckInTime.Before(cutoff) {
			total += HoursBetween(r.CheckInTime, r.CheckOutTime, now)
		}
	}
	return total
}

// ElapsedClock renders the time since checkIn as "HH:MM:SS" for live display.
func ElapsedClock(checkIn time.Time, now time.Time) string {
	d := now.Sub(checkIn)
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}
