// Package holiday answers whether a calendar date is a mainland-China
// holiday (or a regional-variant one) and which holiday it is. A
// date-ordered catalog of published schedule records is consulted
// first; when it has nothing for the day, computed rules for the
// fixed-date and lunar-anchored festivals fill in, and plain weekends
// cover the rest.
package holiday

import (
	"time"
)

// Status tells what a record means for the day it covers.
type Status int

const (
	// Normal days follow the regular week: work Monday to Friday.
	Normal Status = iota
	// On marks a paid holiday.
	On
	// Off marks a compensatory workday, a weekend worked to pay for
	// an extended holiday.
	Off
)

func (s Status) String() string {
	switch s {
	case Normal:
		return "Normal"
	case On:
		return "On"
	case Off:
		return "Off"
	default:
		return "Unknown"
	}
}

// StatusOf maps an ingestion ordinal to a Status. Out-of-range values
// collapse to Normal rather than poisoning the record.
func StatusOf(ordinal int) Status {
	if ordinal < int(Normal) || ordinal > int(Off) {
		return Normal
	}
	return Status(ordinal)
}

// Record is one holiday schedule entry: Days consecutive days
// starting at Date, all sharing Status.
type Record struct {
	Name     string
	Category string
	Date     time.Time
	Days     int
	Status   Status
}

// Covers reports whether day falls inside the record's span. Both
// times are compared at day granularity.
func (r Record) Covers(day time.Time) bool {
	d := julianDate(day) - julianDate(r.Date)
	return d >= 0 && d < r.Days
}

// julianDate keys a wall-clock day regardless of timezone.
func julianDate(t time.Time) int {
	year, m, day := t.Date()
	month := int(m)
	// nolint:gomnd // well-known algorithm to calculate julian date number
	return day - 32075 + 1461*(year+4800+(month-14)/12)/4 + 367*(month-2-(month-14)/12*12)/12 -
		3*((year+4900+(month-14)/12)/100)/4
}
