// Package lunar converts Gregorian dates to the Chinese lunisolar
// calendar. The supported span is 1901-02-19 through 2101-01-28; the
// month-length and leap-month data for that span is embedded, so every
// conversion is a pure table walk with no I/O.
package lunar

import (
	"fmt"
	"time"
)

// yearInfo packs one lunar year into 17 bits: the low nibble is the
// leap month number (0 when the year has none), bits 4..15 are the
// big/small flags for months 12..1, and bit 16 is set when the leap
// month has 30 days. Index 0 is lunar year 1900.
var yearInfo = [201]uint32{
	0x04bd8, 0x04ae0, 0x0a570, 0x054d5, 0x0d260, 0x0d950, 0x16554, 0x056a0, 0x09ad0, 0x055d2,
	0x04ae0, 0x0a5b6, 0x0a4d0, 0x0d250, 0x1d295, 0x0b550, 0x056a0, 0x0ada2, 0x095b0, 0x14977,
	0x049b0, 0x0a4b0, 0x0b4b5, 0x06a50, 0x06d40, 0x1ab54, 0x02b60, 0x09570, 0x052f2, 0x04970,
	0x06566, 0x0d4a0, 0x0ea50, 0x16a95, 0x05ad0, 0x02b60, 0x186e3, 0x092e0, 0x1c8d7, 0x0c950,
	0x0d4a0, 0x1d8a6, 0x0b550, 0x056a0, 0x1a5b4, 0x025d0, 0x092d0, 0x0d2b2, 0x0a950, 0x0b557,
	0x06ca0, 0x0b550, 0x15355, 0x04da0, 0x0a5b0, 0x14573, 0x052b0, 0x0a9a8, 0x0e950, 0x06aa0,
	0x0aea6, 0x0ab50, 0x04b60, 0x0aae4, 0x0a570, 0x05260, 0x0f263, 0x0d950, 0x05b57, 0x056a0,
	0x096d0, 0x04dd5, 0x04ad0, 0x0a4d0, 0x0d4d4, 0x0d250, 0x0d558, 0x0b540, 0x0b6a0, 0x195a6,
	0x095b0, 0x049b0, 0x0a974, 0x0a4b0, 0x0b27a, 0x06a50, 0x06d40, 0x0af46, 0x0ab60, 0x09570,
	0x04af5, 0x04970, 0x064b0, 0x074a3, 0x0ea50, 0x06b58, 0x05ac0, 0x0ab60, 0x096d5, 0x092e0,
	0x0c960, 0x0d954, 0x0d4a0, 0x0da50, 0x07552, 0x056a0, 0x0abb7, 0x025d0, 0x092d0, 0x0cab5,
	0x0a950, 0x0b4a0, 0x0baa4, 0x0ad50, 0x055d9, 0x04ba0, 0x0a5b0, 0x15176, 0x052b0, 0x0a930,
	0x07954, 0x06aa0, 0x0ad50, 0x05b52, 0x04b60, 0x0a6e6, 0x0a4e0, 0x0d260, 0x0ea65, 0x0d530,
	0x05aa0, 0x076a3, 0x096d0, 0x04afb, 0x04ad0, 0x0a4d0, 0x1d0b6, 0x0d250, 0x0d520, 0x0dd45,
	0x0b5a0, 0x056d0, 0x055b2, 0x049b0, 0x0a577, 0x0a4b0, 0x0aa50, 0x1b255, 0x06d20, 0x0ada0,
	0x14b63, 0x09370, 0x049f8, 0x04970, 0x064b0, 0x168a6, 0x0ea50, 0x06aa0, 0x1a6c4, 0x0aae0,
	0x092e0, 0x0d2e3, 0x0c960, 0x0d557, 0x0d4a0, 0x0da50, 0x05d55, 0x056a0, 0x0a6d0, 0x055d4,
	0x052d0, 0x0a9b8, 0x0a950, 0x0b4a0, 0x0b6a6, 0x0ad50, 0x055a0, 0x0aba4, 0x0a5b0, 0x052b0,
	0x0b273, 0x06930, 0x07337, 0x06aa0, 0x0ad50, 0x14b55, 0x04b60, 0x0a570, 0x054e4, 0x0d160,
	0x0e968, 0x0d520, 0x0daa0, 0x16aa6, 0x056d0, 0x04ae0, 0x0a9d4, 0x0a2d0, 0x0d150, 0x0f252,
	0x0d520,
}

const (
	firstYear = 1900
	lastYear  = 2100
)

// Julian day numbers of the span boundaries. baseJDN is lunar
// 1900-01-01 (Gregorian 1900-01-31); the usable span starts one lunar
// year later to match the reference calendar's limits.
var (
	baseJDN = julianDayNumber(1900, 1, 31)
	minJDN  = julianDayNumber(1901, 2, 19)
	maxJDN  = julianDayNumber(2101, 1, 28)
)

// RangeError reports a date outside the supported lunisolar span.
type RangeError struct {
	Date time.Time
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("date %s is outside the supported lunisolar range (1901-02-19..2101-01-28)",
		e.Date.Format("2006-01-02"))
}

// julianDayNumber converts a calendar day to its julian day number.
func julianDayNumber(year, month, day int) int {
	// nolint:gomnd // well-known algorithm to calculate julian date number
	return day - 32075 + 1461*(year+4800+(month-14)/12)/4 + 367*(month-2-(month-14)/12*12)/12 -
		3*((year+4900+(month-14)/12)/100)/4
}

func julianDate(t time.Time) int {
	year, m, day := t.Date()
	return julianDayNumber(year, int(m), day)
}

// leapMonthNumber returns the month number that repeats in the given
// lunar year, 0 when the year has no leap month.
func leapMonthNumber(year int) int {
	return int(yearInfo[year-firstYear] & 0xf)
}

// leapMonthDays returns the length of the year's leap month, 0 when
// the year has none.
func leapMonthDays(year int) int {
	if leapMonthNumber(year) == 0 {
		return 0
	}
	if yearInfo[year-firstYear]&0x10000 != 0 {
		return 30
	}
	return 29
}

// monthDays returns the length of regular month m (1..12).
func monthDays(year, m int) int {
	if yearInfo[year-firstYear]&(0x10000>>uint(m)) != 0 {
		return 30
	}
	return 29
}

// yearDays returns the total day count of the lunar year, leap month
// included.
func yearDays(year int) int {
	days := 12 * 29
	for mask := uint32(0x8000); mask > 0x8; mask >>= 1 {
		if yearInfo[year-firstYear]&mask != 0 {
			days++
		}
	}
	return days + leapMonthDays(year)
}

// Calendar exposes the raw lunisolar accessors. The month index it
// reports includes the leap slot: in a year with a leap 4th month the
// 4th month is 4, the leap 4th month is 5 and the 5th month is 6.
// Use FromTime for the normalized representation.
type Calendar struct{}

// decompose walks the embedded table from the 1900-01-31 anchor.
func (Calendar) decompose(t time.Time) (year, monthSlot, day int, err error) {
	jdn := julianDate(t)
	if jdn < minJDN || jdn > maxJDN {
		return 0, 0, 0, &RangeError{Date: t}
	}

	offset := jdn - baseJDN
	year = firstYear
	for {
		yd := yearDays(year)
		if offset < yd {
			break
		}
		offset -= yd
		year++
	}

	leap := leapMonthNumber(year)
	monthSlot = 1
	for m := 1; m <= 12; m++ {
		days := monthDays(year, m)
		if offset < days {
			return year, monthSlot, offset + 1, nil
		}
		offset -= days
		monthSlot++

		if m == leap {
			days = leapMonthDays(year)
			if offset < days {
				return year, monthSlot, offset + 1, nil
			}
			offset -= days
			monthSlot++
		}
	}
	// The year walk guarantees offset < yearDays(year).
	panic("lunar: month walk exhausted year")
}

// Year returns the lunar year containing t.
func (c Calendar) Year(t time.Time) (int, error) {
	year, _, _, err := c.decompose(t)
	return year, err
}

// Month returns the month index of t including the leap slot (1..13).
func (c Calendar) Month(t time.Time) (int, error) {
	_, month, _, err := c.decompose(t)
	return month, err
}

// DayOfMonth returns the lunar day of month of t (1..30).
func (c Calendar) DayOfMonth(t time.Time) (int, error) {
	_, _, day, err := c.decompose(t)
	return day, err
}

// LeapMonth returns the slot index of the year's leap month: a year
// with a leap 4th month reports 5, and 0 means the year has no leap
// month. This mirrors the slotted values reported by Month.
func (Calendar) LeapMonth(year int) int {
	if year < firstYear || year > lastYear {
		return 0
	}
	if n := leapMonthNumber(year); n > 0 {
		return n + 1
	}
	return 0
}
