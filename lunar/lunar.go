package lunar

import (
	"time"
)

var (
	stems    = []rune("甲乙丙丁戊己庚辛壬癸")
	branches = []rune("子丑寅卯辰巳午未申酉戌亥")
	zodiacs  = []rune("鼠牛虎兔龙蛇马羊猴鸡狗猪")

	monthNames = []string{"正", "二", "三", "四", "五", "六", "七", "八", "九", "十", "冬", "腊"}
	dayOnes    = []string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
)

// Lunar is the lunisolar representation of a Gregorian date. Month is
// always 1..12; when the date falls inside the year's leap month,
// IsLeapMonth is set and Month names the month being repeated.
type Lunar struct {
	// Date is the Gregorian date the value was derived from.
	Date time.Time

	Year        int
	Month       int
	Day         int
	IsLeapMonth bool
}

// FromTime converts a Gregorian date. Only the calendar day of t is
// significant; time of day is ignored. Returns a *RangeError outside
// the supported span.
func FromTime(t time.Time) (Lunar, error) {
	var cal Calendar
	year, monthSlot, day, err := cal.decompose(t)
	if err != nil {
		return Lunar{}, err
	}

	// Remove the leap-slot insertion so Month stays in 1..12.
	leap := cal.LeapMonth(year)
	month := monthSlot
	isLeap := false
	if leap > 0 {
		if monthSlot == leap {
			isLeap = true
			month = monthSlot - 1
		} else if monthSlot > leap {
			month = monthSlot - 1
		}
	}

	return Lunar{Date: t, Year: year, Month: month, Day: day, IsLeapMonth: isLeap}, nil
}

// MustFromTime is FromTime panicking on out-of-range dates.
func MustFromTime(t time.Time) Lunar {
	l, err := FromTime(t)
	if err != nil {
		panic(err)
	}
	return l
}

// Ganzhi returns the stem-branch year name, e.g. "甲辰".
func (l Lunar) Ganzhi() string {
	return string([]rune{stems[(l.Year-4)%10], branches[(l.Year-4)%12]})
}

// Zodiac returns the year's zodiac animal, e.g. "龙".
func (l Lunar) Zodiac() string {
	return string(zodiacs[(l.Year-4)%12])
}

// MonthText returns the Chinese month name without the leap prefix,
// e.g. "正", "十", "腊". Callers render leap months by prepending "闰".
func (l Lunar) MonthText() string {
	if l.Month < 1 || l.Month > 12 {
		return ""
	}
	return monthNames[l.Month-1]
}

// DayText returns the conventional day name: 初一..初十, 十一..十九,
// 二十, 廿一..廿九, 三十.
func (l Lunar) DayText() string {
	d := l.Day
	switch {
	case d < 1 || d > 30:
		return ""
	case d == 10:
		return "初十"
	case d < 10:
		return "初" + dayOnes[d]
	case d < 20:
		return "十" + dayOnes[d-10]
	case d == 20:
		return "二十"
	case d == 30:
		return "三十"
	default:
		return "廿" + dayOnes[d-20]
	}
}

// String formats the date as "甲辰年正月初一"; leap months carry the
// 闰 prefix.
func (l Lunar) String() string {
	leap := ""
	if l.IsLeapMonth {
		leap = "闰"
	}
	return l.Ganzhi() + "年" + leap + l.MonthText() + "月" + l.DayText()
}
