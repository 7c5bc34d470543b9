package holiday

import (
	"time"

	"github.com/almanachq/chinacal/lunar"
)

// Rule computes whether a festival falls on the given day without
// consulting the catalog. Rules back the resolver up for years the
// published schedules do not cover.
type Rule func(day time.Time) (Record, bool)

// The four Gregorian fixed-date holidays.

func yuandanRule(day time.Time) (Record, bool) {
	return fixedDateRule(day, "元旦", time.January, 1, 1)
}

func qingmingRule(day time.Time) (Record, bool) {
	return fixedDateRule(day, "清明节", time.April, 5, 1)
}

func laodongRule(day time.Time) (Record, bool) {
	return fixedDateRule(day, "劳动节", time.May, 1, 3)
}

func guoqingRule(day time.Time) (Record, bool) {
	return fixedDateRule(day, "国庆节", time.October, 1, 3)
}

func fixedDateRule(day time.Time, name string, month time.Month, dom, span int) (Record, bool) {
	if day.Month() != month || day.Day() != dom {
		return Record{}, false
	}
	return Record{Name: name, Date: day, Days: span, Status: On}, true
}

// chunjieRule matches the Spring Festival window: lunar new year's
// eve plus days 1..6 of the first month. The eve is detected as the
// day in the year's last month whose next day is month 1 day 1; some
// last months end on day 29, so the eve cannot be assumed to be day
// 30. A leap instance of the month never counts.
func chunjieRule(day time.Time) (Record, bool) {
	var cal lunar.Calendar

	year, err := cal.Year(day)
	if err != nil {
		return Record{}, false
	}
	leap := cal.LeapMonth(year)

	lastMonth := 12
	if leap > 0 {
		lastMonth = 13
	}
	month, err := cal.Month(day)
	if err != nil || (month != lastMonth && month != 1) {
		return Record{}, false
	}

	dom, err := cal.DayOfMonth(day)
	if err != nil {
		return Record{}, false
	}
	nextDom, err := cal.DayOfMonth(day.AddDate(0, 0, 1))
	isLastDay := err == nil && nextDom == 1

	if (month == lastMonth && isLastDay && month != leap) ||
		(month == 1 && dom <= 6 && month != leap) {
		return Record{Name: "春节", Date: day, Days: 7, Status: On}, true
	}
	return Record{}, false
}

// duanwuRule matches Dragon Boat: lunar month 5 day 5. When the year
// inserts a leap month at or before month 5, the slotted index of the
// real 5th month shifts to 6.
func duanwuRule(day time.Time) (Record, bool) {
	return slottedLunarRule(day, "端午节", 5, 5, 1)
}

// zhongqiuRule matches Mid-Autumn: lunar month 8 day 15, with the
// same leap shift as duanwuRule.
func zhongqiuRule(day time.Time) (Record, bool) {
	return slottedLunarRule(day, "中秋节", 8, 15, 1)
}

func slottedLunarRule(day time.Time, name string, targetMonth, targetDay, span int) (Record, bool) {
	var cal lunar.Calendar

	year, err := cal.Year(day)
	if err != nil {
		return Record{}, false
	}
	month, err := cal.Month(day)
	if err != nil {
		return Record{}, false
	}
	dom, err := cal.DayOfMonth(day)
	if err != nil {
		return Record{}, false
	}

	leap := cal.LeapMonth(year)
	target := targetMonth
	if leap > 0 && leap < month {
		target++
	}

	if month == target && dom == targetDay && month != leap {
		return Record{Name: name, Date: day, Days: span, Status: On}, true
	}
	return Record{}, false
}

// sanyuesanRule matches the Zhuang Triple-Third festival, lunar month
// 3 day 3, observed in Guangxi with a two-day break. The leap repeat
// of the month does not count.
func sanyuesanRule(day time.Time) (Record, bool) {
	l, err := lunar.FromTime(day)
	if err != nil {
		return Record{}, false
	}
	if l.Month == 3 && l.Day == 3 && !l.IsLeapMonth {
		return Record{Name: "三月三", Category: CategoryGuangxi, Date: day, Days: 2, Status: On}, true
	}
	return Record{}, false
}

// chinaRules is the national rule list, evaluated in display order.
func chinaRules() []Rule {
	return []Rule{
		yuandanRule,
		qingmingRule,
		laodongRule,
		guoqingRule,
		chunjieRule,
		duanwuRule,
		zhongqiuRule,
	}
}

// guangxiRules appends the regional festival to the national list.
func guangxiRules() []Rule {
	return append(chinaRules(), sanyuesanRule)
}
