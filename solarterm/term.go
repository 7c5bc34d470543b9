// Package solarterm computes the instants of the 24 solar terms, the
// points where the sun's apparent ecliptic longitude crosses a
// multiple of 15 degrees. Terms are located by a coarse per-century
// estimate refined with bisection on the longitude itself, giving
// minute precision over 1901-2100.
package solarterm

import (
	"fmt"
	"math"
	"time"
)

// Term identifies one of the 24 solar terms, in calendar order from
// 小寒 (early January) to 冬至 (late December).
type Term int

const (
	Xiaohan Term = iota // 小寒
	Dahan               // 大寒
	Lichun              // 立春
	Yushui              // 雨水
	Jingzhe             // 惊蛰
	Chunfen             // 春分
	Qingming            // 清明
	Guyu                // 谷雨
	Lixia               // 立夏
	Xiaoman             // 小满
	Mangzhong           // 芒种
	Xiazhi              // 夏至
	Xiaoshu             // 小暑
	Dashu               // 大暑
	Liqiu               // 立秋
	Chushu              // 处暑
	Bailu               // 白露
	Qiufen              // 秋分
	Hanlu               // 寒露
	Shuangjiang         // 霜降
	Lidong              // 立冬
	Xiaoxue             // 小雪
	Daxue               // 大雪
	Dongzhi             // 冬至

	numTerms = 24
)

var termNames = [numTerms]string{
	"小寒", "大寒", "立春", "雨水", "惊蛰", "春分", "清明", "谷雨",
	"立夏", "小满", "芒种", "夏至", "小暑", "大暑", "立秋", "处暑",
	"白露", "秋分", "寒露", "霜降", "立冬", "小雪", "大雪", "冬至",
}

// Gregorian month each term falls in.
var termMonths = [numTerms]int{
	1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12,
}

func (t Term) String() string {
	if t < 0 || t >= numTerms {
		return fmt.Sprintf("Term(%d)", int(t))
	}
	return termNames[t]
}

// Month returns the Gregorian month the term falls in.
func (t Term) Month() int {
	return termMonths[t]
}

// Longitude returns the sun's target apparent longitude for the term,
// in degrees 0..360.
func (t Term) Longitude() float64 {
	return math.Mod(float64(t)*15+285, 360)
}

// Result describes the term nearest to a reference time.
type Result struct {
	// Term is the nearest term.
	Term Term
	// Time is the term's calendar day (midnight) in the engine's zone.
	Time time.Time
	// From is the reference time the distance is measured from.
	From time.Time

	// DaysTo is the signed day distance: positive when the term is
	// still ahead of From, negative once it has passed.
	DaysTo float64
	// IsTermDay reports whether From falls on the term's calendar day.
	IsTermDay bool
	// IsWithinOneDay reports whether From is within one day of the
	// term, the term day included.
	IsWithinOneDay bool
}

func newResult(term Term, termDay, from time.Time) Result {
	days := termDay.Sub(from).Hours() / 24
	fy, fm, fd := from.In(termDay.Location()).Date()
	ty, tm, td := termDay.Date()
	return Result{
		Term:           term,
		Time:           termDay,
		From:           from,
		DaysTo:         days,
		IsTermDay:      fy == ty && fm == tm && fd == td,
		IsWithinOneDay: math.Abs(days) <= 1,
	}
}

// String formats as "清明 2022-04-05 +3.2天".
func (r Result) String() string {
	sign := ""
	if r.DaysTo >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s %s %s%.1f天", r.Term, r.Time.Format("2006-01-02"), sign, r.DaysTo)
}
