package solarterm

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/almanachq/chinacal/utils"
)

const (
	minYear = 1901
	maxYear = 2100

	// fraction of a day each term drifts later per year
	dailyDrift = 0.2422
)

// Century constants for the coarse day estimate, per term. The
// estimate day = floor(y*0.2422 + c) - floor((y-1)/4) with y the
// two-digit year is good to about a day; the root refinement supplies
// the rest.
var c1900 = [numTerms]float64{
	6.11, 20.84, 4.6295, 19.4599, 6.3826, 21.4155, 5.59, 20.888, 6.318, 21.86, 6.5, 22.20,
	7.928, 23.65, 8.35, 23.95, 8.44, 23.822, 9.098, 24.218, 8.218, 23.08, 7.9, 22.60,
}

var c2000 = [numTerms]float64{
	5.4055, 20.12, 3.87, 18.73, 5.63, 20.646, 4.81, 20.1, 5.52, 21.04, 5.678, 21.37,
	7.108, 22.83, 7.5, 23.13, 7.646, 23.042, 8.318, 23.438, 7.438, 22.36, 7.18, 21.94,
}

// Years where the century formula misses by a day.
var specialOffsets = map[struct {
	year int
	term Term
}]int{
	{2084, Chunfen}: -1,
	{2002, Xiazhi}:  1,
	{2016, Xiaoshu}: 1,
	{2002, Bailu}:   1,
	{1918, Dongzhi}: 1,
	{2021, Dongzhi}: -1,
}

// YearError reports a year outside the supported term-table span.
type YearError struct {
	Year int
}

func (e *YearError) Error() string {
	return fmt.Sprintf("year %d is outside the supported solar-term range (%d..%d)", e.Year, minYear, maxYear)
}

// TermTime returns the instant of the term in the given year, minute
// precision, in China standard time.
func TermTime(year int, term Term) (time.Time, error) {
	return TermTimeIn(year, term, utils.ChinaStandardTime())
}

// TermTimeIn is TermTime with the result expressed in loc. The search
// window is anchored on local noon of the coarse estimate, so loc also
// defines which civil day the term lands on.
func TermTimeIn(year int, term Term, loc *time.Location) (time.Time, error) {
	if year < minYear || year > maxYear {
		return time.Time{}, &YearError{Year: year}
	}
	if term < 0 || term >= numTerms {
		return time.Time{}, fmt.Errorf("invalid term index %d", int(term))
	}

	day := coarseDay(year, term)

	// Noon keeps the window clear of day boundaries in every zone.
	approx := time.Date(year, time.Month(term.Month()), day, 12, 0, 0, 0, loc)
	target := term.Longitude()

	a, b, ok := findBracket(approx.AddDate(0, 0, -2), approx.AddDate(0, 0, 2), target)
	if !ok {
		// The coarse estimate can be further off for a few
		// outlier years; retry on a wider window.
		a, b, ok = findBracket(approx.AddDate(0, 0, -7), approx.AddDate(0, 0, 7), target)
	}
	if !ok {
		// Degraded mode: bisect the half day around the estimate
		// even without a confirmed sign change.
		a = approx.Add(-12 * time.Hour)
		b = approx.Add(12 * time.Hour)
	}

	instant := bisect(a, b, target, 30*time.Second)

	return instant.In(loc).Truncate(time.Minute), nil
}

// coarseDay evaluates the century formula plus the per-year fixups.
func coarseDay(year int, term Term) int {
	c := c1900[term]
	if year >= 2001 {
		c = c2000[term]
	}
	// floor, not truncation: y-1 is negative for xx00 years
	y := year % 100
	day := int(math.Floor(float64(y)*dailyDrift+c)) - int(math.Floor(float64(y-1)/4))
	return day + specialOffsets[struct {
		year int
		term Term
	}{year, term}]
}

// findBracket scans [start, end] in 6h steps for a sign change of the
// angular distance to target.
func findBracket(start, end time.Time, target float64) (a, b time.Time, ok bool) {
	const step = 6 * time.Hour

	prev := start
	prevVal := signedDiff(apparentLongitude(prev), target)
	for t := start.Add(step); !t.After(end); t = t.Add(step) {
		val := signedDiff(apparentLongitude(t), target)
		if (prevVal <= 0 && val >= 0) || (prevVal >= 0 && val <= 0) {
			return prev, t, true
		}
		prev, prevVal = t, val
	}
	return time.Time{}, time.Time{}, false
}

// bisect narrows [a, b] to the sign change, to within tol.
func bisect(a, b time.Time, target float64, tol time.Duration) time.Time {
	for b.Sub(a) > tol {
		mid := a.Add(b.Sub(a) / 2)
		valA := signedDiff(apparentLongitude(a), target)
		valMid := signedDiff(apparentLongitude(mid), target)
		if (valA <= 0 && valMid >= 0) || (valA >= 0 && valMid <= 0) {
			b = mid
		} else {
			a = mid
		}
	}
	return a.Add(b.Sub(a) / 2)
}

// TermDate returns the calendar day (midnight, China standard time)
// of the term in the given year.
func TermDate(year int, term Term) (time.Time, error) {
	return termDateIn(year, term, utils.ChinaStandardTime())
}

func termDateIn(year int, term Term, loc *time.Location) (time.Time, error) {
	at, err := TermTimeIn(year, term, loc)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := at.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
}

// TermDay pairs a term with its date or instant.
type TermDay struct {
	Term Term
	Time time.Time
}

// All returns the year's 24 term days in calendar order.
func All(year int) ([]TermDay, error) {
	out := make([]TermDay, 0, numTerms)
	for i := Term(0); i < numTerms; i++ {
		d, err := TermDate(year, i)
		if err != nil {
			return nil, err
		}
		out = append(out, TermDay{Term: i, Time: d})
	}
	return out, nil
}

// AllTimes returns the year's 24 term instants (minute precision) in
// calendar order.
func AllTimes(year int) ([]TermDay, error) {
	out := make([]TermDay, 0, numTerms)
	for i := Term(0); i < numTerms; i++ {
		at, err := TermTime(year, i)
		if err != nil {
			return nil, err
		}
		out = append(out, TermDay{Term: i, Time: at})
	}
	return out, nil
}

// Nearest locates the term closest to t's calendar day in China
// standard time; distances are whole days. Candidates are drawn from
// t's year first and then the two adjacent years, so a term just
// across the new year is still found; at equal distance the earlier
// candidate in that scan order wins.
func Nearest(t time.Time) (Result, error) {
	loc := utils.ChinaStandardTime()
	y, m, d := t.In(loc).Date()
	ref := time.Date(y, m, d, 0, 0, 0, 0, loc)

	year := ref.Year()
	if year < minYear || year > maxYear {
		return Result{}, &YearError{Year: year}
	}

	candidates := make([]TermDay, 0, 3*numTerms)
	for _, y := range []int{year, year - 1, year + 1} {
		if y < minYear || y > maxYear {
			continue
		}
		days, err := All(y)
		if err != nil {
			return Result{}, err
		}
		candidates = append(candidates, days...)
	}

	dists := make([]float64, len(candidates))
	for i, c := range candidates {
		dists[i] = math.Abs(c.Time.Sub(ref).Hours() / 24)
	}
	best := candidates[floats.MinIdx(dists)]

	return newResult(best.Term, best.Time, ref), nil
}
