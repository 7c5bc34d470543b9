package solarterm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almanachq/chinacal/utils"
)

var cst = utils.ChinaStandardTime()

func TestTermDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		term Term
		want string
	}{
		{2022, Xiaohan, "2022-01-05"},
		{2022, Qingming, "2022-04-05"},
		{2022, Xiazhi, "2022-06-21"},
		{2022, Bailu, "2022-09-07"},
		{2022, Dongzhi, "2022-12-22"},
		{2024, Xiaohan, "2024-01-06"},
		{2024, Qingming, "2024-04-04"},
		// 2021 needs the per-year fixup or the estimate lands on
		// the 22nd.
		{2021, Dongzhi, "2021-12-21"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want+" "+tt.term.String(), func(t *testing.T) {
			t.Parallel()
			got, err := TermDate(tt.year, tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
			assert.Equal(t, 0, got.Hour())
		})
	}
}

func TestTermTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		term Term
		want time.Time
	}{
		{2022, Qingming, time.Date(2022, 4, 5, 3, 22, 0, 0, cst)},
		{2022, Xiaohan, time.Date(2022, 1, 5, 17, 8, 0, 0, cst)},
		{2022, Xiazhi, time.Date(2022, 6, 21, 17, 18, 0, 0, cst)},
		{2022, Dongzhi, time.Date(2022, 12, 22, 5, 39, 0, 0, cst)},
		{2024, Qingming, time.Date(2024, 4, 4, 14, 56, 0, 0, cst)},
		{2024, Xiaohan, time.Date(2024, 1, 6, 4, 44, 0, 0, cst)},
		{2021, Dongzhi, time.Date(2021, 12, 21, 23, 51, 0, 0, cst)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.term.String()+" "+tt.want.Format("2006"), func(t *testing.T) {
			t.Parallel()
			got, err := TermTime(tt.year, tt.term)
			require.NoError(t, err)
			assert.WithinDuration(t, tt.want, got, 10*time.Minute)
			assert.Zero(t, got.Second())
		})
	}
}

func TestTermTimeErrors(t *testing.T) {
	t.Parallel()

	_, err := TermTime(1900, Qingming)
	require.Error(t, err)
	var yearErr *YearError
	require.ErrorAs(t, err, &yearErr)
	assert.Equal(t, 1900, yearErr.Year)

	_, err = TermTime(2101, Dongzhi)
	assert.Error(t, err)

	_, err = TermTime(2022, Term(24))
	assert.Error(t, err)
	_, err = TermTime(2022, Term(-1))
	assert.Error(t, err)
}

func TestAll(t *testing.T) {
	t.Parallel()

	days, err := All(2024)
	require.NoError(t, err)
	require.Len(t, days, 24)

	for i, d := range days {
		assert.Equal(t, Term(i), d.Term)
		if i > 0 {
			assert.True(t, d.Time.After(days[i-1].Time),
				"%s must follow %s", d.Term, days[i-1].Term)
		}
	}
	assert.Equal(t, "2024-01-06", days[Xiaohan].Time.Format("2006-01-02"))

	times, err := AllTimes(2022)
	require.NoError(t, err)
	require.Len(t, times, 24)
	at, err := TermTime(2022, Qingming)
	require.NoError(t, err)
	assert.Equal(t, at, times[Qingming].Time)

	_, err = All(1899)
	assert.Error(t, err)
}

func TestNearest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		from      time.Time
		term      Term
		daysTo    float64
		isTermDay bool
		withinOne bool
	}{
		{"on the day", time.Date(2022, 4, 5, 20, 30, 0, 0, cst), Qingming, 0, true, true},
		{"two days before", time.Date(2022, 4, 3, 0, 0, 0, 0, cst), Qingming, 2, false, false},
		{"one day before", time.Date(2022, 4, 4, 9, 0, 0, 0, cst), Qingming, 1, false, true},
		{"three days after", time.Date(2022, 9, 10, 0, 0, 0, 0, cst), Bailu, -3, false, false},
		{"across new year", time.Date(2022, 12, 30, 0, 0, 0, 0, cst), Xiaohan, 6, false, false},
		{"start of year", time.Date(2022, 1, 1, 0, 0, 0, 0, cst), Xiaohan, 4, false, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := Nearest(tt.from)
			require.NoError(t, err)
			assert.Equal(t, tt.term, res.Term)
			assert.InDelta(t, tt.daysTo, res.DaysTo, 1e-9)
			assert.Equal(t, tt.isTermDay, res.IsTermDay)
			assert.Equal(t, tt.withinOne, res.IsWithinOneDay)
		})
	}

	_, err := Nearest(time.Date(1899, 6, 1, 0, 0, 0, 0, cst))
	assert.Error(t, err)
	_, err = Nearest(time.Date(2101, 6, 1, 0, 0, 0, 0, cst))
	assert.Error(t, err)
}

func TestNearestOtherZone(t *testing.T) {
	t.Parallel()

	// 2022-04-04 20:00 UTC is already 2022-04-05 in China.
	res, err := Nearest(time.Date(2022, 4, 4, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, Qingming, res.Term)
	assert.True(t, res.IsTermDay)
}

func TestTermMetadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "小寒", Xiaohan.String())
	assert.Equal(t, "清明", Qingming.String())
	assert.Equal(t, "冬至", Dongzhi.String())
	assert.Equal(t, "Term(30)", Term(30).String())

	assert.Equal(t, 1, Xiaohan.Month())
	assert.Equal(t, 4, Qingming.Month())
	assert.Equal(t, 12, Dongzhi.Month())

	assert.InDelta(t, 285, Xiaohan.Longitude(), 1e-9)
	assert.InDelta(t, 0, Chunfen.Longitude(), 1e-9)
	assert.InDelta(t, 15, Qingming.Longitude(), 1e-9)
	assert.InDelta(t, 90, Xiazhi.Longitude(), 1e-9)
	assert.InDelta(t, 270, Dongzhi.Longitude(), 1e-9)
}

func TestResultString(t *testing.T) {
	t.Parallel()

	res, err := Nearest(time.Date(2022, 4, 3, 0, 0, 0, 0, cst))
	require.NoError(t, err)
	assert.Equal(t, "清明 2022-04-05 +2.0天", res.String())

	res, err = Nearest(time.Date(2022, 9, 10, 0, 0, 0, 0, cst))
	require.NoError(t, err)
	assert.Equal(t, "白露 2022-09-07 -3.0天", res.String())
}
