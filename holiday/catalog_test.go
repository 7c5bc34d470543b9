package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(y int, m time.Month, dom int) time.Time {
	return time.Date(y, m, dom, 0, 0, 0, 0, time.UTC)
}

func TestNewCatalogOrdering(t *testing.T) {
	t.Parallel()

	// Records arrive out of order, with the compensatory workday
	// listed before the holiday on the same date.
	c := NewCatalog([]Record{
		{Name: "国庆节", Date: d(2022, time.October, 1), Days: 7, Status: On},
		{Name: "借调", Date: d(2022, time.May, 1), Days: 1, Status: Off},
		{Name: "劳动节", Date: d(2022, time.May, 1), Days: 1, Status: On},
		{Name: "元旦", Date: d(2022, time.January, 1), Days: 3, Status: On},
	})

	recs := c.Records()
	require.Len(t, recs, 4)
	assert.Equal(t, "元旦", recs[0].Name)
	assert.Equal(t, "劳动节", recs[1].Name)
	assert.Equal(t, "借调", recs[2].Name)
	assert.Equal(t, "国庆节", recs[3].Name)

	// On sorts before Off on the shared date.
	assert.Equal(t, On, recs[1].Status)
	assert.Equal(t, Off, recs[2].Status)
}

func TestNewCatalogRepairs(t *testing.T) {
	t.Parallel()

	c := NewCatalog([]Record{
		{Name: "garbage header", Date: time.Time{}, Days: 1, Status: Normal},
		{Name: "元旦", Date: d(2023, time.January, 1), Days: 0, Status: On},
	})

	require.Equal(t, 1, c.Len())
	rec := c.Records()[0]
	assert.Equal(t, "元旦", rec.Name)
	assert.Equal(t, 1, rec.Days, "non-positive spans are coerced to one day")
}

func TestCatalogQuery(t *testing.T) {
	t.Parallel()

	c := NewCatalog([]Record{
		{Name: "春节", Date: d(2022, time.January, 29), Days: 1, Status: Off},
		{Name: "春节", Date: d(2022, time.January, 31), Days: 7, Status: On},
		{Name: "清明节", Date: d(2022, time.April, 3), Days: 3, Status: On},
	})

	// Exact date match.
	hits := c.Query(d(2022, time.January, 29))
	require.Len(t, hits, 1)
	assert.Equal(t, Off, hits[0].Status)

	// Covered by a multi-day span.
	hits = c.Query(d(2022, time.February, 6))
	require.Len(t, hits, 1)
	assert.Equal(t, "春节", hits[0].Name)
	assert.Equal(t, On, hits[0].Status)

	// Day after the span ends.
	assert.Empty(t, c.Query(d(2022, time.February, 7)))

	// Before every record.
	assert.Empty(t, c.Query(d(2021, time.December, 31)))

	// Between records.
	assert.Empty(t, c.Query(d(2022, time.March, 1)))
}

func TestCatalogQueryTimezones(t *testing.T) {
	t.Parallel()

	c := NewCatalog([]Record{
		{Name: "元旦", Date: d(2023, time.January, 1), Days: 1, Status: On},
	})

	// Matching is by wall-clock day, whatever zone the query uses.
	shanghai := time.FixedZone("CST", 8*60*60)
	hits := c.Query(time.Date(2023, time.January, 1, 23, 30, 0, 0, shanghai))
	assert.Len(t, hits, 1)
}

func TestRecordCovers(t *testing.T) {
	t.Parallel()

	rec := Record{Name: "国庆节", Date: d(2022, time.October, 1), Days: 7, Status: On}
	assert.True(t, rec.Covers(d(2022, time.October, 1)))
	assert.True(t, rec.Covers(d(2022, time.October, 7)))
	assert.False(t, rec.Covers(d(2022, time.October, 8)))
	assert.False(t, rec.Covers(d(2022, time.September, 30)))
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Normal, StatusOf(0))
	assert.Equal(t, On, StatusOf(1))
	assert.Equal(t, Off, StatusOf(2))
	assert.Equal(t, Normal, StatusOf(-1))
	assert.Equal(t, Normal, StatusOf(7))

	assert.Equal(t, "On", On.String())
	assert.Equal(t, "Off", Off.String())
	assert.Equal(t, "Normal", Normal.String())
	assert.Equal(t, "Unknown", Status(9).String())
}
