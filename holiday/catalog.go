package holiday

import (
	"sort"
	"time"

	"github.com/almanachq/chinacal/utils/log"
)

// Catalog is an immutable, date-ordered set of holiday records. Build
// it once with NewCatalog; it is then safe for concurrent readers.
type Catalog struct {
	records []Record
}

// NewCatalog filters, repairs and sorts the supplied records. Rows
// whose year is 1000 or earlier are header or garbage lines from the
// raw source and are dropped silently; spans below one day are
// coerced to one. Records are ordered by date, and on equal dates On
// sorts before Off so a paid holiday takes precedence over a
// compensatory workday.
func NewCatalog(records []Record) *Catalog {
	kept := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.Date.Year() <= 1000 {
			log.Debug("catalog: dropping sentinel row %q (%v)", rec.Name, rec.Date)
			continue
		}
		if rec.Days <= 0 {
			rec.Days = 1
		}
		kept = append(kept, rec)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		di, dj := julianDate(kept[i].Date), julianDate(kept[j].Date)
		if di != dj {
			return di < dj
		}
		return kept[i].Status < kept[j].Status
	})

	return &Catalog{records: kept}
}

// Query returns every record matching the day, in catalog order: an
// exact date match or a span that covers it. The scan stops at the
// first record dated after the day.
func (c *Catalog) Query(day time.Time) []Record {
	jd := julianDate(day)

	var out []Record
	for _, rec := range c.records {
		rd := julianDate(rec.Date)
		if rd > jd {
			break
		}
		if rd == jd || (rec.Days > 1 && rec.Covers(day)) {
			out = append(out, rec)
		}
	}
	return out
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns a copy of the catalog's contents in order.
func (c *Catalog) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}
