package holiday

import (
	"time"
)

// Record categories for the bundled datasets.
const (
	CategoryChina   = "China"
	CategoryGuangxi = "Guangxi"
)

// Resolver answers holiday queries for one work calendar. It owns an
// immutable catalog, an ordered rule list and, for regional variants,
// the category whose records win when several match a day. A Resolver
// is safe for concurrent use.
type Resolver struct {
	catalog *Catalog
	rules   []Rule
	prefer  string
}

// NewResolver composes a resolver from its parts. preferCategory may
// be empty; it only affects which matching record IsHoliday consults
// first.
func NewResolver(catalog *Catalog, rules []Rule, preferCategory string) *Resolver {
	return &Resolver{catalog: catalog, rules: rules, prefer: preferCategory}
}

// NewChina builds the national resolver over the supplied records.
func NewChina(records []Record) *Resolver {
	return NewResolver(NewCatalog(records), chinaRules(), "")
}

// NewGuangxi builds the Guangxi resolver: the national rules plus the
// Triple-Third festival, preferring Guangxi records when a day has
// both regional and national entries.
func NewGuangxi(records []Record) *Resolver {
	return NewResolver(NewCatalog(records), guangxiRules(), CategoryGuangxi)
}

// Query returns every holiday record matching the day, catalog hits
// first. Rules are evaluated only when the catalog has no entry at
// all for the day, and then every matching rule is returned; the rule
// order is display order, not precedence. The result is empty only
// for ordinary days.
func (r *Resolver) Query(t time.Time) []Record {
	hits := r.catalog.Query(t)
	if len(hits) > 0 {
		return hits
	}

	for _, rule := range r.rules {
		if rec, ok := rule(t); ok {
			hits = append(hits, rec)
		}
	}
	return hits
}

// IsHoliday reduces Query to a rest-or-work decision. The first
// matching record decides (preferring the resolver's own category
// when one is set): On is a day off, Off is a worked weekend, Normal
// defers. With no decisive record the weekday answers: Saturday and
// Sunday rest, the rest work.
func (r *Resolver) IsHoliday(t time.Time) bool {
	hits := r.Query(t)

	var hit *Record
	if len(hits) > 0 {
		hit = &hits[0]
		if r.prefer != "" {
			for i := range hits {
				if hits[i].Category == r.prefer {
					hit = &hits[i]
					break
				}
			}
		}
	}

	if hit != nil {
		switch hit.Status {
		case On:
			return true
		case Off:
			return false
		case Normal:
			// fall through to the weekday
		}
	}

	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
