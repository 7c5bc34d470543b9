package holiday

import (
	"embed"
	"time"

	"github.com/almanachq/chinacal/utils/log"
)

//go:embed data/China.csv data/Guangxi.csv
var dataFS embed.FS

// China resolves against the bundled national schedules; years beyond
// the bundled data fall back to the computed rules.
var China = NewChina(embeddedRecords(CategoryChina))

// Guangxi resolves the regional calendar: national and Guangxi
// schedules merged, Guangxi records preferred.
var Guangxi = NewGuangxi(append(embeddedRecords(CategoryChina), embeddedRecords(CategoryGuangxi)...))

func embeddedRecords(category string) []Record {
	f, err := dataFS.Open("data/" + category + ".csv")
	if err != nil {
		log.Error("missing embedded dataset %q: %v", category, err)
		return nil
	}
	defer f.Close()

	records, err := LoadCSV(f, category)
	if err != nil {
		log.Error("bad embedded dataset %q: %v", category, err)
		return nil
	}
	return records
}

// IsChinaHoliday reports whether t is a rest day on the national
// calendar.
func IsChinaHoliday(t time.Time) bool {
	return China.IsHoliday(t)
}

// IsGuangxiHoliday reports whether t is a rest day on the Guangxi
// calendar.
func IsGuangxiHoliday(t time.Time) bool {
	return Guangxi.IsHoliday(t)
}
