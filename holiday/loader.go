package holiday

import (
	"fmt"
	"io"
	"time"

	"github.com/buger/jsonparser"
	"github.com/gocarina/gocsv"

	"github.com/almanachq/chinacal/utils/log"
)

// csvRow is the raw shape of one schedule line: Name,Date,Days,Status.
type csvRow struct {
	Name   string `csv:"Name"`
	Date   string `csv:"Date"`
	Days   int    `csv:"Days"`
	Status int    `csv:"Status"`
}

var dateLayouts = []string{"2006-01-02", "2006/1/2", "2006/01/02"}

func parseDay(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	// Zero time carries year 1, which the catalog treats as a
	// sentinel and drops.
	return time.Time{}
}

// LoadCSV reads schedule records from CSV, tagging each with the
// given category. Unparseable dates produce sentinel records the
// catalog will drop; only a malformed CSV stream itself is an error.
func LoadCSV(r io.Reader, category string) ([]Record, error) {
	var rows []*csvRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("read holiday csv: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		date := parseDay(row.Date)
		if date.Year() <= 1000 {
			log.Debug("loader: skipping row %q with date %q", row.Name, row.Date)
		}
		records = append(records, Record{
			Name:     row.Name,
			Category: category,
			Date:     date,
			Days:     row.Days,
			Status:   StatusOf(row.Status),
		})
	}
	return records, nil
}

// LoadJSON reads records from a holiday-cn style document:
//
//	{"year": 2024, "days": [{"name": "...", "date": "2024-02-10", "isOffDay": true}, ...]}
//
// Each day entry becomes a single-day record: rest days map to On,
// worked weekends to Off.
func LoadJSON(data []byte, category string) ([]Record, error) {
	var records []Record
	var walkErr error

	_, err := jsonparser.ArrayEach(data, func(value []byte, _ jsonparser.ValueType, _ int, _ error) {
		name, err := jsonparser.GetString(value, "name")
		if err != nil {
			walkErr = err
			return
		}
		date, err := jsonparser.GetString(value, "date")
		if err != nil {
			walkErr = err
			return
		}
		isOff, err := jsonparser.GetBoolean(value, "isOffDay")
		if err != nil {
			walkErr = err
			return
		}

		status := Off
		if isOff {
			status = On
		}
		records = append(records, Record{
			Name:     name,
			Category: category,
			Date:     parseDay(date),
			Days:     1,
			Status:   status,
		})
	}, "days")
	if err != nil {
		return nil, fmt.Errorf("read holiday json: %w", err)
	}
	if walkErr != nil {
		return nil, fmt.Errorf("read holiday json: %w", walkErr)
	}

	return records, nil
}
