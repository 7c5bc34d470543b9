package query

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/almanachq/chinacal/holiday"
	"github.com/almanachq/chinacal/lunar"
	"github.com/almanachq/chinacal/solarterm"
	"github.com/almanachq/chinacal/utils"
)

const (
	usage   = "query <date>"
	short   = "Report the holiday, lunar date and nearest solar term for a date"
	long    = "This command resolves a Gregorian date (YYYY-MM-DD) against the holiday calendar and prints its lunisolar representation and nearest solar term"
	example = "chinacal query 2024-02-10 --region guangxi"
)

var (
	// Cmd is the query command.
	Cmd = &cobra.Command{
		Use:     usage,
		Short:   short,
		Long:    long,
		Example: example,
		Args:    cobra.ExactArgs(1),
		RunE:    executeQuery,
	}
	// configFilePath set flag for a path to the config file.
	configFilePath string
	// region overrides the configured holiday calendar.
	region string
)

// nolint:gochecknoinits // cobra's standard way to initialize flags
func init() {
	Cmd.Flags().StringVarP(&configFilePath, "config", "c", "", "set the path for the chinacal YAML configuration file")
	Cmd.Flags().StringVarP(&region, "region", "r", "", "holiday calendar to consult (china or guangxi)")
}

func executeQuery(_ *cobra.Command, args []string) error {
	if configFilePath != "" {
		data, err := os.ReadFile(configFilePath)
		if err != nil {
			return fmt.Errorf("failed to read configuration file error: %w", err)
		}
		if err := utils.InstanceConfig.Parse(data); err != nil {
			return fmt.Errorf("failed to parse configuration file error: %w", err)
		}
	}
	if region == "" {
		region = utils.InstanceConfig.Region
	}
	if region != "china" && region != "guangxi" {
		return fmt.Errorf("unknown region %q, expected china or guangxi", region)
	}

	day, err := time.ParseInLocation("2006-01-02", args[0], utils.InstanceConfig.Timezone)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", args[0], err)
	}

	resolver, err := buildResolver(region, utils.InstanceConfig.Datasets)
	if err != nil {
		return err
	}

	if resolver.IsHoliday(day) {
		fmt.Printf("%s: rest day\n", args[0])
	} else {
		fmt.Printf("%s: workday\n", args[0])
	}
	for _, rec := range resolver.Query(day) {
		fmt.Printf("  %s  %s  %dd  %s\n", rec.Name, rec.Date.Format("2006-01-02"), rec.Days, rec.Status)
	}

	if l, err := lunar.FromTime(day); err == nil {
		fmt.Printf("lunar: %s (%s年)\n", l, l.Zodiac())
	}
	if res, err := solarterm.Nearest(day); err == nil {
		fmt.Printf("solar term: %s\n", res)
	}

	return nil
}

// buildResolver picks the embedded calendar for the region, or builds
// one from the configured schedule files. A file whose name mentions
// guangxi loads as the regional category.
func buildResolver(region string, datasets []string) (*holiday.Resolver, error) {
	if len(datasets) == 0 {
		if region == "guangxi" {
			return holiday.Guangxi, nil
		}
		return holiday.China, nil
	}

	var records []holiday.Record
	for _, path := range datasets {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open dataset file error: %w", err)
		}
		category := holiday.CategoryChina
		if strings.Contains(strings.ToLower(filepath.Base(path)), "guangxi") {
			category = holiday.CategoryGuangxi
		}
		recs, err := holiday.LoadCSV(f, category)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset %q error: %w", path, err)
		}
		records = append(records, recs...)
	}

	if region == "guangxi" {
		return holiday.NewGuangxi(records), nil
	}
	return holiday.NewChina(records), nil
}
