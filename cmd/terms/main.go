package terms

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/almanachq/chinacal/solarterm"
)

const (
	usage   = "terms <year>"
	short   = "List the 24 solar terms of a year"
	long    = "This command computes the instant of each of the year's 24 solar terms, minute precision, China standard time"
	example = "chinacal terms 2024"
)

// Cmd is the terms command.
var Cmd = &cobra.Command{
	Use:     usage,
	Short:   short,
	Long:    long,
	Example: example,
	Args:    cobra.ExactArgs(1),
	RunE:    executeTerms,
}

func executeTerms(_ *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[0], err)
	}

	all, err := solarterm.AllTimes(year)
	if err != nil {
		return err
	}
	for _, td := range all {
		fmt.Printf("%s  %s\n", td.Term, td.Time.Format("2006-01-02 15:04"))
	}
	return nil
}
