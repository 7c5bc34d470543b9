package cmd

import (
	"github.com/spf13/cobra"

	"github.com/almanachq/chinacal/cmd/query"
	"github.com/almanachq/chinacal/cmd/terms"
	"github.com/almanachq/chinacal/utils"
	"github.com/almanachq/chinacal/utils/log"
)

// flagPrintVersion set flag to show the current chinacal version.
var flagPrintVersion bool

// Execute builds the command tree and executes commands.
func Execute() error {
	// c is the root command.
	c := &cobra.Command{
		Use: "chinacal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print version if specified.
			if flagPrintVersion {
				log.Info("version: %v\n", utils.Tag)
				log.Info("commit hash: %v\n", utils.GitHash)
				log.Info("utc build time: %v\n", utils.BuildStamp)
				return nil
			}
			// Print information regarding usage.
			return cmd.Usage()
		},
	}

	// Adds subcommands and version flag.
	c.AddCommand(query.Cmd)
	c.AddCommand(terms.Cmd)
	c.Flags().BoolVarP(&flagPrintVersion, "version", "v", false, "show the version info and exit")

	return c.Execute()
}
