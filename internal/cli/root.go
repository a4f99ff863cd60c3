// Package cli implements the tableview command line: listing the available
// datasets, printing single pages and starting the interactive browser.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/message"

	"github.com/Alp4ka/tableview/internal/config"
	"github.com/Alp4ka/tableview/internal/dataset"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// app holds what the root command resolved before a subcommand runs.
type app struct {
	cfg     config.Config
	catalog *dataset.Catalog
	printer *message.Printer
}

// NewRootCmd creates the root command of the tableview CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit environment
// lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "tableview",
		Short: "Browse tabular datasets page by page",
		Long: "tableview filters, sorts and paginates record sets. Built-in datasets ship with the " +
			"binary; more can be added with datasets_dir in the config file.",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, lookupEnv)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default $TABLEVIEW_CONFIG or ~/.tableview/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn or error")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newDatasetsCmd(a), newListCmd(a), newBrowseCmd(a))

	return cmd
}

const rootCmdExample = `  # Show the available datasets
  tableview datasets

  # Second page of the portfolio, largest allocation first
  tableview list finance-portfolio --sort "allocation desc" --page 2

  # Filter and print as JSON
  tableview list healthcare-patients --query cardio --output json

  # Continue where a previous run left off
  tableview list finance-portfolio --state <token>

  # Interactive browser
  tableview browse it-projects`
