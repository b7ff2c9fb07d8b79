// Package cli holds the capstone command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the capstone command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "capstone",
		Short:             "Capstone project workflow services",
		Long:              `capstone runs one of the company, coordinator or student services of the capstone project workflow.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newVersionCmd())
	return root
}
