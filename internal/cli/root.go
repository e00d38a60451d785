// Package cli handles the command-line interface logic
// using the Cobra library.
package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pipevine",
		Short: "pipevine - declarative extract/transform/load pipeline runner",
		Long: `pipevine executes pipeline definitions: a file or SQL extract stage,
a registered transform task, and a parquet, csv or mongo load stage,
run strictly in that order.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(NewRunCmd(), NewValidateCmd(), NewTasksCmd())

	return rootCmd
}
