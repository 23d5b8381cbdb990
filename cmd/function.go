// Handles the "fcgo function" command. This command exists solely to contain
// function-level subcommands (e.g. create, list, etc..)

package cmd

import (
	"github.com/spf13/cobra"
)

// functionCmd represents the function command
var functionCmd = &cobra.Command{
	Use:   "function",
	Short: "Function management",
	Long:  `Commands for dealing with the functions of a service.`,
}

func init() {
	rootCmd.AddCommand(functionCmd)
}
