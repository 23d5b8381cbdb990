// Handles the "fcgo service" command. This command exists solely to contain
// service-level subcommands (e.g. create, list, etc..)

package cmd

import (
	"github.com/spf13/cobra"
)

// serviceCmd represents the service command
var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Service management",
	Long:  `Commands for dealing with services, the unit that groups functions together.`,
}

func init() {
	rootCmd.AddCommand(serviceCmd)
}
