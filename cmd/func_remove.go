// Handles the "fcgo function remove" command

package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var funcRemoveCmdConfig struct {
	service string
	name    string
}

var funcRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a function from a service",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := mgr.Client.DeleteFunction(funcRemoveCmdConfig.service, funcRemoveCmdConfig.name); err != nil {
			return errors.Wrap(err, "Remove command failed")
		}
		mgr.Logger.Info("Successfully removed function")
		return nil
	},
}

func init() {
	functionCmd.AddCommand(funcRemoveCmd)

	funcRemoveCmd.Flags().StringVarP(&funcRemoveCmdConfig.service, "service-name", "s", "", "service containing the function")
	funcRemoveCmd.Flags().StringVarP(&funcRemoveCmdConfig.name, "function-name", "n", "", "name of the function to remove")
	funcRemoveCmd.MarkFlagRequired("service-name")
	funcRemoveCmd.MarkFlagRequired("function-name")
}
