// Handles the "fcgo service remove" command

package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var serviceRemoveCmdConfig struct {
	name string
}

var serviceRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a service",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := mgr.Client.DeleteService(serviceRemoveCmdConfig.name); err != nil {
			return errors.Wrap(err, "Remove command failed")
		}
		mgr.Logger.Info("Successfully removed service")
		return nil
	},
}

func init() {
	serviceCmd.AddCommand(serviceRemoveCmd)

	serviceRemoveCmd.Flags().StringVarP(&serviceRemoveCmdConfig.name, "service-name", "n", "", "name of the service to remove")
	serviceRemoveCmd.MarkFlagRequired("service-name")
}
