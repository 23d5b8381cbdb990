// Handles the "fcgo service create" command

package cmd

import (
	"github.com/pkg/errors"
	"github.com/serverlessresearch/fcgo/pkg/fc"
	"github.com/spf13/cobra"
)

var serviceCreateCmdConfig struct {
	name        string
	description string
	role        string
}

var serviceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new service",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := mgr.Client.CreateService(&fc.Service{
			ServiceName: serviceCreateCmdConfig.name,
			Description: serviceCreateCmdConfig.description,
			Role:        serviceCreateCmdConfig.role,
		})
		if err != nil {
			return errors.Wrap(err, "Create command failed")
		}
		mgr.Logger.Info("Created service: " + service.ServiceName)
		return nil
	},
}

func init() {
	serviceCmd.AddCommand(serviceCreateCmd)

	serviceCreateCmd.Flags().StringVarP(&serviceCreateCmdConfig.name, "service-name", "n", "", "name for the new service")
	serviceCreateCmd.Flags().StringVarP(&serviceCreateCmdConfig.description, "description", "d", "", "human readable description")
	serviceCreateCmd.Flags().StringVarP(&serviceCreateCmdConfig.role, "role", "r", "", "RAM role used by functions of this service")
	serviceCreateCmd.MarkFlagRequired("service-name")
}
