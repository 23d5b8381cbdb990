// Handles the "fcgo service list" command

package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/serverlessresearch/fcgo/pkg/fc"
	"github.com/spf13/cobra"
)

var serviceListCmdConfig struct {
	prefix string
	limit  int
}

var serviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List services in the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := mgr.Client.ListServices(&fc.ListOptions{
			Prefix: serviceListCmdConfig.prefix,
			Limit:  serviceListCmdConfig.limit,
		})
		if err != nil {
			return errors.Wrap(err, "List command failed")
		}
		for _, service := range list.Services {
			fmt.Printf("%s\t%s\n", service.ServiceName, service.Description)
		}
		return nil
	},
}

func init() {
	serviceCmd.AddCommand(serviceListCmd)

	serviceListCmd.Flags().StringVarP(&serviceListCmdConfig.prefix, "prefix", "p", "", "only list services with this name prefix")
	serviceListCmd.Flags().IntVarP(&serviceListCmdConfig.limit, "limit", "l", 0, "maximum number of services to return")
}
