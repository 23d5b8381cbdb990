// Handles the "fcgo function list" command

package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var funcListCmdConfig struct {
	service   string
	qualifier string
}

var funcListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the functions of a service",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := mgr.Client.ListFunctions(funcListCmdConfig.service, funcListCmdConfig.qualifier, nil)
		if err != nil {
			return errors.Wrap(err, "List command failed")
		}
		for _, function := range list.Functions {
			fmt.Printf("%s\t%s\t%s\n", function.FunctionName, function.Runtime, function.Handler)
		}
		return nil
	},
}

func init() {
	functionCmd.AddCommand(funcListCmd)

	funcListCmd.Flags().StringVarP(&funcListCmdConfig.service, "service-name", "s", "", "service whose functions to list")
	funcListCmd.Flags().StringVarP(&funcListCmdConfig.qualifier, "qualifier", "q", "", "service version or alias")
	funcListCmd.MarkFlagRequired("service-name")
}
