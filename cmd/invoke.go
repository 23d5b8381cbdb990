// Handles the "fcgo invoke" command

package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/serverlessresearch/fcgo/pkg/fc"
	"github.com/spf13/cobra"
)

var invokeCmdConfig struct {
	service   string
	function  string
	qualifier string
	event     string
	async     bool
}

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Invoke a function",
	Long: `Invoke a function with a JSON event payload. By default the call is
synchronous and the function result is printed to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := mgr.Client.InvokeFunction(
			invokeCmdConfig.service,
			invokeCmdConfig.function,
			invokeCmdConfig.qualifier,
			fc.TextBody(invokeCmdConfig.event),
			&fc.InvokeOptions{Async: invokeCmdConfig.async})
		if err != nil {
			return errors.Wrap(err, "Invocation failed")
		}

		if invokeCmdConfig.async {
			mgr.Logger.Info("Async invocation accepted, requestid: " + resp.RequestID())
			return nil
		}
		fmt.Println(string(resp.Body))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invokeCmd)

	invokeCmd.Flags().StringVarP(&invokeCmdConfig.service, "service-name", "s", "", "service containing the function")
	invokeCmd.Flags().StringVarP(&invokeCmdConfig.function, "function-name", "n", "", "function to invoke")
	invokeCmd.Flags().StringVarP(&invokeCmdConfig.qualifier, "qualifier", "q", "", "version or alias to invoke")
	invokeCmd.Flags().StringVarP(&invokeCmdConfig.event, "event", "e", "{}", "JSON event payload")
	invokeCmd.Flags().BoolVarP(&invokeCmdConfig.async, "async", "a", false, "fire and forget instead of waiting for the result")
	invokeCmd.MarkFlagRequired("service-name")
	invokeCmd.MarkFlagRequired("function-name")
}
