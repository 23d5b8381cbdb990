// Handles the "fcgo function create" command

package cmd

import (
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/serverlessresearch/fcgo/pkg/fc"
	"github.com/serverlessresearch/fcgo/pkg/fcutil"
	"github.com/spf13/cobra"
)

var funcCreateCmdConfig struct {
	service string
	source  string
	name    string
	runtime string
	handler string
	memory  int
	timeout int
}

var funcCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new function from a source directory",
	Long: `This will package up the source directory as a zip archive and upload
it inline as the function code.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		var funcName string
		if funcCreateCmdConfig.name == "source" {
			funcName = strings.TrimSuffix(path.Base(funcCreateCmdConfig.source), path.Ext(funcCreateCmdConfig.source))
		} else {
			funcName = funcCreateCmdConfig.name
		}
		mgr.Logger.Info("Function name: " + funcName)

		zipFile, err := fcutil.ZipDirBase64(funcCreateCmdConfig.source)
		if err != nil {
			return errors.Wrap(err, "Packaging failed")
		}

		function, err := mgr.Client.CreateFunction(funcCreateCmdConfig.service, &fc.Function{
			FunctionName: funcName,
			Runtime:      funcCreateCmdConfig.runtime,
			Handler:      funcCreateCmdConfig.handler,
			MemorySize:   funcCreateCmdConfig.memory,
			Timeout:      funcCreateCmdConfig.timeout,
			Code:         &fc.Code{ZipFile: zipFile},
		})
		if err != nil {
			return errors.Wrap(err, "Create command failed")
		}
		mgr.Logger.Info("Successfully created function: " + function.FunctionName)
		return nil
	},
}

func init() {
	functionCmd.AddCommand(funcCreateCmd)

	funcCreateCmd.Flags().StringVarP(&funcCreateCmdConfig.service, "service-name", "s", "", "service to create the function in")
	funcCreateCmd.Flags().StringVar(&funcCreateCmdConfig.source, "source", "", "source directory for the function code")
	funcCreateCmd.Flags().StringVarP(&funcCreateCmdConfig.runtime, "runtime", "r", "python3", "runtime to use for function execution")
	funcCreateCmd.Flags().StringVar(&funcCreateCmdConfig.handler, "handler", "index.handler", "entry point of the function")
	funcCreateCmd.Flags().IntVarP(&funcCreateCmdConfig.memory, "memory", "m", 128, "memory size in MB")
	funcCreateCmd.Flags().IntVarP(&funcCreateCmdConfig.timeout, "timeout", "t", 60, "execution timeout in seconds")
	// The actual default is derived from the source option, so we set it
	// something that will be clear in the help output until we have all the
	// options parsed
	funcCreateCmd.Flags().StringVarP(&funcCreateCmdConfig.name, "function-name", "n", "source", "optional name for this function, if different than the source name")
	funcCreateCmd.MarkFlagRequired("service-name")
	funcCreateCmd.MarkFlagRequired("source")
}
