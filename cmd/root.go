// Root of command-line argument parsing.
// This file was based off the standard cobra template, see
// https://github.com/spf13/cobra
package cmd

import (
	"fmt"
	"os"

	"github.com/serverlessresearch/fcgo/pkg/fcmgr"
	"github.com/spf13/cobra"
)

var cfgFile string

var mgr *fcmgr.Manager

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fcgo",
	Short: "Command line client for Function Compute",
	Long:  `Manage and invoke services, functions and triggers on a Function Compute deployment.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		mgrArgs := map[string]interface{}{}
		if cfgFile != "" {
			mgrArgs["config-file"] = cfgFile
		}

		var err error
		mgr, err = fcmgr.NewManager(mgrArgs)
		if err != nil {
			fmt.Printf("Failed to initialize fcgo: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by fcgo.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if mgr == nil || mgr.Logger == nil {
			fmt.Printf("%v\n", err)
		} else {
			mgr.Logger.Error(err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is configs/fcgo.yaml)")
}
