package main

import (
	"github.com/spf13/cobra"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tajweed",
		Short: "Build and query the Qur'anic phoneme index",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "tajweed.yaml", "path to a YAML config file")

	root.AddCommand(newBuildIndexCmd())
	root.AddCommand(newSearchCmd())
	return root
}
