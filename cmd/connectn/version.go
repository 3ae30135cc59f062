package main

import (
	"fmt"

	"github.com/cbodonnell/connectn/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of connectn",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("connectn version %s\n", version.Get())
	},
}
