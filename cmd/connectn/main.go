package main

import (
	"fmt"
	"os"

	"github.com/cbodonnell/connectn/pkg/log"
	"github.com/spf13/cobra"
)

var (
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "connectn",
	Short: "Connect N for any number of players",
	Long:  "Connect N drops colored pieces into a grid until someone lines up a streak. Players can be people or the computer.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := log.ParseLogLevel(logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log level '%s', using 'info'\n", logLevel)
			level = log.LogLevelInfo
		}
		log.SetDefaultLogger(log.New(os.Stderr, "", log.DefaultLoggerFlag, level))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set log level (trace, debug, info, warn, error)")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
