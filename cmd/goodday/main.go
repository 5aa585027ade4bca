package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var projectRoot string

var rootCmd = &cobra.Command{
	Use:   "goodday",
	Short: "Good Day survey pipeline",
	Long: `Good Day collects daily self-report surveys into per-user CSV files on
GitHub, renders weekly charts from them, and nudges users to keep logging.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectRoot, "root", ".", "project root holding the config directory")
	rootCmd.AddCommand(serveCmd, chartsCmd, remindCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
