package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cerberusctl",
	Short: "Cerberus authorization gateway",
	Long:  `A tool for running and administering the Cerberus authorization gateway.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
