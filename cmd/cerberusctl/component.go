package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// componentCmd represents the component command
var componentCmd = &cobra.Command{
	Use:   "component",
	Short: "Manage components",
	Long:  `Manage the components that group elements, such as experiments or models.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'component' requires a subcommand (create)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(componentCmd)
}
