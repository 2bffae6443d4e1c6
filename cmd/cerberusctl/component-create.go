package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blendata/cerberus/pkg/db"
	gormstore "github.com/blendata/cerberus/pkg/server/store/gorm"
)

// componentCreateCmd represents the component create command
var componentCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a component",
	Long: `Create a component.

Elements always belong to a component, and grants refer to components by name.
The default installation ships with 'experiment' and 'model'.

Example:
  cerberusctl component create dashboard`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfigOrExit()
		if err != nil {
			os.Exit(1)
		}

		database, err := db.Connect(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to DB: %v\n", err)
			os.Exit(1)
		}

		component, err := gormstore.NewComponentsStore(database).CreateComponent(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create component: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created component '%s' with id %d\n", component.Name, component.ID)
	},
}

func init() {
	componentCmd.AddCommand(componentCreateCmd)
}
