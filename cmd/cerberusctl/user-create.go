package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blendata/cerberus/pkg/db"
	gormstore "github.com/blendata/cerberus/pkg/server/store/gorm"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a user",
	Long: `Create a user.

Permission checks identify users by the numeric id printed here; the central
web application stores the mapping from its own accounts to these ids.

Example:
  cerberusctl user create komsan`,
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

		user, err := gormstore.NewUsersStore(database).CreateUser(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created user '%s' with id %d\n", user.Name, user.ID)
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
}
