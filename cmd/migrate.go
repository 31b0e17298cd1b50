package cmd

import (
	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.L()

		db, err := config.ConnectDatabase(cfg, log)
		if err != nil {
			return err
		}
		defer config.CloseDatabase(db, log)

		if err := config.Migrate(db); err != nil {
			return err
		}
		log.Info("Database migration completed successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
