package cmd

import (
	"fmt"
	"os"

	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "tailorshop",
	Short: "Tailor shop back-office API",
	Long:  `Back-office API for a tailoring shop: customers, orders, measurements, items, fabrics and stock.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var (
			loaded string
			err    error
		)
		cfg, loaded, err = config.Load()
		if err != nil {
			return err
		}
		if err := logger.Init(!cfg.IsProduction(), cfg.LogLevel); err != nil {
			return err
		}
		if loaded != "" {
			logger.L().Info("Loaded environment file", zap.String("file", loaded))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	SilenceUsage: true,
	// With no subcommand the API server starts.
	RunE: runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
