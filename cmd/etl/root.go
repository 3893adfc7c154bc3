package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"episode-srv/config"
	configPostgre "episode-srv/config/postgre"
	"episode-srv/internal/etl"
	"episode-srv/pkg/log"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "etl",
		Short:         "Batch jobs for the episode catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newSeedCommand())

	return rootCmd
}

func newSeedCommand() *cobra.Command {
	var dataDir string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Bootstrap the schema and load the episode CSV dataset",
		Long: "Reads the five source CSV files, creates any missing tables and " +
			"upserts episodes, reference entities and their associations. " +
			"Safe to re-run against a populated database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger := log.Init(log.ZapConfig{
				Level:        cfg.Logger.Level,
				Mode:         cfg.Logger.Mode,
				Encoding:     cfg.Logger.Encoding,
				ColorEnabled: cfg.Logger.ColorEnabled,
			})

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
			if err != nil {
				return err
			}
			defer configPostgre.Disconnect(ctx, postgresDB)

			if dataDir == "" {
				dataDir = cfg.ETL.DataDir
			}

			pipeline := etl.New(logger, postgresDB, dataDir)
			if err := pipeline.Run(ctx); err != nil {
				return err
			}

			logger.Info(ctx, "Seed completed successfully.")
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory holding the source CSV files (defaults to etl.data_dir from config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "Abort the seed after this long")

	return cmd
}
