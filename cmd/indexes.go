package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"social_workspace/bootstrap"
	"social_workspace/config"
	"social_workspace/database"
	"social_workspace/internal/logger"
)

func EnsureIndexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-indexes",
		Short: "Create the mongo indexes and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			l := logger.L()
			if cfg.Store.Driver != config.DriverMongo {
				l.Info().Str("driver", cfg.Store.Driver).Msg("no indexes for this driver")
				return nil
			}

			ctx := cmd.Context()
			client, db, err := openMongo(ctx, cfg)
			if err != nil {
				return err
			}
			defer database.DisconnectMongo(context.Background(), client)

			if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
				return err
			}
			l.Info().Msg("indexes ensured")
			return nil
		},
	}
}
