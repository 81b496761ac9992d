package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"social_workspace/bootstrap"
	"social_workspace/config"
	"social_workspace/database"
	"social_workspace/internal/logger"
	"social_workspace/internal/repository"
	"social_workspace/internal/repository/memory"
)

// Root wires every subcommand under the social_workspace binary.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "social_workspace",
		Short:         "Social posting backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serve := ServeCmd()
	// bare invocation behaves like serve
	root.RunE = serve.RunE

	root.AddCommand(
		serve,
		EnsureIndexesCmd(),
		TokenCmd(),
	)
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.Init(logger.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "social_workspace",
	})
	return cfg, nil
}

// openStore returns the configured store and a closer for it.
func openStore(ctx context.Context, cfg *config.Config, withIndexes bool) (*repository.Store, func(context.Context) error, error) {
	if cfg.Store.Driver == config.DriverMemory {
		l := logger.L()
		l.Warn().Msg("using in-memory store, data is lost on exit")
		return memory.New().Store(), func(context.Context) error { return nil }, nil
	}

	client, db, err := openMongo(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if withIndexes {
		if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
			_ = database.DisconnectMongo(context.Background(), client)
			return nil, nil, err
		}
	}
	closer := func(ctx context.Context) error { return database.DisconnectMongo(ctx, client) }
	return repository.NewMongoStore(client, db), closer, nil
}

func openMongo(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	client, err := database.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Timeout)
	if err != nil {
		return nil, nil, err
	}
	l := logger.L()
	l.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	return client, client.Database(cfg.Mongo.Database), nil
}
