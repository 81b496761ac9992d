package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"social_workspace/config"
	"social_workspace/internal/logger"
	"social_workspace/internal/server"
	"social_workspace/internal/token"
)

const shutdownTimeout = 10 * time.Second

func ServeCmd() *cobra.Command {
	var skipIndexes bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, skipIndexes)
		},
	}
	cmd.Flags().BoolVar(&skipIndexes, "skip-indexes", false, "do not create mongo indexes on startup")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, skipIndexes bool) error {
	log := logger.L()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, !skipIndexes)
	if err != nil {
		return err
	}

	app := server.New(server.Deps{
		Store:       store,
		Tokens:      token.NewManager(cfg.JWT.Secret, cfg.JWT.TTL, cfg.JWT.Issuer),
		Logger:      log,
		BcryptCost:  cfg.Auth.BcryptCost,
		Timeout:     cfg.Mongo.Timeout,
		BodyLimit:   cfg.Server.BodyLimit,
		CORSOrigins: cfg.CORS.AllowOrigins,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr()).Str("driver", cfg.Store.Driver).Msg("listening")
		errCh <- app.Listen(cfg.Server.Addr())
	}()

	var runErr error
	select {
	case runErr = <-errCh:
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown")
	}
	if err := closeStore(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("store close")
	}
	return runErr
}
