// Command api runs the gameshelf HTTP API.
//
// Subcommands:
//
//	serve    start the HTTP server (default)
//	migrate  apply database schema migrations and exit
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gameshelf/backend/internal/config"
	"github.com/gameshelf/backend/internal/database"
	"github.com/gameshelf/backend/internal/handler"
	"github.com/gameshelf/backend/internal/logger"
	"github.com/gameshelf/backend/internal/middleware"
	"github.com/gameshelf/backend/internal/repository"
	"github.com/gameshelf/backend/internal/router"
	"github.com/gameshelf/backend/internal/server"
	"github.com/gameshelf/backend/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func main() {
	root := &cobra.Command{
		Use:          "api",
		Short:        "gameshelf catalog API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(cmd.Context())
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap() (*config.Config, *zerolog.Logger, *logger.LoggerService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("initializing logger: %w", err)
	}

	return cfg, log, loggerService, nil
}

func serve() error {
	cfg, log, loggerService, err := bootstrap()
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(srv)
	services, err := service.NewServices(srv, repos)
	if err != nil {
		return err
	}
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	srv.SetupHTTPServer(router.New(handlers, middlewares))

	// Serve until a termination signal arrives, then drain.
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info().Msg("shutdown complete")
	return nil
}

func migrate(ctx context.Context) error {
	cfg, log, _, err := bootstrap()
	if err != nil {
		return err
	}

	return database.Migrate(ctx, log, cfg)
}
