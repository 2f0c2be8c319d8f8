package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "smartfurnace/docs"
	"smartfurnace/internal/handlers"
	"smartfurnace/internal/logger"
	"smartfurnace/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the background tracker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd, opts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			if port == "" {
				port = a.cfg.Port
			}
			return serve(a, port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "Listen port or host:port (overrides port)")
	return cmd
}

func serve(a *app, port string) error {
	log := a.log
	apiHandler := handlers.NewHandler(a.services, log, a.metrics)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.services.Tracker.Run(ctx, a.cfg.Tick)

	srv := &server.Server{}
	errc := runHTTPServer(srv, port, apiHandler, log)
	log.Infow("smartfurnace started", "port", port, "db", a.cfg.DB.Path, "cycle_store", a.cfg.Cycle.Store)

	return waitForShutdown(cancel, srv, errc, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) <-chan error {
	errc := make(chan error, 1)
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Errorw("error starting server", "err", err)
			errc <- err
		}
	}()
	return errc
}

// waitForShutdown blocks until a termination signal or a server failure and
// then shuts down gracefully.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, errc <-chan error, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case <-quit:
	case runErr = <-errc:
	}

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
		if runErr == nil {
			runErr = err
		}
	}
	return runErr
}
