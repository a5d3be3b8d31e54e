package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/server"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/web"
	"github.com/urfave/cli/v3"
)

// Serve runs the HTTP site until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if err := r.configure(cmd); err != nil {
		return err
	}
	if host := cmd.String("host"); host != "" {
		r.config.Server.Host = host
	}
	if port := cmd.Int("port"); port > 0 {
		r.config.Server.Port = int(port)
	}

	loc, err := r.config.Server.Location()
	if err != nil {
		return err
	}

	db, err := r.database(ctx)
	if err != nil {
		return err
	}

	opts := web.Options{DB: db, Logger: r.logger, Now: r.now, Location: loc}
	if r.config.Metrics.Enabled {
		opts.Metrics = server.NewMetrics()
		opts.MetricsPath = r.config.Metrics.Path
	}

	router, err := web.NewRouter(opts)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(r.config.Server.Addr(), router, r.logger)
	if cmd.Bool("open") {
		url := "http://" + srv.Addr()
		go func() {
			if err := shared.OpenBrowser(url); err != nil {
				r.logger.Warn("failed to open browser", "url", url, "error", err)
			}
		}()
	}

	return srv.Run(ctx)
}
