package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/ketchup/internal/server"
	"github.com/dmitrymomot/ketchup/pkg/catalog"
	"github.com/dmitrymomot/ketchup/pkg/logger"
)

func (a *app) cmdServe() *cli.Command {
	var addr string

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the catalog and its JavaScript asset over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address (default: $KETCHUP_SERVER_ADDR or :8080)",
				Destination: &addr,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			log, err := logger.New(a.cfg.Log, server.RequestIDExtractor)
			if err != nil {
				return err
			}

			cat, err := a.catalog()
			if err != nil {
				log.Error("failed to load catalog", slog.Any("error", err))
				return err
			}
			if a.cfg.MessagesFile != "" {
				log.Info("custom messages loaded",
					slog.String("file", a.cfg.MessagesFile),
					slog.Int("rules", cat.Len()),
				)
			}

			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			arity := catalog.DefaultArity()
			if a.cfg.SkipArityCheck {
				arity = nil
			}

			srv, err := server.New(cat,
				server.WithLogger(log),
				server.WithAddress(addr),
				server.WithReadTimeout(a.cfg.Server.ReadTimeout),
				server.WithWriteTimeout(a.cfg.Server.WriteTimeout),
				server.WithShutdownTimeout(a.cfg.Server.ShutdownTimeout),
				server.WithCacheMaxAge(a.cfg.Server.CacheMaxAge),
				server.WithJSTarget(a.cfg.JSTarget),
				server.WithArity(arity),
			)
			if err != nil {
				return err
			}

			return srv.Run(ctx)
		},
	}
}
