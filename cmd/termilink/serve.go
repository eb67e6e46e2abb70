package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/termilink/termilink/internal/mcpserver"
	"github.com/termilink/termilink/internal/server"
	"github.com/termilink/termilink/internal/vaultwatch"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the quick-capture HTTP server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "HTTP listen port (overrides config)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if p := int(cmd.Int("port")); p > 0 {
				cfg.Serve.Port = p
			}
			return server.Run(ctx, server.WithConfig(cfg))
		},
	}
}

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Run the MCP server on stdin/stdout",
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			svc, err := newService(cfg)
			if err != nil {
				return err
			}
			return mcpserver.New(cfg, svc).ServeStdio()
		},
	}
}

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Watch the vault and log note changes",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger := slog.Default()
			logger.Info("Watching vault", slog.String("path", cfg.VaultPath))
			return vaultwatch.Watch(ctx, cfg.VaultPath, logger, func(kind, path string) {
				logger.Info("note "+kind, slog.String("path", path))
			})
		},
	}
}
