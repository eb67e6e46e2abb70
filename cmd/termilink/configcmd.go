package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/termilink/termilink/internal"
	"github.com/termilink/termilink/internal/apperr"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage termiLink configuration",
		Commands: []*cli.Command{
			configInitCommand(),
			configShowCommand(),
			configSetVaultCommand(),
		},
	}
}

func configInitCommand() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a new configuration pointing at a vault",
		ArgsUsage: "<vault-path>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "daily-notes-path",
				Usage: "Daily notes directory relative to the vault root",
				Value: "Daily Notes",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			setupLogger(cmd.Bool("verbose"))

			vault := cmd.Args().First()
			if vault == "" {
				return fmt.Errorf("vault path is required")
			}

			if existing, ok := internal.FindConfigFile(); ok && !cmd.Bool("force") {
				return fmt.Errorf("%w: %s (use --force to overwrite)", apperr.ErrConfigExists, existing)
			}

			abs, err := internal.ResolvePath(vault)
			if err != nil {
				return err
			}

			cfg := internal.NewDefaultConfig()
			cfg.VaultPath = abs
			cfg.DailyNotesPath = cmd.String("daily-notes-path")
			if err := cfg.Validate(); err != nil {
				return err
			}

			path, err := internal.SaveConfig(cfg, cmd.String("config"))
			if err != nil {
				return err
			}

			fmt.Printf("Configuration written to %s\n", path)
			fmt.Printf("Vault: %s\n", cfg.VaultPath)
			return nil
		},
	}
}

func configShowCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Show the active configuration",
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "vault_path\t%s\n", cfg.VaultPath)
			fmt.Fprintf(w, "daily_notes_path\t%s\n", cfg.DailyNotesPath)
			fmt.Fprintf(w, "daily_note_format\t%s\n", cfg.DailyNoteFormat)
			fmt.Fprintf(w, "default_format\t%s\n", cfg.DefaultFormat)
			fmt.Fprintf(w, "include_timestamp\t%t\n", cfg.IncludeTimestamp)
			fmt.Fprintf(w, "timestamp_format\t%s\n", cfg.TimestampFormat)
			fmt.Fprintf(w, "append_newline\t%t\n", cfg.AppendNewline)
			fmt.Fprintf(w, "serve.port\t%d\n", cfg.Serve.Port)
			fmt.Fprintf(w, "serve.auth.mode\t%s\n", cfg.Serve.Auth.Mode)
			return w.Flush()
		},
	}
}

func configSetVaultCommand() *cli.Command {
	return &cli.Command{
		Name:      "set-vault",
		Usage:     "Point the configuration at a different vault",
		ArgsUsage: "<vault-path>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			vault := cmd.Args().First()
			if vault == "" {
				return fmt.Errorf("vault path is required")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			abs, err := internal.ResolvePath(vault)
			if err != nil {
				return err
			}
			cfg.VaultPath = abs
			if err := cfg.Validate(); err != nil {
				return err
			}

			path, err := internal.SaveConfig(cfg, cmd.String("config"))
			if err != nil {
				return err
			}

			fmt.Printf("Vault set to %s (saved to %s)\n", cfg.VaultPath, path)
			return nil
		},
	}
}
