package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/termilink/termilink/internal"
	"github.com/termilink/termilink/internal/apperr"
	"github.com/termilink/termilink/internal/noteservice"
	"github.com/termilink/termilink/internal/storage"
)

// loadConfig sets up logging and loads the configuration honoring the
// global --config flag. A missing configuration produces a message pointing
// at `config init`.
func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	setupLogger(cmd.Bool("verbose"))

	cfg, err := internal.LoadConfig(cmd.String("config"))
	if err != nil {
		if errors.Is(err, apperr.ErrNoConfig) {
			return nil, fmt.Errorf("no configuration found; run 'termilink config init <vault-path>' first")
		}
		return nil, err
	}
	return cfg, nil
}

// newService builds the note service on top of vault storage.
func newService(cfg *internal.Config) (*noteservice.Service, error) {
	store, err := storage.NewFS(cfg.VaultPath)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}
	return noteservice.NewService(cfg, store), nil
}
