// Package testutil provides shared test helpers for setting up vaults.
package testutil

import (
	"testing"

	"github.com/termilink/termilink/internal"
	"github.com/termilink/termilink/internal/storage"
)

// TestVault creates a temporary vault directory with a storage.Provider.
func TestVault(t *testing.T) (string, storage.Provider) {
	t.Helper()
	vaultDir := t.TempDir()
	store, err := storage.NewFS(vaultDir)
	if err != nil {
		t.Fatal(err)
	}
	return vaultDir, store
}

// TestConfig returns a default configuration rooted at vaultDir.
func TestConfig(t *testing.T, vaultDir string) *internal.Config {
	t.Helper()
	cfg := internal.NewDefaultConfig()
	cfg.VaultPath = vaultDir
	return cfg
}
