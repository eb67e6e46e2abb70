// Package storage abstracts vault file access behind a Provider interface.
package storage

import "github.com/termilink/termilink/internal/models"

// Provider is the vault file access contract.
type Provider interface {
	// Read returns the raw bytes of a vault file, relative to the vault root.
	Read(path string) ([]byte, error)
	// Write persists content at path, creating parent directories as needed.
	Write(path string, content []byte) error
	// Delete removes a file from the vault.
	Delete(path string) error
	// Move renames a file within the vault.
	Move(oldPath, newPath string) error
	// List returns metadata for every .md file under dir (vault-relative).
	List(dir string) ([]models.NoteMetadata, error)
	// Root returns the absolute vault root directory.
	Root() string
}
