// Package internal holds the termiLink application configuration.
package internal

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/termilink/termilink/internal/apperr"
	"github.com/termilink/termilink/internal/models"
	pkgconfig "github.com/termilink/termilink/pkg/config"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Config represents the termiLink configuration.
//
// Date and time patterns are Go reference layouts (e.g. "2006-01-02"),
// not strftime strings.
type Config struct {
	VaultPath        string            `yaml:"vault_path" json:"vault_path"`
	DailyNotesPath   string            `yaml:"daily_notes_path" json:"daily_notes_path"`
	DailyNoteFormat  string            `yaml:"daily_note_format" json:"daily_note_format"`
	DefaultFormat    models.NoteFormat `yaml:"default_format" json:"default_format"`
	IncludeTimestamp bool              `yaml:"include_timestamp" json:"include_timestamp"`
	TimestampFormat  string            `yaml:"timestamp_format" json:"timestamp_format"`
	AppendNewline    bool              `yaml:"append_newline" json:"append_newline"`
	Serve            ServeConfig       `yaml:"serve,omitempty" json:"serve,omitempty"`
}

// Validate validates the configuration and resolves the vault path to an
// absolute directory. A missing or non-directory vault path is fatal.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.VaultPath, validation.Required),
		validation.Field(&c.DailyNotesPath, validation.Required),
		validation.Field(&c.DailyNoteFormat, validation.Required),
		validation.Field(&c.DefaultFormat, validation.Required,
			validation.In(models.FormatPlain, models.FormatTimestamp, models.FormatBullet, models.FormatTask)),
		validation.Field(&c.TimestampFormat, validation.Required),
	); err != nil {
		return err
	}

	abs, err := ResolvePath(c.VaultPath)
	if err != nil {
		return fmt.Errorf("vault_path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("vault_path does not exist: %s", abs)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault_path is not a directory: %s", abs)
	}
	c.VaultPath = abs

	return c.Serve.Validate()
}

// ServeConfig holds settings for the local quick-capture HTTP server.
type ServeConfig struct {
	Port     int        `yaml:"port" json:"port"`
	LogLevel slog.Level `yaml:"log_level" json:"log_level"`
	Auth     AuthConfig `yaml:"auth" json:"auth"`
}

// Address returns the HTTP listen address.
func (c *ServeConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the serve configuration.
func (c *ServeConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// AuthConfig holds authentication configuration for the HTTP server.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local use.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode" json:"mode"`
	Token string `yaml:"token" json:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	// Normalise empty mode to "disabled".
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with default values. VaultPath is
// intentionally empty: it has no sensible default and must come from the
// config file or `config init`.
func NewDefaultConfig() *Config {
	return &Config{
		DailyNotesPath:   "Daily Notes",
		DailyNoteFormat:  "2006-01-02",
		DefaultFormat:    models.FormatTimestamp,
		IncludeTimestamp: true,
		TimestampFormat:  "15:04",
		AppendNewline:    true,
		Serve: ServeConfig{
			Port:     8686,
			LogLevel: slog.LevelInfo,
			Auth: AuthConfig{
				Mode: AuthModeDisabled,
			},
		},
	}
}

// ConfigLocations returns the config discovery paths, in search order.
func ConfigLocations() []string {
	var out []string
	if home, err := os.UserHomeDir(); err == nil {
		out = append(out,
			filepath.Join(home, ".termilink.yaml"),
			filepath.Join(home, ".config", "termilink", "config.yaml"),
		)
	}
	if cwd, err := os.Getwd(); err == nil {
		out = append(out, filepath.Join(cwd, ".termilink.yaml"))
	}
	return out
}

// DefaultConfigPath returns the location used when saving without an
// explicit path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".termilink.yaml"
	}
	return filepath.Join(home, ".termilink.yaml")
}

// FindConfigFile returns the first existing config file from the discovery
// locations.
func FindConfigFile() (string, bool) {
	for _, p := range ConfigLocations() {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// LoadConfig loads and validates configuration. An empty path triggers
// discovery; no discovered file yields apperr.ErrNoConfig, while an explicit
// path that does not exist is an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		found, ok := FindConfigFile()
		if !ok {
			return nil, apperr.ErrNoConfig
		}
		path = found
	} else if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes the configuration, defaulting to DefaultConfigPath.
// It returns the path written.
func SaveConfig(cfg *Config, path string) (string, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	if err := pkgconfig.Save(path, cfg); err != nil {
		return "", err
	}
	return path, nil
}

// ResolvePath expands a leading "~" and resolves the result to an absolute
// path.
func ResolvePath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return filepath.Abs(p)
}
