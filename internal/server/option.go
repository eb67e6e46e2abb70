package server

import "github.com/termilink/termilink/internal"

// Option is a functional option for configuring the server runtime.
type Option func(*application)

type application struct {
	config *internal.Config
}

// WithConfig sets the application configuration.
func WithConfig(cfg *internal.Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}
