// Package apperr defines sentinel errors shared across termiLink surfaces.
package apperr

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrNoConfig     = errors.New("no configuration found")
	ErrConfigExists = errors.New("configuration already exists")
)
