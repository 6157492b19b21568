package migrations

import "errors"

var (
	// ErrInvalidConfig indicates a Config value failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedAdapter indicates an adapter name that has no SQL renderer.
	ErrUnsupportedAdapter = errors.New("unsupported adapter")

	// ErrDelimiterCollision indicates the seed document contains the dollar-quote tag
	// used to embed it. Only returned when Config.Strict is set.
	ErrDelimiterCollision = errors.New("seed contains dollar-quote delimiter")
)
