package debugger

import (
	"io"
	"log"
)

type Config struct {
	Logger  *log.Logger
	MinAddr uint32
	MaxAddr uint32
}

type Option func(*Config) error

func WithLogger(logger *log.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return ErrArgumentInvalid
		}
		c.Logger = logger
		return nil
	}
}

// WithAddressRange overrides the platform's addressable range. Both bounds
// are inclusive.
func WithAddressRange(min, max uint32) Option {
	return func(c *Config) error {
		if min > max {
			return ErrArgumentInvalid
		}
		c.MinAddr, c.MaxAddr = min, max
		return nil
	}
}

// NewConfig applies opts over the platform defaults.
func NewConfig(min, max uint32, opts ...Option) (Config, error) {
	c := Config{MinAddr: min, MaxAddr: max}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return Config{}, err
		}
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard, "", 0)
	}
	return c, nil
}

