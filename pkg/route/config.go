package route

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Env maps environment variable names for route table configuration.
type Env struct {
	Base         string
	MaxRedirects string
}

// Config holds history-mode settings for a route table.
type Config struct {
	// Base is the history base path every route is relative to.
	// Default: "/"
	Base string `toml:"base"`

	// MaxRedirects bounds the number of redirect hops a single resolution may take.
	// Default: 10
	MaxRedirects int `toml:"max_redirects"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	c.loadEnv(env)
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.Base != "" {
		c.Base = overlay.Base
	}
	if overlay.MaxRedirects > 0 {
		c.MaxRedirects = overlay.MaxRedirects
	}
}

func (c *Config) loadDefaults() {
	if c.Base == "" {
		c.Base = "/"
	}
	if c.MaxRedirects <= 0 {
		c.MaxRedirects = 10
	}
}

func (c *Config) loadEnv(env *Env) {
	if env == nil {
		return
	}
	if v := os.Getenv(env.Base); v != "" {
		c.Base = v
	}
	if v := os.Getenv(env.MaxRedirects); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRedirects = n
		}
	}
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.Base, "/") || !strings.HasSuffix(c.Base, "/") {
		return fmt.Errorf("invalid base %q: must start and end with /", c.Base)
	}
	if c.MaxRedirects < 1 {
		return fmt.Errorf("max_redirects must be at least 1")
	}
	return nil
}
