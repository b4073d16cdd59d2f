package loadout

import (
	"os"
	"strings"
	"sync"
)

// Config owns the two value sources a Resolver consults. Construct one per
// configuration context; Resolver returns the same memoized instance for the
// Config's lifetime.
type Config struct {
	envLookup EnvLookupFunc
	creds     Credentials

	once     sync.Once
	resolver *Resolver
}

// Option configures a Config.
type Option func(*Config)

// WithEnvLookup overrides the environment variable lookup strategy.
func WithEnvLookup(fn EnvLookupFunc) Option {
	return func(c *Config) {
		if fn != nil {
			c.envLookup = fn
		}
	}
}

// WithEnviron adapts an os.Environ-style "KEY=VALUE" slice into the
// environment source. Entries without an equals sign are skipped; later
// entries win on duplicate keys.
func WithEnviron(environ []string) Option {
	return func(c *Config) {
		values := make(map[string]string, len(environ))
		for _, entry := range environ {
			key, value, ok := strings.Cut(entry, "=")
			if !ok {
				continue
			}
			values[key] = value
		}
		c.envLookup = func(name string) (string, bool) {
			v, ok := values[name]
			return v, ok
		}
	}
}

// WithCredentials supplies the credentials tree. Layer trees from several
// providers with Credentials.Merge before passing the result in.
func WithCredentials(creds Credentials) Option {
	return func(c *Config) {
		if creds != nil {
			c.creds = creds
		}
	}
}

// New constructs a Config. Without options the environment source is the
// process environment and the credentials tree is empty.
func New(opts ...Option) *Config {
	c := &Config{
		envLookup: os.LookupEnv,
		creds:     Credentials{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolver returns this Config's resolver. The first call constructs it;
// every later call returns the same instance.
func (c *Config) Resolver() *Resolver {
	c.once.Do(func() {
		c.resolver = &Resolver{
			envLookup: c.envLookup,
			creds:     c.creds,
		}
	})
	return c.resolver
}
