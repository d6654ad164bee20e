// Package config loads the service configuration from a YAML file on top of
// the defaults declared in the struct tags.
package config

import (
	"net"
	"os"
	"strconv"
	"time"

	"emperror.dev/errors"
	"github.com/apex/log"
	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/CristiGvl/picoArch/internal/settings"
)

// DefaultLocation is where the configuration is read from when no path is given.
const DefaultLocation = "picoarch.yml"

// Configuration is the root of the configuration file.
type Configuration struct {
	// Debug forces the log level to debug regardless of Log.Level.
	Debug bool `default:"false" yaml:"debug"`

	Api      ApiConfiguration      `yaml:"api"`
	Log      LogConfiguration      `yaml:"log"`
	Settings SettingsConfiguration `yaml:"settings"`

	path string
}

// ApiConfiguration defines the HTTP server.
type ApiConfiguration struct {
	// The interface that the webserver should bind to.
	Host string `default:"0.0.0.0" yaml:"host"`
	// The port that the webserver should bind to.
	Port int `default:"8080" yaml:"port"`

	ReadTimeout  time.Duration `default:"30s" yaml:"read_timeout"`
	WriteTimeout time.Duration `default:"30s" yaml:"write_timeout"`
	IdleTimeout  time.Duration `default:"120s" yaml:"idle_timeout"`
	// RequestTimeout bounds the work done by a single handler.
	RequestTimeout time.Duration `default:"10s" yaml:"request_timeout"`
}

// LogConfiguration selects the log level and output format.
type LogConfiguration struct {
	Level string `default:"info" yaml:"level"`
	// Format is either "cli" or "json".
	Format string `default:"cli" yaml:"format"`
}

// SettingsConfiguration selects where settings are persisted.
type SettingsConfiguration struct {
	// Backend is "registry" for the native store or "memory" for a store
	// that only lives as long as the process.
	Backend string `default:"registry" yaml:"backend"`
}

// New returns a configuration holding only default values.
func New() (*Configuration, error) {
	var c Configuration
	if err := defaults.Set(&c); err != nil {
		return nil, errors.WrapIf(err, "config: could not apply defaults")
	}
	return &c, nil
}

// FromFile reads the configuration at path. A missing file is not an error;
// the defaults are returned instead.
func FromFile(path string) (*Configuration, error) {
	c, err := New()
	if err != nil {
		return nil, err
	}
	c.path = path

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.WithField("path", path).Debug("no configuration file found, using defaults")
			return c, nil
		}
		return nil, errors.WrapIff(err, "config: could not read %s", path)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.WrapIff(err, "config: could not parse %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Path returns the file the configuration was loaded from.
func (c *Configuration) Path() string {
	return c.path
}

// Validate checks values that the defaults cannot guarantee.
func (c *Configuration) Validate() error {
	if c.Api.Port < 1 || c.Api.Port > 65535 {
		return errors.Errorf("config: api.port %d is out of range", c.Api.Port)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.WrapIff(err, "config: log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "cli", "json":
	default:
		return errors.Errorf("config: unknown log.format %q", c.Log.Format)
	}
	switch c.Settings.Backend {
	case settings.BackendRegistry, settings.BackendMemory:
	default:
		return errors.Errorf("config: unknown settings.backend %q", c.Settings.Backend)
	}
	return nil
}

// Address returns the host:port pair the webserver listens on.
func (a ApiConfiguration) Address() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}
