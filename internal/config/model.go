package config

import (
	"fmt"
	"strings"
	"time"
)

// Config represents the application configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Logging LoggingConfig `mapstructure:"logging"`
	Server  ServerConfig  `mapstructure:"server"`

	// Secret used by the development server for signing tokens
	Secret string `mapstructure:"secret"`
}

// APIConfig points the client at the remote FreelanceHQ API.
type APIConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Base     string        `mapstructure:"base"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// SessionConfig controls where the login session is persisted.
type SessionConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig mirrors the logrus setup knobs.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// ServerConfig configures the local development API server.
type ServerConfig struct {
	Host     string             `mapstructure:"host"`
	Port     int                `mapstructure:"port"`
	Database string             `mapstructure:"database"`
	Limits   ServerLimitsConfig `mapstructure:"limits"`
}

type ServerLimitsConfig struct {
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// GetAPIBaseUrl returns the fully qualified base URL every resource path is
// resolved against, e.g. http://localhost:8000/api.
func (c *Config) GetAPIBaseUrl() string {
	endpoint := strings.TrimSuffix(c.API.Endpoint, "/")
	base := strings.Trim(c.API.Base, "/")
	if len(base) == 0 {
		return endpoint
	}
	return fmt.Sprintf("%s/%s", endpoint, base)
}

// GetSessionPath returns the configured session file location, if any.
func (c *Config) GetSessionPath() string {
	return c.Session.Path
}

// GetServerAddr returns the listen address for the development server.
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetSecret() string {
	return c.Secret
}
