// Package config loads the client configuration from files, environment
// variables and defaults, and wires up logging from the result.
package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Load loads the configuration from various sources
func Load(configFile string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()

	if err := setupViperConfig(v, configFile); err != nil {
		return nil, err
	}

	bindEnvironmentVariables(v)

	config, err := readAndUnmarshalConfig(v)
	if err != nil {
		return nil, err
	}

	if err := setupLogging(config, v); err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads the .env file if it exists
func loadEnvFile() error {
	if err := gotenv.Load(); err != nil {
		// .env file not found, that's okay - continue with other sources
		if !os.IsNotExist(err) {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}
	return nil
}

// setupViperConfig configures viper with file paths and defaults
func setupViperConfig(v *viper.Viper, configFile string) error {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/freelancehq")

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
	}

	if err := setupHomeConfigPath(v); err != nil {
		return err
	}

	setDefaults(v)

	v.SetEnvPrefix("FREELANCEHQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	return nil
}

// setupHomeConfigPath adds the home directory config path if available
func setupHomeConfigPath(v *viper.Viper) error {
	usr, err := user.Current()
	if err != nil {
		return nil
	}

	configPath := filepath.Join(usr.HomeDir, ".config", "freelancehq")
	v.AddConfigPath(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := os.MkdirAll(configPath, 0700); err != nil {
			logrus.Errorf("Failed to create config directory: %v", err)
		}
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.endpoint", "http://localhost:8000")
	v.SetDefault("api.base", "/api")
	v.SetDefault("api.timeout", 30*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.database", "freelancehq.db")
	v.SetDefault("server.limits.read_timeout", 10*time.Second)
	v.SetDefault("server.limits.write_timeout", 10*time.Second)
	v.SetDefault("server.limits.idle_timeout", 60*time.Second)

	v.SetDefault("secret", "freelancehq-dev-secret")
}

// bindEnvironmentVariables binds all environment variables to viper
func bindEnvironmentVariables(v *viper.Viper) {
	v.BindEnv("api.endpoint", "FREELANCEHQ_API_ENDPOINT")
	v.BindEnv("api.base", "FREELANCEHQ_API_BASE")
	v.BindEnv("api.timeout", "FREELANCEHQ_API_TIMEOUT")

	v.BindEnv("session.path", "FREELANCEHQ_SESSION_PATH")

	v.BindEnv("logging.level", "FREELANCEHQ_LOGGING_LEVEL")
	v.BindEnv("logging.format", "FREELANCEHQ_LOGGING_FORMAT")
	v.BindEnv("logging.output", "FREELANCEHQ_LOGGING_OUTPUT")

	v.BindEnv("server.host", "FREELANCEHQ_SERVER_HOST")
	v.BindEnv("server.port", "FREELANCEHQ_SERVER_PORT")
	v.BindEnv("server.database", "FREELANCEHQ_SERVER_DATABASE")

	v.BindEnv("secret", "FREELANCEHQ_SECRET")
}

// readAndUnmarshalConfig reads the configuration file and unmarshals it
func readAndUnmarshalConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults and environment variables
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setupLogging configures the logging system based on the config
func setupLogging(config *Config, v *viper.Viper) error {
	logrusLevel, err := logrus.ParseLevel(config.Logging.Level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	logrus.SetLevel(logrusLevel)

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		logrus.WithFields(logrus.Fields{
			"format": config.Logging.Format,
		}).Warn("Unknown log format")
	}

	if len(config.Logging.Output) > 0 {
		file, err := os.OpenFile(config.Logging.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("error opening log output: %w", err)
		}
		logrus.SetOutput(file)
	}

	if logrusLevel >= logrus.DebugLevel {
		for key, value := range v.AllSettings() {
			logrus.Debugf("Config '%s': %v\n", key, value)
		}
	}

	return nil
}
