package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/logkit/appender"
	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/errors"
	"github.com/kbukum/logkit/logger"
	"github.com/kbukum/logkit/manager"
	"github.com/kbukum/logkit/validation"
)

// envPrefix namespaces environment overrides (e.g. LOGKIT_LEVEL).
const envPrefix = "LOGKIT"

// LoggerConfig is the decoded shape of one logger entry.
type LoggerConfig struct {
	Name      string           `mapstructure:"name" validate:"required"`
	Level     string           `mapstructure:"level"`
	Appenders []map[string]any `mapstructure:"appenders" validate:"required,min=1"`
}

// Document is the decoded shape of a configuration file. A document may
// hold a "loggers" list or describe a single logger at the top level.
type Document struct {
	Loggers []LoggerConfig `mapstructure:"loggers"`
}

// LoaderOption customizes Load.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	envFile  string
	registry *manager.LogManager
}

// WithEnvFile preloads a .env file before reading the document.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.envFile = path }
}

// WithRegistry registers the built loggers into m instead of the
// process-wide registry.
func WithRegistry(m *manager.LogManager) LoaderOption {
	return func(o *loaderOptions) { o.registry = m }
}

// Load reads a configuration file, builds every logger it describes, and
// registers them. The file format follows its extension (.json, .yaml,
// .yml). Building is all-or-nothing: the first invalid entry fails the
// load and nothing is registered.
func Load(path string, opts ...LoaderOption) ([]*logger.Logger, error) {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = manager.Global()
	}

	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return nil, errors.InvalidInput("unable to load env file").WithCause(err).WithDetail("env_file", o.envFile)
		}
	}

	if _, err := os.Stat(path); err != nil {
		return nil, errors.NotFound("configuration file", path).WithCause(err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.InvalidInput("unable to read configuration file").WithCause(err).WithDetail("path", path)
	}

	var doc Document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, errors.InvalidInput("malformed configuration document").WithCause(err)
	}
	if len(doc.Loggers) == 0 {
		// Single-logger document with name/level/appenders at the top.
		var single LoggerConfig
		if err := v.Unmarshal(&single); err != nil {
			return nil, errors.InvalidInput("malformed configuration document").WithCause(err)
		}
		if single.Name == "" && len(single.Appenders) == 0 {
			return nil, errors.InvalidInput("configuration document describes no loggers")
		}
		doc.Loggers = []LoggerConfig{single}
	}

	built := make([]*logger.Logger, 0, len(doc.Loggers))
	for _, cfg := range doc.Loggers {
		l, err := buildLogger(cfg)
		if err != nil {
			return nil, err
		}
		built = append(built, l)
	}

	for _, l := range built {
		if err := o.registry.AddLogger(l); err != nil {
			return nil, err
		}
	}
	return built, nil
}

// buildLogger turns one decoded entry into a Logger.
func buildLogger(cfg LoggerConfig) (*logger.Logger, error) {
	if err := validation.ValidateStruct(&cfg); err != nil {
		return nil, err
	}
	level := core.LevelInfo
	if cfg.Level != "" {
		parsed, err := core.ParseLevel(cfg.Level)
		if err != nil {
			return nil, errors.InvalidInput(err.Error()).WithDetail("logger", cfg.Name)
		}
		level = parsed
	}
	appenders, err := appender.FromConfigList(cfg.Appenders)
	if err != nil {
		return nil, err
	}
	return logger.New(cfg.Name, level, appenders)
}
