package app

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"colony/internal/logs"
	"colony/internal/sims/colony"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Colony colony.Config `yaml:"colony" mapstructure:"colony"`
	Log    logs.Config   `yaml:"log" mapstructure:"log"`

	ConfigFile  string            `yaml:"-" mapstructure:"-"`
	PrintConfig bool              `yaml:"-" mapstructure:"-"`
	Overrides   map[string]string `yaml:"-" mapstructure:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Colony: colony.DefaultConfig(), Log: logs.DefaultConfig()}
}

// flag name -> viper key
var flagKeys = map[string]string{
	"size":         "colony.size",
	"bases":        "colony.bases",
	"seed":         "colony.seed",
	"max-attempts": "colony.max_attempts",
	"log-level":    "log.level",
	"log-file":     "log.file",
	"log-dev":      "log.dev",
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Colony.Size, "size", c.Colony.Size, "grid side length")
	fs.IntVar(&c.Colony.Bases, "bases", c.Colony.Bases, "number of bases to place")
	fs.Int64Var(&c.Colony.Seed, "seed", c.Colony.Seed, "seed for placement randomness")
	fs.IntVar(&c.Colony.MaxAttempts, "max-attempts", c.Colony.MaxAttempts, "random draws allowed per base")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level (debug, info, warn, error)")
	fs.StringVar(&c.Log.File, "log-file", c.Log.File, "also write JSON logs to this rotated file")
	fs.BoolVar(&c.Log.Dev, "log-dev", c.Log.Dev, "development logging with stack traces")
	fs.StringVarP(&c.ConfigFile, "config", "c", c.ConfigFile, "config file (yaml, json or toml)")
	fs.BoolVar(&c.PrintConfig, "print-config", c.PrintConfig, "print the effective config as YAML and exit")
	fs.StringToStringVar(&c.Overrides, "set", c.Overrides, "generator override in key=value form, e.g. --set size=12,bases=3")
}

// Load resolves the final configuration. Precedence, lowest first: defaults,
// config file, COLONY_* environment variables, flags set on the command line,
// --set overrides.
func (c *Config) Load(fs *pflag.FlagSet) error {
	v := viper.New()
	defaults := NewConfig()
	v.SetDefault("colony.size", defaults.Colony.Size)
	v.SetDefault("colony.bases", defaults.Colony.Bases)
	v.SetDefault("colony.seed", defaults.Colony.Seed)
	v.SetDefault("colony.max_attempts", defaults.Colony.MaxAttempts)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.max_size", defaults.Log.MaxSize)
	v.SetDefault("log.max_backups", defaults.Log.MaxBackups)
	v.SetDefault("log.max_age", defaults.Log.MaxAge)
	v.SetDefault("log.compress", defaults.Log.Compress)
	v.SetDefault("log.dev", defaults.Log.Dev)

	v.SetEnvPrefix("colony")
	// COLONY_LOG_LEVEL -> log.level, COLONY_COLONY_SIZE -> colony.size
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if c.ConfigFile != "" {
		v.SetConfigFile(c.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", c.ConfigFile, err)
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	c.Colony = c.Colony.Apply(c.Overrides)
	return c.validate()
}

func (c *Config) validate() error {
	if c.Colony.Size < 0 {
		return fmt.Errorf("size must not be negative, got %d", c.Colony.Size)
	}
	if c.Colony.Bases < 0 {
		return fmt.Errorf("bases must not be negative, got %d", c.Colony.Bases)
	}
	if c.Colony.MaxAttempts <= 0 {
		return fmt.Errorf("max attempts must be positive, got %d", c.Colony.MaxAttempts)
	}
	return nil
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
