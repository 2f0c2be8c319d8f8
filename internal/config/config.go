// Package config loads application settings from configs/config.yml,
// SMARTFURNACE_* environment variables and bound command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"smartfurnace/internal/engine"
	"smartfurnace/internal/logger"
)

// Cycle start storage backends.
const (
	CycleStoreDB   = "db"
	CycleStoreFile = "file"
)

const envPrefix = "SMARTFURNACE"

// Config is the typed view of the settings.
type Config struct {
	Port        string         `mapstructure:"port"`
	DB          DBConfig       `mapstructure:"db"`
	Cycle       CycleConfig    `mapstructure:"cycle"`
	Temperature engine.Bounds  `mapstructure:"temperature"`
	Tick        time.Duration  `mapstructure:"tick"`
	Log         logger.Options `mapstructure:"log"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

// CycleConfig selects where the cycle start timestamp lives.
type CycleConfig struct {
	Store string `mapstructure:"store"` // db | file
	File  string `mapstructure:"file"`
}

// SetDefaults registers fallback values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "smartfurnace.db")
	v.SetDefault("cycle.store", CycleStoreDB)
	v.SetDefault("cycle.file", "start_cycle_time.txt")
	v.SetDefault("temperature.min", engine.DefaultBounds.MinC)
	v.SetDefault("temperature.max", engine.DefaultBounds.MaxC)
	v.SetDefault("tick", time.Second)
	v.SetDefault("log.level", logger.InfoLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}

// Load reads the config file at path, or configs/config.yml when path is
// empty. A missing default file is not an error; defaults apply.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs") // configs/config.yml
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the application cannot run with.
func (c Config) Validate() error {
	if err := c.Temperature.Check(); err != nil {
		return err
	}
	switch c.Cycle.Store {
	case CycleStoreDB:
	case CycleStoreFile:
		if c.Cycle.File == "" {
			return errors.New("cycle.file is required when cycle.store is file")
		}
	default:
		return fmt.Errorf("invalid cycle.store %q: must be %s or %s", c.Cycle.Store, CycleStoreDB, CycleStoreFile)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", c.Tick)
	}
	if c.DB.Path == "" {
		return errors.New("db.path is required")
	}
	return nil
}
