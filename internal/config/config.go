// Package config loads runtime settings from a YAML file, a .env file and
// VOLUNTAURA_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"voluntaura/internal/prefs"
	"voluntaura/internal/swipe"
	"voluntaura/internal/util"
)

const envPrefix = "VOLUNTAURA"

// Config is the full runtime configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
	Swipe   SwipeConfig   `mapstructure:"swipe"`
}

// ServerConfig controls the HTTP listener and static assets.
type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	StaticDir   string   `mapstructure:"static_dir"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// StorageConfig locates the sqlite database and the state key inside it.
type StorageConfig struct {
	Path string `mapstructure:"path"`
	Key  string `mapstructure:"key"`
}

// CatalogConfig points at an alternative catalog file. Empty uses the bundled seed.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SwipeConfig tunes the swipe session.
type SwipeConfig struct {
	Celebration   time.Duration `mapstructure:"celebration"`
	ResetOnRetake bool          `mapstructure:"reset_on_retake"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.static_dir", "web/dist")
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("storage.path", "data/voluntaura.db")
	v.SetDefault("storage.key", prefs.DefaultKey)
	v.SetDefault("catalog.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("swipe.celebration", swipe.DefaultCelebration)
	v.SetDefault("swipe.reset_on_retake", false)
}

// Load reads configuration. path may be empty, in which case
// VOLUNTAURA_CONFIG is consulted and then ./configs/voluntaura.yaml and
// ./voluntaura.yaml are searched.
func Load(path string) (*Config, error) {
	loadEnvFile()

	if path == "" {
		path = util.EnvOrDefault(envPrefix+"_CONFIG", "")
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("voluntaura")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return errors.New("server.addr is required")
	}
	if strings.TrimSpace(cfg.Storage.Path) == "" {
		return errors.New("storage.path is required")
	}
	if strings.TrimSpace(cfg.Storage.Key) == "" {
		return errors.New("storage.key is required")
	}
	if cfg.Swipe.Celebration <= 0 {
		return fmt.Errorf("swipe.celebration must be positive, got %s", cfg.Swipe.Celebration)
	}
	return nil
}
