package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	Import  ImportConfig
	Log     LogConfig
	UI      UIConfig
}

// StorageConfig selects where the board blob lives.
type StorageConfig struct {
	Driver       string // memory | file | sqlite | postgres | s3
	Key          string
	Dir          string // file driver
	SQLitePath   string `mapstructure:"sqlite_path"`
	SQLiteDriver string `mapstructure:"sqlite_driver"` // sqlite3 (cgo) | sqlite (pure go)
	PostgresDSN  string `mapstructure:"postgres_dsn"`
	S3           S3Config
}

// S3Config holds bucket settings for the s3 driver.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	Prefix          string
	PathStyle       bool   `mapstructure:"path_style"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// ImportConfig points at spreadsheet layouts.
type ImportConfig struct {
	LayoutsFile string `mapstructure:"layouts_file"`
	Layout      string
}

// LogConfig holds logger settings. The terminal belongs to the board, so logs
// go to a file.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "drawboard")
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.key", "bracketState")
	v.SetDefault("storage.dir", filepath.Join(dataDir(), "state"))
	v.SetDefault("storage.sqlite_path", filepath.Join(dataDir(), "drawboard.db"))
	v.SetDefault("storage.sqlite_driver", "sqlite3")
	v.SetDefault("storage.postgres_dsn", "")
	v.SetDefault("storage.s3.bucket", "")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.s3.prefix", "")
	v.SetDefault("storage.s3.path_style", false)
	v.SetDefault("storage.s3.access_key_id", "")
	v.SetDefault("storage.s3.secret_access_key", "")
	v.SetDefault("import.layouts_file", filepath.Join(os.Getenv("HOME"), ".config", "drawboard", "layouts.toml"))
	v.SetDefault("import.layout", "default")
	v.SetDefault("log.path", filepath.Join(dataDir(), "drawboard.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.title", "Masters Cup Draw")

	v.SetConfigType("toml")
	v.SetEnvPrefix("DRAWBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads configuration from file and env. Env var overrides use prefix
// DRAWBOARD_. path, when non-empty, wins over DRAWBOARD_CONFIG.
func Load(path string) (Config, error) {
	v := newViper()

	if path == "" {
		path = os.Getenv("DRAWBOARD_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine; an explicit one must exist and parse
		if _, notFound := err.(viper.ConfigFileNotFoundError); explicit || !notFound {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Defaults returns the built-in settings with env overrides applied, without
// reading any file.
func Defaults() (Config, error) {
	var c Config
	if err := newViper().Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// DefaultPath is where Load looks when no path or DRAWBOARD_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "drawboard", "config.toml")
}

// Save writes cfg as TOML to path (DefaultPath when empty), creating the
// directory if needed. Credentials are written as given; prefer env vars.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("storage.driver", cfg.Storage.Driver)
	v.Set("storage.key", cfg.Storage.Key)
	v.Set("storage.dir", cfg.Storage.Dir)
	v.Set("storage.sqlite_path", cfg.Storage.SQLitePath)
	v.Set("storage.sqlite_driver", cfg.Storage.SQLiteDriver)
	v.Set("storage.postgres_dsn", cfg.Storage.PostgresDSN)
	v.Set("storage.s3.bucket", cfg.Storage.S3.Bucket)
	v.Set("storage.s3.region", cfg.Storage.S3.Region)
	v.Set("storage.s3.endpoint", cfg.Storage.S3.Endpoint)
	v.Set("storage.s3.prefix", cfg.Storage.S3.Prefix)
	v.Set("storage.s3.path_style", cfg.Storage.S3.PathStyle)
	v.Set("storage.s3.access_key_id", cfg.Storage.S3.AccessKeyID)
	v.Set("storage.s3.secret_access_key", cfg.Storage.S3.SecretAccessKey)
	v.Set("import.layouts_file", cfg.Import.LayoutsFile)
	v.Set("import.layout", cfg.Import.Layout)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.title", cfg.UI.Title)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
