package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StoreSQLite  = "sqlite"
	StoreSpanner = "spanner"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	GRPC struct {
		Addr            string
		ShutdownTimeout int `mapstructure:"shutdown_timeout_seconds"`
	} `mapstructure:"grpc"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Store struct {
		Driver string
		SQLite struct {
			Path string
		} `mapstructure:"sqlite"`
		Spanner struct {
			Database string
		} `mapstructure:"spanner"`
	} `mapstructure:"store"`

	Export struct {
		Dir string
		S3  struct {
			Bucket    string
			Region    string
			Endpoint  string
			PathStyle bool   `mapstructure:"path_style"`
			Prefix    string
		} `mapstructure:"s3"`
	} `mapstructure:"export"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "dev")
	v.SetDefault("grpc.addr", ":50051")
	v.SetDefault("grpc.shutdown_timeout_seconds", 5)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("store.driver", StoreSQLite)
	v.SetDefault("store.sqlite.path", "materials.db")
	v.SetDefault("store.spanner.database", "projects/test-project/instances/emulator-instance/databases/test-db")
	v.SetDefault("export.dir", "exports")
	v.SetDefault("export.s3.bucket", "")
	v.SetDefault("export.s3.region", "us-east-1")
	v.SetDefault("export.s3.endpoint", "")
	v.SetDefault("export.s3.path_style", false)
	v.SetDefault("export.s3.prefix", "exports/")
}

// Load reads the optional config file at path and applies APP_* environment
// overrides, e.g. APP_STORE_DRIVER for store.driver.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreSQLite:
		if c.Store.SQLite.Path == "" {
			return fmt.Errorf("config: store.sqlite.path is required")
		}
	case StoreSpanner:
		if c.Store.Spanner.Database == "" {
			return fmt.Errorf("config: store.spanner.database is required")
		}
	default:
		return fmt.Errorf("config: unknown store.driver %q", c.Store.Driver)
	}
	return nil
}
