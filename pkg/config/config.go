package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix 是環境變數覆寫設定時使用的前綴，例如 MULTIPLIER_SERVER_ADDRESS
const EnvPrefix = "MULTIPLIER"

type Config struct {
	Server  ServerConfig
	Log     LogConfig
	CORS    CORSConfig
	Metrics MetricsConfig
	Tracing TracingConfig
}

type ServerConfig struct {
	Address         string
	Mode            string
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string
}

type CORSConfig struct {
	MaxAge time.Duration `mapstructure:"max_age"`
}

// MetricsConfig 的 Address 為空時不啟動 prometheus 監聽
type MetricsConfig struct {
	Address string
}

type TracingConfig struct {
	Enabled     bool
	ServiceName string `mapstructure:"service_name"`
}

// Load 從 ./pkg/config 或工作目錄讀取 config.yaml，找不到檔案時使用預設值
func Load() (*Config, error) {
	return LoadFrom("./pkg/config", ".")
}

// LoadFrom 依序在 paths 中尋找 config.yaml，並套用環境變數覆寫
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "127.0.0.1:8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("cors.max_age", 3600*time.Second)
	v.SetDefault("metrics.address", "")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "multiplier")
}

// Validate 檢查設定值是否可用
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return errors.New("server.address is required")
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return errors.Newf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Newf("log.level %q is not supported", c.Log.Level)
	}

	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}

	if c.CORS.MaxAge < 0 {
		return errors.New("cors.max_age must not be negative")
	}

	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return errors.New("tracing.service_name is required when tracing is enabled")
	}

	return nil
}
