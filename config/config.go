package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port            string        `mapstructure:"port"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`
	Database struct {
		Host         string `mapstructure:"host"`
		Port         string `mapstructure:"port"`
		User         string `mapstructure:"user"`
		Password     string `mapstructure:"password"`
		Name         string `mapstructure:"name"`
		SSLMode      string `mapstructure:"sslmode"`
		MaxOpenConns int    `mapstructure:"max_open_conns"`
		AutoMigrate  bool   `mapstructure:"auto_migrate"`
	} `mapstructure:"database"`
	Redis struct {
		Enabled  bool          `mapstructure:"enabled"`
		Host     string        `mapstructure:"host"`
		Port     string        `mapstructure:"port"`
		Password string        `mapstructure:"password"`
		DB       int           `mapstructure:"db"`
		CacheTTL time.Duration `mapstructure:"cache_ttl"`
	} `mapstructure:"redis"`
	AMQP struct {
		URL      string `mapstructure:"url"`
		Exchange string `mapstructure:"exchange"`
	} `mapstructure:"amqp"`
	JWT struct {
		SecretKey string `mapstructure:"secret_key"`
		Issuer    string `mapstructure:"issuer"`
	} `mapstructure:"jwt"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	RateLimit struct {
		RequestsPerSecond float64 `mapstructure:"requests_per_second"`
		Burst             int     `mapstructure:"burst"`
	} `mapstructure:"rate_limit"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", "5s")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "finance")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cache_ttl", "10m")

	v.SetDefault("amqp.url", "")
	v.SetDefault("amqp.exchange", "finance.events")

	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.issuer", "")

	v.SetDefault("log.level", "info")

	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)
}

// LoadConfig reads config.yml from path, then lets environment variables
// (DATABASE_HOST, JWT_SECRET_KEY, ...) override it. A .env file in the working
// directory is loaded first when present.
func LoadConfig(path string) error {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.JWT.SecretKey == "" {
		return errors.New("jwt.secret_key must be set")
	}

	AppConfig = cfg
	return nil
}
