package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Store  StoreConfig
	JWT    JWTConfig
	Auth   AuthConfig
	Log    LogConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port      int
	BodyLimit int `mapstructure:"body_limit"`
}

type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type StoreConfig struct {
	Driver string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

type AuthConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

type CORSConfig struct {
	AllowOrigins string `mapstructure:"allow_origins"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Load reads .env, then an optional config.yaml, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.body_limit", 1<<20)
	v.SetDefault("mongo.uri", "mongodb://localhost:27017/?replicaSet=rs0")
	v.SetDefault("mongo.database", "social_workspace")
	v.SetDefault("mongo.timeout", "5s")
	v.SetDefault("store.driver", DriverMongo)
	v.SetDefault("jwt.ttl", "1h")
	v.SetDefault("jwt.issuer", "social_workspace")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("cors.allow_origins", "*")

	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.body_limit", "BODY_LIMIT")
	v.BindEnv("mongo.uri", "MONGO_URI")
	v.BindEnv("mongo.database", "DB_NAME")
	v.BindEnv("mongo.timeout", "MONGO_TIMEOUT")
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("jwt.secret", "JWT_SECRET")
	v.BindEnv("jwt.ttl", "JWT_TTL")
	v.BindEnv("jwt.issuer", "JWT_ISSUER")
	v.BindEnv("auth.bcrypt_cost", "BCRYPT_COST")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.pretty", "LOG_PRETTY")
	v.BindEnv("cors.allow_origins", "CORS_ALLOW_ORIGINS")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("jwt.ttl must be positive, got %s", c.JWT.TTL)
	}
	switch c.Store.Driver {
	case DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be within [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.Mongo.Timeout <= 0 {
		return fmt.Errorf("mongo.timeout must be positive, got %s", c.Mongo.Timeout)
	}
	return nil
}
