package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	AccessTTLHours  int    `mapstructure:"access_ttl_hours"`
	RefreshTTLHours int    `mapstructure:"refresh_ttl_hours"`
}

type AWSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	ExportBucket    string `mapstructure:"export_bucket"`
}

type RetentionConfig struct {
	// ExceptionDays is how long past-dated exceptions are kept before the
	// prune task removes them.
	ExceptionDays int `mapstructure:"exception_days"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	AWS       AWSConfig       `mapstructure:"aws"`
	Retention RetentionConfig `mapstructure:"retention"`
}

var instance *Config

// Load reads .env (if present) and environment variables into the Config
// singleton. Environment keys use underscores, e.g. DATABASE_HOST, JWT_SECRET.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7070)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.dbname", "delivery_availability")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.access_ttl_hours", 24)
	v.SetDefault("jwt.refresh_ttl_hours", 24*7)
	v.SetDefault("aws.region", "ap-southeast-1")
	v.SetDefault("retention.exception_days", 90)

	// Bind explicitly so AutomaticEnv sees nested keys.
	for _, key := range []string{
		"server.host", "server.port", "server.log_level",
		"database.host", "database.port", "database.user", "database.password", "database.dbname", "database.sslmode",
		"redis.addr", "redis.password", "redis.db",
		"jwt.secret", "jwt.access_ttl_hours", "jwt.refresh_ttl_hours",
		"aws.region", "aws.access_key_id", "aws.secret_access_key", "aws.export_bucket",
		"retention.exception_days",
	} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	instance = &cfg
	return instance, nil
}

// Get returns the loaded config; it panics if Load has not run.
func Get() *Config {
	if instance == nil {
		panic("config: Get called before Load")
	}
	return instance
}

// GetSafe returns the loaded config and whether it is initialized.
func GetSafe() (*Config, bool) {
	return instance, instance != nil
}
