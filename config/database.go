package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DatabaseConfiguration defines the database settings
type DatabaseConfiguration struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DBConfig returns the database DSN
func DBConfig() string {
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "verification")
	viper.SetDefault("DB_SSL_MODE", "disable")

	conf := &DatabaseConfiguration{
		Driver:   viper.GetString("DB_DRIVER"),
		Host:     viper.GetString("DB_HOST"),
		Port:     viper.GetInt("DB_PORT"),
		User:     viper.GetString("DB_USER"),
		Password: viper.GetString("DB_PASSWORD"),
		Name:     viper.GetString("DB_NAME"),
		SSLMode:  viper.GetString("DB_SSL_MODE"),
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		conf.User, conf.Password, conf.Host, conf.Port, conf.Name, conf.SSLMode,
	)
}

// RedisConfig returns the redis connection URL
func RedisConfig() string {
	viper.SetDefault("REDIS_URL", "redis://localhost:6379")
	return viper.GetString("REDIS_URL")
}
