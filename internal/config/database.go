package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SupabaseConfig holds the hosted project settings used by the identity
// provider. Row access goes through Postgres below.
type SupabaseConfig struct {
	BaseURL    string `mapstructure:"base_url" validate:"required,url"`
	ServiceKey string `mapstructure:"service_key" validate:"required"`
	JWTSecret  string `mapstructure:"jwt_secret" validate:"required"`
}

func (c SupabaseConfig) Validate() error {
	return validator.New().Struct(c)
}

type PostgresConfig struct {
	Host                   string `mapstructure:"host"`
	Port                   int    `mapstructure:"port"`
	User                   string `mapstructure:"user"`
	Password               string `mapstructure:"password"`
	DBName                 string `mapstructure:"dbname"`
	SSLMode                string `mapstructure:"sslmode"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes"`
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
