package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/staffdesk/staffdesk/internal/types"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Backend    BackendConfig    `validate:"required"`
	Supabase   SupabaseConfig
	Postgres   PostgresConfig
	Mock       MockConfig
	Sentry     SentryConfig
	Metrics    MetricsConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `mapstructure:"mode" validate:"required"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
	// AllowedOrigins lists the UI origins allowed by CORS. Empty allows any.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required"`
}

// BackendConfig selects which record store and identity provider the
// services are wired against.
type BackendConfig struct {
	Type types.BackendType `mapstructure:"type" validate:"required,oneof=supabase mock"`
}

// MockConfig configures the in-process backend.
type MockConfig struct {
	// Delay is slept on every repository call to imitate network latency.
	Delay time.Duration `mapstructure:"delay"`
	// Seed loads a handful of sample rows on startup.
	Seed bool `mapstructure:"seed"`
	// JWTSecret signs the session tokens issued by the mock identity provider.
	JWTSecret string `mapstructure:"jwt_secret"`
	// SessionTTL is the lifetime of mock session tokens.
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

func NewConfig() (*Configuration, error) {
	// .env is optional and only meant for local development
	_ = godotenv.Load()

	v := viper.New()

	// Modify config paths to ensure config.yaml is found
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/staffdesk")

	setDefaults(v)

	// Set up environment variables support
	v.SetEnvPrefix("STAFFDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
		fmt.Fprintf(os.Stderr, "No config file found, using defaults and environment\n")
	} else {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that are
// missing from the config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", types.ModeLocal)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("backend.type", types.BackendMock)

	v.SetDefault("supabase.base_url", "")
	v.SetDefault("supabase.service_key", "")
	v.SetDefault("supabase.jwt_secret", "")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.dbname", "postgres")
	v.SetDefault("postgres.sslmode", "require")
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.conn_max_lifetime_minutes", 30)

	v.SetDefault("mock.delay", DefaultMockDelay)
	v.SetDefault("mock.seed", true)
	v.SetDefault("mock.jwt_secret", "staffdesk-local-mock-secret")
	v.SetDefault("mock.session_ttl", time.Hour)

	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "local")
	v.SetDefault("sentry.sample_rate", 1.0)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "staffdesk")
}

// DefaultMockDelay is the artificial latency of the mock backend.
const DefaultMockDelay = 100 * time.Millisecond

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Backend.Type == types.BackendSupabase {
		return c.Supabase.Validate()
	}
	return nil
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Backend:    BackendConfig{Type: types.BackendMock},
		Mock: MockConfig{
			Delay:      DefaultMockDelay,
			Seed:       true,
			JWTSecret:  "staffdesk-local-mock-secret",
			SessionTTL: time.Hour,
		},
		Metrics: MetricsConfig{Enabled: true, Namespace: "staffdesk"},
	}
}
