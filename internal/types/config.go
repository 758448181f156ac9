package types

type RunMode string

const (
	// ModeLocal runs the API server with developer friendly logging
	ModeLocal RunMode = "local"
	// ModeAPI is the mode for running just the API server
	ModeAPI RunMode = "api"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// BackendType selects the record store behind the services
type BackendType string

const (
	// BackendSupabase is the hosted project: Postgres for rows, GoTrue for identity
	BackendSupabase BackendType = "supabase"
	// BackendMock is the in-process store used for UI development
	BackendMock BackendType = "mock"
)

type AuthProvider string

const (
	AuthProviderSupabase AuthProvider = "supabase"
	AuthProviderMock     AuthProvider = "mock"
)

func (b BackendType) String() string {
	return string(b)
}
