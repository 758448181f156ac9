package auth

import (
	"context"
	"time"

	"github.com/staffdesk/staffdesk/internal/config"
	"github.com/staffdesk/staffdesk/internal/logger"
	"github.com/staffdesk/staffdesk/internal/types"
)

// Identity is a user as the identity provider knows it
type Identity struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// Session is the result of a password sign in
type Session struct {
	AccessToken  string
	TokenType    string
	RefreshToken string
	ExpiresAt    time.Time
	Identity     *Identity
}

// Claims are the fields read from a validated access token
type Claims struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
	TokenID   string
}

type Provider interface {
	GetProvider() types.AuthProvider

	// User Management
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	GetUser(ctx context.Context, token string) (*Identity, error)
	SignOut(ctx context.Context, token string) error
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

// NewProvider returns the identity provider matching the configured backend
func NewProvider(cfg *config.Configuration, logger *logger.Logger) (Provider, error) {
	switch cfg.Backend.Type {
	case types.BackendSupabase:
		return NewSupabaseAuth(cfg, logger)
	default:
		return NewMockAuth(cfg), nil
	}
}
