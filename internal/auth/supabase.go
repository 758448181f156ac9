package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/nedpals/supabase-go"
	"github.com/staffdesk/staffdesk/internal/config"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/logger"
	"github.com/staffdesk/staffdesk/internal/types"
)

type supabaseAuth struct {
	cfg    config.SupabaseConfig
	client *supabase.Client
	logger *logger.Logger
}

func NewSupabaseAuth(cfg *config.Configuration, logger *logger.Logger) (Provider, error) {
	if err := cfg.Supabase.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Supabase base_url, service_key and jwt_secret must be set").
			Mark(ierr.ErrValidation)
	}

	client := supabase.CreateClient(cfg.Supabase.BaseURL, cfg.Supabase.ServiceKey)
	if client == nil {
		return nil, ierr.NewError("failed to create Supabase client").
			Mark(ierr.ErrSystem)
	}

	return &supabaseAuth{
		cfg:    cfg.Supabase,
		client: client,
		logger: logger,
	}, nil
}

func (s *supabaseAuth) GetProvider() types.AuthProvider {
	return types.AuthProviderSupabase
}

func (s *supabaseAuth) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	user, err := s.client.Auth.SignUp(ctx, supabase.UserCredentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Sign up was rejected by the identity provider").
			Mark(ierr.ErrValidation)
	}

	s.logger.Debugw("signed up user", "user_id", user.ID)
	return toIdentity(user), nil
}

func (s *supabaseAuth) SignIn(ctx context.Context, email, password string) (*Session, error) {
	details, err := s.client.Auth.SignIn(ctx, supabase.UserCredentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid email or password").
			Mark(ierr.ErrUnauthorized)
	}

	return &Session{
		AccessToken:  details.AccessToken,
		TokenType:    details.TokenType,
		RefreshToken: details.RefreshToken,
		ExpiresAt:    time.Now().UTC().Add(time.Duration(details.ExpiresIn) * time.Second),
		Identity:     toIdentity(&details.User),
	}, nil
}

func (s *supabaseAuth) GetUser(ctx context.Context, token string) (*Identity, error) {
	user, err := s.client.Auth.User(ctx, token)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Session is missing or expired").
			Mark(ierr.ErrUnauthorized)
	}
	return toIdentity(user), nil
}

func (s *supabaseAuth) SignOut(ctx context.Context, token string) error {
	if err := s.client.Auth.SignOut(ctx, token); err != nil {
		return ierr.WithError(err).
			WithHint("Session is missing or expired").
			Mark(ierr.ErrUnauthorized)
	}
	return nil
}

// ValidateToken checks a GoTrue access token against the project JWT secret
func (s *supabaseAuth) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	return parseToken(token, []byte(s.cfg.JWTSecret))
}

func toIdentity(user *supabase.User) *Identity {
	if user == nil {
		return nil
	}
	return &Identity{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// tokenClaims is the claim set shared by GoTrue tokens and mock tokens
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func parseToken(token string, secret []byte) (*Claims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHintf("unexpected signing method: %v", t.Header["alg"]).
				Mark(ierr.ErrUnauthorized)
		}
		return secret, nil
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Token parse error").
			Mark(ierr.ErrUnauthorized)
	}
	if !parsed.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid token claims").
			Mark(ierr.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return nil, ierr.NewError("token missing user ID").
			WithHint("Token missing user ID").
			Mark(ierr.ErrUnauthorized)
	}

	out := &Claims{UserID: claims.Subject, Email: claims.Email, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
