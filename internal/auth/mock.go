package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/staffdesk/staffdesk/internal/config"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/types"
	"golang.org/x/crypto/bcrypt"
)

type mockUser struct {
	identity Identity
	hash     []byte
}

// mockAuth is an in-process identity provider for the mock backend. Users
// and revoked tokens live for the lifetime of the process.
type mockAuth struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	users   map[string]*mockUser // by lower-cased email
	revoked map[string]time.Time // token id -> expiry
}

func NewMockAuth(cfg *config.Configuration) Provider {
	ttl := cfg.Mock.SessionTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &mockAuth{
		secret:  []byte(cfg.Mock.JWTSecret),
		ttl:     ttl,
		now:     func() time.Time { return time.Now().UTC() },
		users:   make(map[string]*mockUser),
		revoked: make(map[string]time.Time),
	}
}

func (m *mockAuth) GetProvider() types.AuthProvider {
	return types.AuthProviderMock
}

func (m *mockAuth) SignUp(ctx context.Context, email, password string) (*Identity, error) {
	if password == "" {
		return nil, ierr.NewError("password is required").
			WithHint("Password is required").
			Mark(ierr.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to hash password").
			Mark(ierr.ErrSystem)
	}

	key := strings.ToLower(email)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[key]; exists {
		return nil, ierr.NewError("user already registered").
			WithHintf("An account for %s already exists", email).
			Mark(ierr.ErrAlreadyExists)
	}

	u := &mockUser{
		identity: Identity{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROFILE),
			Email:     email,
			CreatedAt: m.now(),
		},
		hash: hash,
	}
	m.users[key] = u

	identity := u.identity
	return &identity, nil
}

func (m *mockAuth) SignIn(ctx context.Context, email, password string) (*Session, error) {
	m.mu.RLock()
	u, ok := m.users[strings.ToLower(email)]
	m.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword(u.hash, []byte(password)) != nil {
		return nil, ierr.NewError("invalid login credentials").
			WithHint("Invalid email or password").
			Mark(ierr.ErrUnauthorized)
	}

	now := m.now()
	expiresAt := now.Add(m.ttl)
	token, err := m.generateToken(&u.identity, now, expiresAt)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to generate token").
			Mark(ierr.ErrSystem)
	}

	identity := u.identity
	return &Session{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		Identity:    &identity,
	}, nil
}

func (m *mockAuth) GetUser(ctx context.Context, token string) (*Identity, error) {
	claims, err := m.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[strings.ToLower(claims.Email)]
	if !ok || u.identity.ID != claims.UserID {
		return nil, ierr.NewError("user not found").
			WithHint("The session belongs to an unknown user").
			Mark(ierr.ErrUnauthorized)
	}
	identity := u.identity
	return &identity, nil
}

// SignOut revokes the token until it would have expired anyway
func (m *mockAuth) SignOut(ctx context.Context, token string) error {
	claims, id, err := m.parse(token)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for jti, exp := range m.revoked {
		if exp.Before(now) {
			delete(m.revoked, jti)
		}
	}
	m.revoked[id] = claims.ExpiresAt
	return nil
}

func (m *mockAuth) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	claims, _, err := m.parse(token)
	return claims, err
}

func (m *mockAuth) parse(token string) (*Claims, string, error) {
	claims, err := parseToken(token, m.secret)
	if err != nil {
		return nil, "", err
	}

	m.mu.RLock()
	_, revoked := m.revoked[claims.TokenID]
	m.mu.RUnlock()
	if revoked {
		return nil, "", ierr.NewError("token has been revoked").
			WithHint("Sign in again").
			Mark(ierr.ErrUnauthorized)
	}
	return claims, claims.TokenID, nil
}

func (m *mockAuth) generateToken(identity *Identity, issuedAt, expiresAt time.Time) (string, error) {
	claims := tokenClaims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        types.GenerateUUID(),
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}
