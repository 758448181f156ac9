package service

import (
	"context"
	"strings"
	"time"

	"github.com/staffdesk/staffdesk/internal/api/dto"
	authProvider "github.com/staffdesk/staffdesk/internal/auth"
	"github.com/staffdesk/staffdesk/internal/domain/profile"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/interfaces"
	"github.com/staffdesk/staffdesk/internal/types"
)

type authService struct {
	ServiceParams
	authProvider authProvider.Provider
}

func NewAuthService(params ServiceParams) interfaces.AuthService {
	return &authService{
		ServiceParams: params,
		authProvider:  params.Auth,
	}
}

// GetCurrentUser resolves the identity behind token and joins its profile
func (s *authService) GetCurrentUser(ctx context.Context, token string) types.Response[*dto.AuthUser] {
	return run(ctx, s.ServiceParams, "auth.get_current_user", "Failed to fetch current user",
		func(ctx context.Context) (*dto.AuthUser, error) {
			identity, err := s.authProvider.GetUser(ctx, bearer(token))
			if err != nil {
				return nil, err
			}
			return s.withProfile(ctx, identity)
		})
}

// GetSession returns the session described by a still valid token
func (s *authService) GetSession(ctx context.Context, token string) types.Response[*dto.Session] {
	return run(ctx, s.ServiceParams, "auth.get_session", "Failed to fetch session",
		func(ctx context.Context) (*dto.Session, error) {
			token = bearer(token)
			claims, err := s.authProvider.ValidateToken(ctx, token)
			if err != nil {
				return nil, err
			}
			identity, err := s.authProvider.GetUser(ctx, token)
			if err != nil {
				return nil, err
			}
			user, err := s.withProfile(ctx, identity)
			if err != nil {
				return nil, err
			}
			return &dto.Session{
				AccessToken: token,
				TokenType:   "bearer",
				ExpiresAt:   claims.ExpiresAt,
				User:        user,
			}, nil
		})
}

func (s *authService) SignInWithPassword(ctx context.Context, req dto.SignInRequest) types.Response[*dto.Session] {
	return run(ctx, s.ServiceParams, "auth.sign_in", "Failed to sign in",
		func(ctx context.Context) (*dto.Session, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}
			session, err := s.authProvider.SignIn(ctx, req.Email, req.Password)
			if err != nil {
				return nil, err
			}
			user, err := s.withProfile(ctx, session.Identity)
			if err != nil {
				return nil, err
			}
			return &dto.Session{
				AccessToken:  session.AccessToken,
				TokenType:    session.TokenType,
				RefreshToken: session.RefreshToken,
				ExpiresAt:    session.ExpiresAt,
				User:         user,
			}, nil
		})
}

// SignUp registers the identity and creates its profile row
func (s *authService) SignUp(ctx context.Context, req dto.SignUpRequest) types.Response[*dto.AuthUser] {
	return run(ctx, s.ServiceParams, "auth.sign_up", "Failed to sign up",
		func(ctx context.Context) (*dto.AuthUser, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}

			identity, err := s.authProvider.SignUp(ctx, req.Email, req.Password)
			if err != nil {
				return nil, err
			}

			now := time.Now().UTC()
			created, err := s.ProfileRepo.Create(ctx, &profile.Profile{
				BaseModel: types.BaseModel{ID: identity.ID, CreatedAt: now, UpdatedAt: now},
				FullName:  req.FullName,
				Email:     identity.Email,
				Role:      types.UserRoleEmployee,
			})
			if err != nil {
				return nil, err
			}

			s.Logger.Infow("signed up user",
				"user_id", identity.ID,
				"provider", s.authProvider.GetProvider(),
			)
			return &dto.AuthUser{
				ID:        identity.ID,
				Email:     identity.Email,
				CreatedAt: identity.CreatedAt,
				Profile:   created,
			}, nil
		})
}

func (s *authService) SignOut(ctx context.Context, token string) types.Response[bool] {
	return run(ctx, s.ServiceParams, "auth.sign_out", "Failed to sign out",
		func(ctx context.Context) (bool, error) {
			if err := s.authProvider.SignOut(ctx, bearer(token)); err != nil {
				return false, err
			}
			return true, nil
		})
}

// withProfile joins the profile row. A missing row is not an error.
func (s *authService) withProfile(ctx context.Context, identity *authProvider.Identity) (*dto.AuthUser, error) {
	if identity == nil {
		return nil, ierr.NewError("user not found").
			WithHint("The session has no user").
			Mark(ierr.ErrUnauthorized)
	}

	user := &dto.AuthUser{
		ID:        identity.ID,
		Email:     identity.Email,
		CreatedAt: identity.CreatedAt,
	}

	p, err := s.ProfileRepo.Get(ctx, identity.ID)
	switch {
	case err == nil:
		user.Profile = p
	case !ierr.IsNotFound(err):
		return nil, err
	}
	return user, nil
}

// bearer strips an optional "Bearer " prefix
func bearer(token string) string {
	token = strings.TrimSpace(token)
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
