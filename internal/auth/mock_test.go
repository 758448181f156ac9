package auth

import (
	"context"
	"testing"

	"github.com/staffdesk/staffdesk/internal/config"
	ierr "github.com/staffdesk/staffdesk/internal/errors"
	"github.com/staffdesk/staffdesk/internal/logger"
	"github.com/staffdesk/staffdesk/internal/types"
	"github.com/stretchr/testify/suite"
)

type MockAuthSuite struct {
	suite.Suite
	ctx      context.Context
	provider Provider
}

func TestMockAuth(t *testing.T) {
	suite.Run(t, new(MockAuthSuite))
}

func (s *MockAuthSuite) SetupTest() {
	s.ctx = context.Background()
	p, err := NewProvider(config.GetDefaultConfig(), logger.NewNopLogger())
	s.Require().NoError(err)
	s.provider = p
}

func (s *MockAuthSuite) signUp(email, password string) *Identity {
	identity, err := s.provider.SignUp(s.ctx, email, password)
	s.Require().NoError(err)
	return identity
}

func (s *MockAuthSuite) TestProviderFollowsBackend() {
	s.Equal(types.AuthProviderMock, s.provider.GetProvider())
}

func (s *MockAuthSuite) TestSignUpAndSignIn() {
	identity := s.signUp("ada@example.com", "correct horse")
	s.Regexp(`^user_[0-9A-Z]{26}$`, identity.ID)

	session, err := s.provider.SignIn(s.ctx, "ADA@example.com", "correct horse")
	s.Require().NoError(err)
	s.Equal("bearer", session.TokenType)
	s.Equal(identity.ID, session.Identity.ID)
	s.NotEmpty(session.AccessToken)

	user, err := s.provider.GetUser(s.ctx, session.AccessToken)
	s.Require().NoError(err)
	s.Equal(identity.ID, user.ID)
	s.Equal("ada@example.com", user.Email)
}

func (s *MockAuthSuite) TestDuplicateSignUp() {
	s.signUp("ada@example.com", "correct horse")
	_, err := s.provider.SignUp(s.ctx, "ada@example.com", "another one")
	s.True(ierr.IsAlreadyExists(err))
}

func (s *MockAuthSuite) TestEmptyPassword() {
	_, err := s.provider.SignUp(s.ctx, "ada@example.com", "")
	s.True(ierr.IsValidation(err))
}

func (s *MockAuthSuite) TestWrongPassword() {
	s.signUp("ada@example.com", "correct horse")

	_, err := s.provider.SignIn(s.ctx, "ada@example.com", "battery staple")
	s.True(ierr.IsUnauthorized(err))
	s.EqualError(err, "invalid login credentials")

	_, err = s.provider.SignIn(s.ctx, "nobody@example.com", "correct horse")
	s.True(ierr.IsUnauthorized(err))
}

func (s *MockAuthSuite) TestSignOutRevokesToken() {
	s.signUp("ada@example.com", "correct horse")
	session, err := s.provider.SignIn(s.ctx, "ada@example.com", "correct horse")
	s.Require().NoError(err)

	s.Require().NoError(s.provider.SignOut(s.ctx, session.AccessToken))

	_, err = s.provider.GetUser(s.ctx, session.AccessToken)
	s.True(ierr.IsUnauthorized(err))

	// a fresh sign in still works
	again, err := s.provider.SignIn(s.ctx, "ada@example.com", "correct horse")
	s.Require().NoError(err)
	_, err = s.provider.GetUser(s.ctx, again.AccessToken)
	s.NoError(err)
}

func (s *MockAuthSuite) TestRejectsForeignTokens() {
	_, err := s.provider.ValidateToken(s.ctx, "not-a-token")
	s.True(ierr.IsUnauthorized(err))

	other := config.GetDefaultConfig()
	other.Mock.JWTSecret = "some-other-secret"
	foreign := NewMockAuth(other)
	_, err = foreign.SignUp(s.ctx, "ada@example.com", "correct horse")
	s.Require().NoError(err)
	session, err := foreign.SignIn(s.ctx, "ada@example.com", "correct horse")
	s.Require().NoError(err)

	_, err = s.provider.ValidateToken(s.ctx, session.AccessToken)
	s.True(ierr.IsUnauthorized(err))
}
