package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/mocks"
	"github.com/kingrain94/digital-menu-api/internal/service"
	"github.com/kingrain94/digital-menu-api/internal/utils"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (service.LoginResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(service.LoginResult), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, sid string) error {
	args := m.Called(ctx, sid)
	return args.Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, p domain.Principal) (*domain.User, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type AuthHandlerTestSuite struct {
	suite.Suite
	mockUsers *mocks.UserService
	mockAuth  *MockAuthService
	handler   *AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockUsers = new(mocks.UserService)
	s.mockAuth = new(MockAuthService)
	s.handler = NewAuthHandler(NewBaseHandler(true, logger.NewNop()), s.mockUsers, s.mockAuth)
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{Username: "alice", Password: "correct-horse"}
	s.mockUsers.On("Register", mock.Anything, req).Return(&domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser}, nil)

	c, w := newJSONContext(http.MethodPost, "/register", req)
	s.handler.Register(c)

	s.Equal(http.StatusCreated, w.Code)
	s.NotContains(w.Body.String(), "password")
}

func (s *AuthHandlerTestSuite) TestRegister_Disabled() {
	req := dto.RegisterRequest{Username: "alice", Password: "correct-horse"}
	s.mockUsers.On("Register", mock.Anything, req).Return(nil, service.ErrRegistrationDisabled)

	c, w := newJSONContext(http.MethodPost, "/register", req)
	s.handler.Register(c)

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *AuthHandlerTestSuite) TestRegister_ShortPassword() {
	c, w := newJSONContext(http.MethodPost, "/register", dto.RegisterRequest{Username: "alice", Password: "short"})
	s.handler.Register(c)

	s.Equal(http.StatusBadRequest, w.Code)
	var response dto.Error
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("min", response.Fields["password"])
}

func (s *AuthHandlerTestSuite) TestLogin_Success() {
	req := dto.LoginRequest{Username: "alice", Password: "correct-horse"}
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	s.mockAuth.On("Login", mock.Anything, req).Return(service.LoginResult{
		Token:     "signed.jwt.token",
		SessionID: "sid",
		ExpiresAt: expiresAt,
		User:      &domain.User{ID: "u1", Username: "alice"},
	}, nil)

	c, w := newJSONContext(http.MethodPost, "/login", req)
	s.handler.Login(c)

	s.Equal(http.StatusOK, w.Code)
	var response dto.LoginResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("signed.jwt.token", response.Token)
	s.True(expiresAt.Equal(response.ExpiresAt))
	s.Equal("alice", response.User.Username)
}

func (s *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	req := dto.LoginRequest{Username: "alice", Password: "wrong"}
	s.mockAuth.On("Login", mock.Anything, req).Return(service.LoginResult{}, service.ErrInvalidCredentials)

	c, w := newJSONContext(http.MethodPost, "/login", req)
	s.handler.Login(c)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthHandlerTestSuite) TestLogout_RevokesSessionFromContext() {
	s.mockAuth.On("Logout", mock.Anything, "sid-123").Return(nil)

	c, w := newJSONContext(http.MethodPost, "/logout", nil)
	c.Set(string(utils.SessionIDKey), "sid-123")
	s.handler.Logout(c)
	c.Writer.WriteHeaderNow()

	s.Equal(http.StatusNoContent, w.Code)
	s.Empty(w.Body.String())
	s.mockAuth.AssertExpectations(s.T())
}

func (s *AuthHandlerTestSuite) TestCurrentUser_UsesPrincipal() {
	principal := domain.TenantUser("u1", "barista", "t1")
	s.mockAuth.On("CurrentUser", mock.Anything, principal).Return(&domain.User{ID: "u1", Username: "barista"}, nil)

	c, w := newJSONContext(http.MethodGet, "/user", nil)
	c.Set(string(utils.PrincipalKey), principal)
	s.handler.CurrentUser(c)

	s.Equal(http.StatusOK, w.Code)
	s.mockAuth.AssertExpectations(s.T())
}
