package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/service/session"
)

// SessionStore maps session ids to user ids.
//
//go:generate mockery --name SessionStore --output ../mocks
type SessionStore interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (string, error)
	Get(ctx context.Context, sid string) (string, error)
	Delete(ctx context.Context, sid string) error
}

// LoginResult is an issued session.
type LoginResult struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
	User      *domain.User
}

// sessionClaims are carried by every bearer token. The session id makes the
// token revocable through logout.
type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users    *UserService
	sessions SessionStore
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(users *UserService, sessions SessionStore, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (LoginResult, error) {
	user, err := s.users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return LoginResult{}, err
	}
	return s.IssueToken(ctx, user)
}

// IssueToken opens a session for user and signs a bearer token for it.
func (s *AuthService) IssueToken(ctx context.Context, user *domain.User) (LoginResult, error) {
	sid, err := s.sessions.Create(ctx, user.ID, s.ttl)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to create session: %w", err)
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := sessionClaims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return LoginResult{Token: token, SessionID: sid, ExpiresAt: expiresAt, User: user}, nil
}

// Logout revokes the session. Revoking an unknown session is not an error.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sid); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Authenticate turns a bearer token into the principal it belongs to. A bad
// signature, an expired token, a revoked session and a deleted user all
// return ErrInvalidToken.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Principal, string, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || claims.SessionID == "" || claims.Subject == "" {
		return domain.Anonymous(), "", ErrInvalidToken
	}

	userID, err := s.sessions.Get(ctx, claims.SessionID)
	if errors.Is(err, session.ErrNotFound) {
		return domain.Anonymous(), "", ErrInvalidToken
	}
	if err != nil {
		return domain.Anonymous(), "", fmt.Errorf("failed to load session: %w", err)
	}
	if userID != claims.Subject {
		return domain.Anonymous(), "", ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return domain.Anonymous(), "", ErrInvalidToken
	}
	if err != nil {
		return domain.Anonymous(), "", err
	}

	return domain.PrincipalFromUser(user), claims.SessionID, nil
}

// CurrentUser loads the user behind an authenticated principal.
func (s *AuthService) CurrentUser(ctx context.Context, p domain.Principal) (*domain.User, error) {
	if p.IsAnonymous() {
		return nil, ErrInvalidToken
	}
	return s.users.GetByID(ctx, p.UserID())
}
