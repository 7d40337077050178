package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/repository"
	"github.com/kingrain94/digital-menu-api/pkg/password"
)

type UserService struct {
	repo              repository.Repository
	hasher            password.Hasher
	allowRegistration bool
}

func NewUserService(repo repository.Repository, hasher password.Hasher, allowRegistration bool) *UserService {
	return &UserService{
		repo:              repo,
		hasher:            hasher,
		allowRegistration: allowRegistration,
	}
}

// Register creates a self-service account. It is bound to no tenant and
// carries no privilege until an operator acts on it.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if !s.allowRegistration {
		return nil, ErrRegistrationDisabled
	}
	return s.create(ctx, req.Username, req.Password, domain.RoleUser, nil, false)
}

// CreateTenantUser provisions a member of an existing tenant.
func (s *UserService) CreateTenantUser(ctx context.Context, tenantID string, req dto.CreateUserRequest) (*domain.User, error) {
	if _, err := s.repo.Tenant().GetByID(ctx, tenantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return s.create(ctx, req.Username, req.Password, domain.RoleOrDefault(req.Role), &tenantID, false)
}

// CreateSuperAdmin bootstraps an operator account. It is only reachable from
// the command line.
func (s *UserService) CreateSuperAdmin(ctx context.Context, username, plain string) (*domain.User, error) {
	return s.create(ctx, username, plain, domain.RoleUser, nil, true)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.repo.User().GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Authenticate checks a username and password pair. An unknown user and a
// wrong password produce the same error.
func (s *UserService) Authenticate(ctx context.Context, username, plain string) (*domain.User, error) {
	user, err := s.GetByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.hasher.Check(plain, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) create(ctx context.Context, username, plain string, role domain.Role, tenantID *string, superAdmin bool) (*domain.User, error) {
	username = strings.TrimSpace(username)
	verr := &ValidationError{}
	if len(username) < 3 {
		verr.Add("username", "must be at least 3 characters")
	}
	if len(plain) < password.MinLength {
		verr.Add("password", fmt.Sprintf("must be at least %d characters", password.MinLength))
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		IsSuperAdmin: superAdmin,
		TenantID:     tenantID,
		Role:         role,
	}
	created, err := s.repo.User().Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}
