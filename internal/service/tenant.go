package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/repository"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

// EventPublisher fans menu changes out to live viewers.
//
//go:generate mockery --name EventPublisher --output ../mocks
type EventPublisher interface {
	Publish(ctx context.Context, event domain.MenuEvent) error
}

// TenantService is the tenant directory: the authoritative subdomain to
// tenant mapping.
type TenantService struct {
	repo     repository.Repository
	reserved []string
	events   EventPublisher
	logger   *logger.Logger
}

// NewTenantService creates the directory. Subdomains listed in reserved can
// never be claimed by a tenant; events may be nil.
func NewTenantService(repo repository.Repository, reserved []string, events EventPublisher, logger *logger.Logger) *TenantService {
	return &TenantService{
		repo:     repo,
		reserved: reserved,
		events:   events,
		logger:   logger,
	}
}

// Create registers a tenant. The config is always stored fully populated.
func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (*domain.Tenant, error) {
	verr := &ValidationError{}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		verr.Add("name", "required")
	}
	subdomain := domain.NormalizeSubdomain(req.Subdomain)
	switch {
	case !domain.IsValidSubdomain(subdomain):
		verr.Add("subdomain", "must be a DNS label of lowercase letters, digits and hyphens")
	case s.isReserved(subdomain):
		verr.Add("subdomain", "is reserved")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	tenant := &domain.Tenant{
		Name:      name,
		Subdomain: subdomain,
		Active:    active,
		Config:    req.Config.ToConfig(),
	}

	created, err := s.repo.Tenant().Create(ctx, tenant)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrSubdomainTaken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}
	return created, nil
}

func (s *TenantService) FindByID(ctx context.Context, id string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return tenant, nil
}

// FindBySubdomain matches the normalized subdomain exactly. Inactive tenants
// are returned; public callers decide what to do with them.
func (s *TenantService) FindBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetBySubdomain(ctx, domain.NormalizeSubdomain(subdomain))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant by subdomain: %w", err)
	}
	return tenant, nil
}

func (s *TenantService) ListAll(ctx context.Context) ([]domain.Tenant, error) {
	tenants, err := s.repo.Tenant().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

// UpdateConfig replaces the whole config. Fields missing from req become null
// and a missing theme becomes the default; nothing is merged with the old value.
func (s *TenantService) UpdateConfig(ctx context.Context, id string, req dto.TenantConfigRequest) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().UpdateConfig(ctx, id, req.ToConfig())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update tenant config: %w", err)
	}

	publish(ctx, s.events, s.logger, domain.MenuEvent{
		Type:      domain.MenuEventSettingsUpdated,
		TenantID:  tenant.ID,
		EntityID:  tenant.ID,
		Timestamp: time.Now(),
	})
	return tenant, nil
}

func (s *TenantService) isReserved(subdomain string) bool {
	for _, r := range s.reserved {
		if subdomain == r {
			return true
		}
	}
	return false
}

// publish never fails the write that triggered it.
func publish(ctx context.Context, events EventPublisher, log *logger.Logger, event domain.MenuEvent) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, event); err != nil {
		log.Warn("Failed to publish menu event",
			zap.String("type", string(event.Type)),
			zap.String("tenant_id", event.TenantID),
			zap.Error(err))
	}
}
