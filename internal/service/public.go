package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/repository"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// PublicService serves anonymous menu reads. Inactive tenants are reported
// as not found on every path.
type PublicService struct {
	repo   repository.Repository
	search repository.SearchRepository
}

// NewPublicService builds the public read path. search may be nil, in which
// case Search falls back to a name filter over the stored products.
func NewPublicService(repo repository.Repository, search repository.SearchRepository) *PublicService {
	return &PublicService{repo: repo, search: search}
}

func (s *PublicService) TenantBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetBySubdomain(ctx, domain.NormalizeSubdomain(subdomain))
	return activeTenant(tenant, err)
}

func (s *PublicService) Tenant(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	return activeTenant(tenant, err)
}

func (s *PublicService) Categories(ctx context.Context, tenantID string) ([]domain.Category, error) {
	if _, err := s.Tenant(ctx, tenantID); err != nil {
		return nil, err
	}
	categories, err := s.repo.Category().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Products returns every product of the tenant. Display filtering is the
// job of Menu.
func (s *PublicService) Products(ctx context.Context, tenantID string) ([]domain.Product, error) {
	if _, err := s.Tenant(ctx, tenantID); err != nil {
		return nil, err
	}
	products, err := s.repo.Product().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Menu renders the public menu: active categories holding active products.
func (s *PublicService) Menu(ctx context.Context, tenantID string) (*domain.Tenant, []domain.MenuSection, error) {
	tenant, err := s.Tenant(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}
	categories, err := s.repo.Category().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list categories: %w", err)
	}
	products, err := s.repo.Product().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list products: %w", err)
	}
	return tenant, domain.BuildMenu(categories, products), nil
}

// Search looks up active products of one tenant by name or description.
func (s *PublicService) Search(ctx context.Context, tenantID, query string, limit int) ([]domain.Product, error) {
	if _, err := s.Tenant(ctx, tenantID); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = defaultSearchLimit
	case limit > maxSearchLimit:
		limit = maxSearchLimit
	}
	query = strings.TrimSpace(query)

	if s.search != nil {
		products, err := s.search.SearchProducts(ctx, tenantID, query, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to search products: %w", err)
		}
		return products, nil
	}

	products, err := s.repo.Product().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	needle := strings.ToLower(query)
	out := make([]domain.Product, 0, limit)
	for _, p := range products {
		if !p.Active {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) &&
			(p.Description == nil || !strings.Contains(strings.ToLower(*p.Description), needle)) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func activeTenant(tenant *domain.Tenant, err error) (*domain.Tenant, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if !tenant.Active {
		return nil, ErrTenantNotFound
	}
	return tenant, nil
}
