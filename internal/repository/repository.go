package repository

import (
	"context"

	"github.com/kingrain94/digital-menu-api/internal/domain"
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error)
	UpdateConfig(ctx context.Context, id string, config domain.TenantConfig) (*domain.Tenant, error)
	List(ctx context.Context) ([]domain.Tenant, error)
}

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Every catalog method takes the tenant id as a mandatory filter. A row that
// exists under another tenant is reported as ErrNotFound.

//go:generate mockery --name CategoryRepository --output ../mocks
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Category, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Category, error)
	Update(ctx context.Context, tenantID, id string, fields domain.CategoryFields) (*domain.Category, error)
}

//go:generate mockery --name ProductRepository --output ../mocks
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Product, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Product, error)
	ListByCategory(ctx context.Context, tenantID, categoryID string) ([]domain.Product, error)
	Update(ctx context.Context, tenantID, id string, fields domain.ProductFields) (*domain.Product, error)
}

//go:generate mockery --name VariantRepository --output ../mocks
type VariantRepository interface {
	Create(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.ProductVariant, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.ProductVariant, error)
	ListByProduct(ctx context.Context, tenantID, productID string) ([]domain.ProductVariant, error)
	Update(ctx context.Context, tenantID, id string, fields domain.VariantFields) (*domain.ProductVariant, error)
}

//go:generate mockery --name SearchRepository --output ../mocks
type SearchRepository interface {
	IndexProduct(ctx context.Context, product *domain.Product) error
	SearchProducts(ctx context.Context, tenantID, query string, limit int) ([]domain.Product, error)
	DeleteTenantIndex(ctx context.Context, tenantID string) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Tenant() TenantRepository
	User() UserRepository
	Category() CategoryRepository
	Product() ProductRepository
	Variant() VariantRepository
}
