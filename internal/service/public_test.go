package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/mocks"
	"github.com/kingrain94/digital-menu-api/internal/repository/memory"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

type menuFixture struct {
	store   *memory.Store
	catalog *CatalogService
	tenant  *domain.Tenant
}

func newMenuFixture(t *testing.T, active bool) menuFixture {
	t.Helper()
	store := memory.NewStore()
	tenant, err := store.Tenant().Create(context.Background(), &domain.Tenant{
		Name: "Acme", Subdomain: "acme", Active: active, Config: domain.DefaultTenantConfig(),
	})
	require.NoError(t, err)
	return menuFixture{
		store:   store,
		catalog: NewCatalogService(store, nil, nil, nil, logger.NewNop()),
		tenant:  tenant,
	}
}

func ptr[T any](v T) *T { return &v }

func TestPublicService_MenuHidesInactiveEntries(t *testing.T) {
	ctx := context.Background()
	f := newMenuFixture(t, true)

	drinks, err := f.catalog.CreateCategory(ctx, f.tenant.ID, dto.CreateCategoryRequest{Name: "Drinks", Order: ptr(1)})
	require.NoError(t, err)
	// An active category without products produces no section.
	_, err = f.catalog.CreateCategory(ctx, f.tenant.ID, dto.CreateCategoryRequest{Name: "Food", Order: ptr(0)})
	require.NoError(t, err)
	hidden, err := f.catalog.CreateCategory(ctx, f.tenant.ID, dto.CreateCategoryRequest{Name: "Secret", Active: ptr(false)})
	require.NoError(t, err)

	_, err = f.catalog.CreateProduct(ctx, f.tenant.ID, drinks.ID, dto.CreateProductRequest{Name: "Cola", BasePrice: "2.00"})
	require.NoError(t, err)
	_, err = f.catalog.CreateProduct(ctx, f.tenant.ID, drinks.ID, dto.CreateProductRequest{Name: "Beer", BasePrice: "4.00", Active: ptr(false)})
	require.NoError(t, err)
	_, err = f.catalog.CreateProduct(ctx, f.tenant.ID, hidden.ID, dto.CreateProductRequest{Name: "Truffle", BasePrice: "40.00"})
	require.NoError(t, err)

	public := NewPublicService(f.store, nil)
	tenant, sections, err := public.Menu(ctx, f.tenant.ID)

	require.NoError(t, err)
	assert.Equal(t, "acme", tenant.Subdomain)
	require.Len(t, sections, 1)
	assert.Equal(t, "Drinks", sections[0].Category.Name)
	require.Len(t, sections[0].Products, 1)
	assert.Equal(t, "Cola", sections[0].Products[0].Name)
}

func TestPublicService_ProductsIncludeInactive(t *testing.T) {
	ctx := context.Background()
	f := newMenuFixture(t, true)
	drinks, err := f.catalog.CreateCategory(ctx, f.tenant.ID, dto.CreateCategoryRequest{Name: "Drinks"})
	require.NoError(t, err)
	_, err = f.catalog.CreateProduct(ctx, f.tenant.ID, drinks.ID, dto.CreateProductRequest{Name: "Beer", BasePrice: "4.00", Active: ptr(false)})
	require.NoError(t, err)

	products, err := NewPublicService(f.store, nil).Products(ctx, f.tenant.ID)

	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestPublicService_InactiveTenantIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newMenuFixture(t, false)
	public := NewPublicService(f.store, nil)

	_, err := public.TenantBySubdomain(ctx, "acme")
	assert.ErrorIs(t, err, ErrTenantNotFound)

	_, _, err = public.Menu(ctx, f.tenant.ID)
	assert.ErrorIs(t, err, ErrTenantNotFound)

	_, err = public.Categories(ctx, f.tenant.ID)
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestPublicService_TenantBySubdomainIgnoresCase(t *testing.T) {
	f := newMenuFixture(t, true)

	tenant, err := NewPublicService(f.store, nil).TenantBySubdomain(context.Background(), "ACME")

	require.NoError(t, err)
	assert.Equal(t, f.tenant.ID, tenant.ID)
}

func TestPublicService_SearchFallback(t *testing.T) {
	ctx := context.Background()
	f := newMenuFixture(t, true)
	drinks, err := f.catalog.CreateCategory(ctx, f.tenant.ID, dto.CreateCategoryRequest{Name: "Drinks"})
	require.NoError(t, err)
	_, err = f.catalog.CreateProduct(ctx, f.tenant.ID, drinks.ID, dto.CreateProductRequest{Name: "Cola", BasePrice: "2.00"})
	require.NoError(t, err)
	_, err = f.catalog.CreateProduct(ctx, f.tenant.ID, drinks.ID, dto.CreateProductRequest{
		Name: "Lemonade", BasePrice: "3.00", Description: ptr("Tastes like cola, sort of"),
	})
	require.NoError(t, err)
	_, err = f.catalog.CreateProduct(ctx, f.tenant.ID, drinks.ID, dto.CreateProductRequest{Name: "Cola Zero", BasePrice: "2.00", Active: ptr(false)})
	require.NoError(t, err)

	products, err := NewPublicService(f.store, nil).Search(ctx, f.tenant.ID, "COLA", 0)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Cola", products[0].Name)
	assert.Equal(t, "Lemonade", products[1].Name)
}

func TestPublicService_SearchUsesIndex(t *testing.T) {
	ctx := context.Background()
	f := newMenuFixture(t, true)
	search := new(mocks.SearchRepository)
	search.On("SearchProducts", ctx, f.tenant.ID, "cola", maxSearchLimit).Return([]domain.Product{{Name: "Cola"}}, nil)

	products, err := NewPublicService(f.store, search).Search(ctx, f.tenant.ID, " cola ", 500)

	require.NoError(t, err)
	assert.Len(t, products, 1)
	search.AssertExpectations(t)
}

func TestPublicService_SearchIndexError(t *testing.T) {
	ctx := context.Background()
	f := newMenuFixture(t, true)
	search := new(mocks.SearchRepository)
	search.On("SearchProducts", ctx, f.tenant.ID, mock.Anything, defaultSearchLimit).Return(nil, errors.New("cluster red"))

	_, err := NewPublicService(f.store, search).Search(ctx, f.tenant.ID, "cola", -1)

	assert.Error(t, err)
}
