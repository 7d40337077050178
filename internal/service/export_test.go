package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/mocks"
)

func TestExportKey(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.FixedZone("CET", 3600))

	assert.Equal(t, "menus/t1/20240309T130507Z.json", ExportKey("t1", ts))
}

func TestExportService_RequestExport(t *testing.T) {
	ctx := context.Background()
	f := newMenuFixture(t, true)
	queue := mocks.NewExportQueue(t)
	svc := NewExportService(f.store, queue)
	svc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	expectedKey := "menus/" + f.tenant.ID + "/20240102T030405Z.json"
	queue.On("SendExportMessage", ctx, f.tenant.ID, expectedKey).Return(nil)

	key, err := svc.RequestExport(ctx, f.tenant.ID)

	require.NoError(t, err)
	assert.Equal(t, expectedKey, key)
}

func TestExportService_RequestExportErrors(t *testing.T) {
	ctx := context.Background()
	f := newMenuFixture(t, true)

	_, err := NewExportService(f.store, nil).RequestExport(ctx, f.tenant.ID)
	assert.Error(t, err)

	queue := mocks.NewExportQueue(t)
	_, err = NewExportService(f.store, queue).RequestExport(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrTenantNotFound)

	failing := mocks.NewExportQueue(t)
	failing.On("SendExportMessage", ctx, f.tenant.ID, mock.AnythingOfType("string")).Return(errors.New("sqs throttled"))
	_, err = NewExportService(f.store, failing).RequestExport(ctx, f.tenant.ID)
	assert.Error(t, err)
}

func TestExportService_BuildSnapshotIsTenantScoped(t *testing.T) {
	ctx := context.Background()
	f := newMenuFixture(t, true)
	other, err := f.store.Tenant().Create(ctx, &domain.Tenant{
		Name: "Globex", Subdomain: "globex", Active: true, Config: domain.DefaultTenantConfig(),
	})
	require.NoError(t, err)

	drinks, err := f.catalog.CreateCategory(ctx, f.tenant.ID, dto.CreateCategoryRequest{Name: "Drinks"})
	require.NoError(t, err)
	cola, err := f.catalog.CreateProduct(ctx, f.tenant.ID, drinks.ID, dto.CreateProductRequest{Name: "Cola", BasePrice: "2.00"})
	require.NoError(t, err)
	_, err = f.catalog.CreateVariant(ctx, f.tenant.ID, cola.ID, dto.CreateVariantRequest{Name: "Large", PriceModifier: "0.50"})
	require.NoError(t, err)
	_, err = f.catalog.CreateCategory(ctx, other.ID, dto.CreateCategoryRequest{Name: "Widgets"})
	require.NoError(t, err)

	snapshot, err := NewExportService(f.store, nil).BuildSnapshot(ctx, f.tenant.ID)

	require.NoError(t, err)
	assert.Equal(t, f.tenant.ID, snapshot.Tenant.ID)
	assert.Len(t, snapshot.Categories, 1)
	assert.Len(t, snapshot.Products, 1)
	assert.Len(t, snapshot.Variants, 1)
	assert.False(t, snapshot.ExportedAt.IsZero())
}
