package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/repository"
)

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantRepository(writerDB, readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, translateError(err)
	}
	return tenant, nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

func (r *TenantRepository) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "subdomain = ?", subdomain).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

// UpdateConfig overwrites the whole config column.
func (r *TenantRepository) UpdateConfig(ctx context.Context, id string, config domain.TenantConfig) (*domain.Tenant, error) {
	// Select forces the write even when config holds only zero values.
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Tenant{ID: id}).
		Select("config", "updated_at").
		Updates(&domain.Tenant{Config: config, UpdatedAt: time.Now()})
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	var tenant domain.Tenant
	if err := r.writerDB.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

func (r *TenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	if err := r.readerDB.WithContext(ctx).Order("created_at ASC").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}
