package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/digital-menu-api/internal/config"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/repository"
)

type postgresRepository struct {
	tenantRepo   repository.TenantRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	variantRepo  repository.VariantRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	w, r := dbConnections.Writer, dbConnections.Reader
	return &postgresRepository{
		tenantRepo:   NewTenantRepository(w, r),
		userRepo:     NewUserRepository(w, r),
		categoryRepo: NewCategoryRepository(w, r),
		productRepo:  NewProductRepository(w, r),
		variantRepo:  NewVariantRepository(w, r),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository     { return r.tenantRepo }
func (r *postgresRepository) User() repository.UserRepository         { return r.userRepo }
func (r *postgresRepository) Category() repository.CategoryRepository { return r.categoryRepo }
func (r *postgresRepository) Product() repository.ProductRepository   { return r.productRepo }
func (r *postgresRepository) Variant() repository.VariantRepository   { return r.variantRepo }

// Migrate creates or alters the catalog tables on the writer connection.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Tenant{},
		&domain.User{},
		&domain.Category{},
		&domain.Product{},
		&domain.ProductVariant{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
