package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/repository"
)

type CategoryRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewCategoryRepository(writerDB, readerDB *gorm.DB) *CategoryRepository {
	return &CategoryRepository{writerDB: writerDB, readerDB: readerDB}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(category).Error; err != nil {
		return nil, translateError(err)
	}
	return category, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Category, error) {
	db, err := tenantScope(r.readerDB, ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var category domain.Category
	if err := db.First(&category, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

func (r *CategoryRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Category, error) {
	db, err := tenantScope(r.readerDB, ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var categories []domain.Category
	if err := db.Order("display_order ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, tenantID, id string, fields domain.CategoryFields) (*domain.Category, error) {
	updates := updatesFrom(
		field("name", fields.Name),
		field("description", fields.Description),
		field("image", fields.Image),
		field("display_order", fields.Order),
		field("active", fields.Active),
	)
	if err := scopedUpdate(ctx, r.writerDB, &domain.Category{}, tenantID, id, updates); err != nil {
		return nil, err
	}

	db, err := tenantScope(r.writerDB, ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var category domain.Category
	if err := db.First(&category, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

type ProductRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewProductRepository(writerDB, readerDB *gorm.DB) *ProductRepository {
	return &ProductRepository{writerDB: writerDB, readerDB: readerDB}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(product).Error; err != nil {
		return nil, translateError(err)
	}
	return product, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Product, error) {
	db, err := tenantScope(r.readerDB, ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

func (r *ProductRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Product, error) {
	db, err := tenantScope(r.readerDB, ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := db.Order("display_order ASC, name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) ListByCategory(ctx context.Context, tenantID, categoryID string) ([]domain.Product, error) {
	db, err := tenantScope(r.readerDB, ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := db.Where("category_id = ?", categoryID).
		Order("display_order ASC, name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, tenantID, id string, fields domain.ProductFields) (*domain.Product, error) {
	updates := updatesFrom(
		field("category_id", fields.CategoryID),
		field("name", fields.Name),
		field("description", fields.Description),
		field("image", fields.Image),
		field("base_price", fields.BasePrice),
		field("display_order", fields.Order),
		field("active", fields.Active),
	)
	if err := scopedUpdate(ctx, r.writerDB, &domain.Product{}, tenantID, id, updates); err != nil {
		return nil, err
	}

	db, err := tenantScope(r.writerDB, ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

type VariantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewVariantRepository(writerDB, readerDB *gorm.DB) *VariantRepository {
	return &VariantRepository{writerDB: writerDB, readerDB: readerDB}
}

func (r *VariantRepository) Create(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error) {
	if variant.ID == "" {
		variant.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(variant).Error; err != nil {
		return nil, translateError(err)
	}
	return variant, nil
}

func (r *VariantRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.ProductVariant, error) {
	db, err := tenantScope(r.readerDB, ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var variant domain.ProductVariant
	if err := db.First(&variant, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &variant, nil
}

func (r *VariantRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.ProductVariant, error) {
	db, err := tenantScope(r.readerDB, ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var variants []domain.ProductVariant
	if err := db.Order("display_order ASC, name ASC").Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *VariantRepository) ListByProduct(ctx context.Context, tenantID, productID string) ([]domain.ProductVariant, error) {
	db, err := tenantScope(r.readerDB, ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var variants []domain.ProductVariant
	if err := db.Where("product_id = ?", productID).
		Order("display_order ASC, name ASC").
		Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *VariantRepository) Update(ctx context.Context, tenantID, id string, fields domain.VariantFields) (*domain.ProductVariant, error) {
	updates := updatesFrom(
		field("name", fields.Name),
		field("price_modifier", fields.PriceModifier),
		field("display_order", fields.Order),
		field("active", fields.Active),
	)
	if err := scopedUpdate(ctx, r.writerDB, &domain.ProductVariant{}, tenantID, id, updates); err != nil {
		return nil, err
	}

	db, err := tenantScope(r.writerDB, ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var variant domain.ProductVariant
	if err := db.First(&variant, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &variant, nil
}

// scopedUpdate filters by id AND tenant_id; zero matched rows is ErrNotFound
// whether the id is unknown or owned by another tenant.
func scopedUpdate(ctx context.Context, db *gorm.DB, model any, tenantID, id string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	scoped, err := tenantScope(db, ctx, tenantID)
	if err != nil {
		return err
	}
	result := scoped.Model(model).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
