package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/repository"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

// ImageHost stores uploaded images and returns their public URL.
//
//go:generate mockery --name ImageHost --output ../mocks
type ImageHost interface {
	Upload(ctx context.Context, tenantID string, data []byte) (string, error)
	Delete(ctx context.Context, url string) error
}

// ProductIndexer queues products for the search index.
//
//go:generate mockery --name ProductIndexer --output ../mocks
type ProductIndexer interface {
	SendIndexProductMessage(ctx context.Context, product *domain.Product) error
}

// CatalogService manages categories, products and variants. Every method
// takes the tenant id from the authorized request, never from the payload.
type CatalogService struct {
	repo    repository.Repository
	images  ImageHost
	events  EventPublisher
	indexer ProductIndexer
	logger  *logger.Logger
}

// NewCatalogService wires the catalog. events and indexer may be nil.
func NewCatalogService(repo repository.Repository, images ImageHost, events EventPublisher, indexer ProductIndexer, logger *logger.Logger) *CatalogService {
	return &CatalogService{
		repo:    repo,
		images:  images,
		events:  events,
		indexer: indexer,
		logger:  logger,
	}
}

// Categories

func (s *CatalogService) CreateCategory(ctx context.Context, tenantID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	image, uploaded, err := s.resolveImage(ctx, tenantID, req.Image.ToImageInput())
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		TenantID:    tenantID,
		Name:        name,
		Description: req.Description,
		Image:       image,
		Order:       intOrDefault(req.Order, 0),
		Active:      boolOrDefault(req.Active, true),
	}
	created, err := s.repo.Category().Create(ctx, category)
	if err != nil {
		s.discardImage(ctx, uploaded)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.publish(ctx, domain.MenuEventCategoryCreated, tenantID, created.ID)
	return created, nil
}

func (s *CatalogService) ListCategories(ctx context.Context, tenantID string) ([]domain.Category, error) {
	categories, err := s.repo.Category().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, tenantID, id string) (*domain.Category, error) {
	category, err := s.repo.Category().GetByID(ctx, tenantID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, tenantID, id string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	fields := domain.CategoryFields{
		Description: req.Description,
		Order:       req.Order,
		Active:      req.Active,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		fields.Name = &name
	}

	// Existence is checked before an upload so a stray id never leaves an
	// orphaned object behind.
	if _, err := s.GetCategory(ctx, tenantID, id); err != nil {
		return nil, err
	}

	image, uploaded, err := s.resolveImage(ctx, tenantID, req.Image.ToImageInput())
	if err != nil {
		return nil, err
	}
	fields.Image = image

	updated, err := s.repo.Category().Update(ctx, tenantID, id, fields)
	if err != nil {
		s.discardImage(ctx, uploaded)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.publish(ctx, domain.MenuEventCategoryUpdated, tenantID, updated.ID)
	return updated, nil
}

// Products

func (s *CatalogService) CreateProduct(ctx context.Context, tenantID, categoryID string, req dto.CreateProductRequest) (*domain.Product, error) {
	verr := &ValidationError{}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		verr.Add("name", "required")
	}
	price, err := domain.NormalizePrice(req.BasePrice)
	if err != nil {
		verr.Add("base_price", err.Error())
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if _, err := s.GetCategory(ctx, tenantID, categoryID); err != nil {
		return nil, err
	}

	image, uploaded, err := s.resolveImage(ctx, tenantID, req.Image.ToImageInput())
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		TenantID:    tenantID,
		CategoryID:  categoryID,
		Name:        name,
		Description: req.Description,
		Image:       image,
		BasePrice:   price,
		Order:       intOrDefault(req.Order, 0),
		Active:      boolOrDefault(req.Active, true),
	}
	created, err := s.repo.Product().Create(ctx, product)
	if err != nil {
		s.discardImage(ctx, uploaded)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.index(ctx, created)
	s.publish(ctx, domain.MenuEventProductCreated, tenantID, created.ID)
	return created, nil
}

// ListProducts returns every product of the tenant, active or not.
func (s *CatalogService) ListProducts(ctx context.Context, tenantID string) ([]domain.Product, error) {
	products, err := s.repo.Product().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *CatalogService) ListProductsByCategory(ctx context.Context, tenantID, categoryID string) ([]domain.Product, error) {
	if _, err := s.GetCategory(ctx, tenantID, categoryID); err != nil {
		return nil, err
	}
	products, err := s.repo.Product().ListByCategory(ctx, tenantID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, tenantID, id string) (*domain.Product, error) {
	product, err := s.repo.Product().GetByID(ctx, tenantID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// UpdateProduct applies a partial update. A new base price is checked
// against the existing variants so no variant ends up with a negative final
// price. An inline image replaces the stored one; a hosted image is stored
// as given.
func (s *CatalogService) UpdateProduct(ctx context.Context, tenantID, id string, req dto.UpdateProductRequest) (*domain.Product, error) {
	verr := &ValidationError{}
	fields := domain.ProductFields{
		Description: req.Description,
		Order:       req.Order,
		Active:      req.Active,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			verr.Add("name", "must not be empty")
		}
		fields.Name = &name
	}
	if req.BasePrice != nil {
		price, err := domain.NormalizePrice(*req.BasePrice)
		if err != nil {
			verr.Add("base_price", err.Error())
		}
		fields.BasePrice = &price
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if _, err := s.GetProduct(ctx, tenantID, id); err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if _, err := s.GetCategory(ctx, tenantID, *req.CategoryID); err != nil {
			return nil, err
		}
		fields.CategoryID = req.CategoryID
	}
	if fields.BasePrice != nil {
		if err := s.checkVariantPrices(ctx, tenantID, id, *fields.BasePrice); err != nil {
			return nil, err
		}
	}

	image, uploaded, err := s.resolveImage(ctx, tenantID, req.Image.ToImageInput())
	if err != nil {
		return nil, err
	}
	fields.Image = image

	updated, err := s.repo.Product().Update(ctx, tenantID, id, fields)
	if err != nil {
		s.discardImage(ctx, uploaded)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.index(ctx, updated)
	s.publish(ctx, domain.MenuEventProductUpdated, tenantID, updated.ID)
	return updated, nil
}

func (s *CatalogService) checkVariantPrices(ctx context.Context, tenantID, productID, basePrice string) error {
	variants, err := s.repo.Variant().ListByProduct(ctx, tenantID, productID)
	if err != nil {
		return fmt.Errorf("failed to list variants: %w", err)
	}
	for _, v := range variants {
		if _, err := domain.FinalPrice(basePrice, v.PriceModifier); err != nil {
			return NewValidationError("base_price", fmt.Sprintf("variant %q would get a negative final price", v.Name))
		}
	}
	return nil
}

// Variants

func (s *CatalogService) CreateVariant(ctx context.Context, tenantID, productID string, req dto.CreateVariantRequest) (*domain.PricedVariant, error) {
	verr := &ValidationError{}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		verr.Add("name", "required")
	}
	modifier := req.PriceModifier
	if strings.TrimSpace(modifier) == "" {
		modifier = "0"
	}
	modifier, err := domain.NormalizePriceModifier(modifier)
	if err != nil {
		verr.Add("price_modifier", err.Error())
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	if _, err := domain.FinalPrice(product.BasePrice, modifier); err != nil {
		return nil, NewValidationError("price_modifier", "final price must not be negative")
	}

	variant := &domain.ProductVariant{
		TenantID:      tenantID,
		ProductID:     product.ID,
		Name:          name,
		PriceModifier: modifier,
		Order:         intOrDefault(req.Order, 0),
		Active:        boolOrDefault(req.Active, true),
	}
	created, err := s.repo.Variant().Create(ctx, variant)
	if err != nil {
		return nil, fmt.Errorf("failed to create variant: %w", err)
	}

	s.publish(ctx, domain.MenuEventVariantCreated, tenantID, created.ID)
	return priced(*created, product.BasePrice)
}

// ListVariants returns the variants of one product, filtered by both the
// product and the tenant.
func (s *CatalogService) ListVariants(ctx context.Context, tenantID, productID string) ([]domain.PricedVariant, error) {
	product, err := s.GetProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	variants, err := s.repo.Variant().ListByProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}

	out := make([]domain.PricedVariant, 0, len(variants))
	for _, v := range variants {
		pv, err := priced(v, product.BasePrice)
		if err != nil {
			return nil, err
		}
		out = append(out, *pv)
	}
	return out, nil
}

func (s *CatalogService) UpdateVariant(ctx context.Context, tenantID, productID, variantID string, req dto.UpdateVariantRequest) (*domain.PricedVariant, error) {
	verr := &ValidationError{}
	fields := domain.VariantFields{
		Order:  req.Order,
		Active: req.Active,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			verr.Add("name", "must not be empty")
		}
		fields.Name = &name
	}
	if req.PriceModifier != nil {
		modifier, err := domain.NormalizePriceModifier(*req.PriceModifier)
		if err != nil {
			verr.Add("price_modifier", err.Error())
		}
		fields.PriceModifier = &modifier
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	variant, err := s.repo.Variant().GetByID(ctx, tenantID, variantID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && variant.ProductID != product.ID) {
		return nil, ErrVariantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get variant: %w", err)
	}
	if fields.PriceModifier != nil {
		if _, err := domain.FinalPrice(product.BasePrice, *fields.PriceModifier); err != nil {
			return nil, NewValidationError("price_modifier", "final price must not be negative")
		}
	}

	updated, err := s.repo.Variant().Update(ctx, tenantID, variantID, fields)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrVariantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update variant: %w", err)
	}

	s.publish(ctx, domain.MenuEventVariantUpdated, tenantID, updated.ID)
	return priced(*updated, product.BasePrice)
}

func priced(v domain.ProductVariant, basePrice string) (*domain.PricedVariant, error) {
	pv, err := domain.PriceVariant(v, basePrice)
	if err != nil {
		return nil, fmt.Errorf("failed to price variant %s: %w", v.ID, err)
	}
	return &pv, nil
}

// resolveImage turns an image payload into the URL to store. Inline bytes
// are uploaded first; the returned uploaded URL must be discarded by the
// caller if the row write that follows fails.
func (s *CatalogService) resolveImage(ctx context.Context, tenantID string, in *domain.ImageInput) (image *string, uploaded string, err error) {
	if in == nil {
		return nil, "", nil
	}

	switch in.Kind {
	case domain.ImageHosted:
		if !isHostedURL(in.URL) {
			return nil, "", NewValidationError("image", "url must be an absolute http or https URL")
		}
		u := in.URL
		return &u, "", nil

	case domain.ImageInline:
		if len(in.Data) == 0 {
			return nil, "", NewValidationError("image", "data is required for inline images")
		}
		if s.images == nil {
			return nil, "", fmt.Errorf("%w: no image host configured", ErrImageUpload)
		}
		u, err := s.images.Upload(ctx, tenantID, in.Data)
		switch {
		case errors.Is(err, domain.ErrImageTooLarge), errors.Is(err, domain.ErrNotAnImage):
			return nil, "", NewValidationError("image", err.Error())
		case err != nil:
			return nil, "", fmt.Errorf("%w: %v", ErrImageUpload, err)
		}
		return &u, u, nil

	default:
		return nil, "", NewValidationError("image", "kind must be inline or hosted")
	}
}

func (s *CatalogService) discardImage(ctx context.Context, url string) {
	if url == "" || s.images == nil {
		return
	}
	if err := s.images.Delete(context.WithoutCancel(ctx), url); err != nil {
		s.logger.Warn("Failed to delete orphaned image", zap.String("url", url), zap.Error(err))
	}
}

func (s *CatalogService) index(ctx context.Context, product *domain.Product) {
	if s.indexer == nil {
		return
	}
	if err := s.indexer.SendIndexProductMessage(ctx, product); err != nil {
		s.logger.Warn("Failed to enqueue product for indexing",
			zap.String("tenant_id", product.TenantID),
			zap.String("product_id", product.ID),
			zap.Error(err))
	}
}

func (s *CatalogService) publish(ctx context.Context, eventType domain.MenuEventType, tenantID, entityID string) {
	publish(ctx, s.events, s.logger, domain.MenuEvent{
		Type:      eventType,
		TenantID:  tenantID,
		EntityID:  entityID,
		Timestamp: time.Now(),
	})
}

func isHostedURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
