package memory

import (
	"context"
	"sort"

	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/repository"
)

type categoryRepo struct{ s *Store }

func (r categoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if err := requireTenant(category.TenantID); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row := *category
	r.s.stamp(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	r.s.categories[row.ID] = row
	*category = row
	return &row, nil
}

func (r categoryRepo) GetByID(_ context.Context, tenantID, id string) (*domain.Category, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok || c.TenantID != tenantID {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r categoryRepo) ListByTenant(_ context.Context, tenantID string) ([]domain.Category, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	categories := make([]domain.Category, 0)
	for _, c := range r.s.categories {
		if c.TenantID == tenantID {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return displayLess(categories[i].Order, categories[j].Order, categories[i].Name, categories[j].Name)
	})
	return categories, nil
}

func (r categoryRepo) Update(_ context.Context, tenantID, id string, fields domain.CategoryFields) (*domain.Category, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.categories[id]
	if !ok || c.TenantID != tenantID {
		return nil, repository.ErrNotFound
	}
	assign(&c.Name, fields.Name)
	assignPtr(&c.Description, fields.Description)
	assignPtr(&c.Image, fields.Image)
	assign(&c.Order, fields.Order)
	assign(&c.Active, fields.Active)
	c.UpdatedAt = r.s.now()
	r.s.categories[id] = c
	return &c, nil
}

type productRepo struct{ s *Store }

func (r productRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if err := requireTenant(product.TenantID); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row := *product
	r.s.stamp(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	r.s.products[row.ID] = row
	*product = row
	return &row, nil
}

func (r productRepo) GetByID(_ context.Context, tenantID, id string) (*domain.Product, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok || p.TenantID != tenantID {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r productRepo) ListByTenant(ctx context.Context, tenantID string) ([]domain.Product, error) {
	return r.list(tenantID, func(domain.Product) bool { return true })
}

func (r productRepo) ListByCategory(ctx context.Context, tenantID, categoryID string) ([]domain.Product, error) {
	return r.list(tenantID, func(p domain.Product) bool { return p.CategoryID == categoryID })
}

func (r productRepo) list(tenantID string, keep func(domain.Product) bool) ([]domain.Product, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	products := make([]domain.Product, 0)
	for _, p := range r.s.products {
		if p.TenantID == tenantID && keep(p) {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		return displayLess(products[i].Order, products[j].Order, products[i].Name, products[j].Name)
	})
	return products, nil
}

func (r productRepo) Update(_ context.Context, tenantID, id string, fields domain.ProductFields) (*domain.Product, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[id]
	if !ok || p.TenantID != tenantID {
		return nil, repository.ErrNotFound
	}
	assign(&p.CategoryID, fields.CategoryID)
	assign(&p.Name, fields.Name)
	assignPtr(&p.Description, fields.Description)
	assignPtr(&p.Image, fields.Image)
	assign(&p.BasePrice, fields.BasePrice)
	assign(&p.Order, fields.Order)
	assign(&p.Active, fields.Active)
	p.UpdatedAt = r.s.now()
	r.s.products[id] = p
	return &p, nil
}

type variantRepo struct{ s *Store }

func (r variantRepo) Create(_ context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error) {
	if err := requireTenant(variant.TenantID); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row := *variant
	r.s.stamp(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	r.s.variants[row.ID] = row
	*variant = row
	return &row, nil
}

func (r variantRepo) GetByID(_ context.Context, tenantID, id string) (*domain.ProductVariant, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.variants[id]
	if !ok || v.TenantID != tenantID {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

func (r variantRepo) ListByTenant(_ context.Context, tenantID string) ([]domain.ProductVariant, error) {
	return r.list(tenantID, func(domain.ProductVariant) bool { return true })
}

func (r variantRepo) ListByProduct(_ context.Context, tenantID, productID string) ([]domain.ProductVariant, error) {
	return r.list(tenantID, func(v domain.ProductVariant) bool { return v.ProductID == productID })
}

func (r variantRepo) list(tenantID string, keep func(domain.ProductVariant) bool) ([]domain.ProductVariant, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	variants := make([]domain.ProductVariant, 0)
	for _, v := range r.s.variants {
		if v.TenantID == tenantID && keep(v) {
			variants = append(variants, v)
		}
	}
	sort.Slice(variants, func(i, j int) bool {
		return displayLess(variants[i].Order, variants[j].Order, variants[i].Name, variants[j].Name)
	})
	return variants, nil
}

func (r variantRepo) Update(_ context.Context, tenantID, id string, fields domain.VariantFields) (*domain.ProductVariant, error) {
	if err := requireTenant(tenantID); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.variants[id]
	if !ok || v.TenantID != tenantID {
		return nil, repository.ErrNotFound
	}
	assign(&v.Name, fields.Name)
	assign(&v.PriceModifier, fields.PriceModifier)
	assign(&v.Order, fields.Order)
	assign(&v.Active, fields.Active)
	v.UpdatedAt = r.s.now()
	r.s.variants[id] = v
	return &v, nil
}

func displayLess(orderA, orderB int, nameA, nameB string) bool {
	if orderA != orderB {
		return orderA < orderB
	}
	return nameA < nameB
}

func assign[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// assignPtr stores a copy so the row never aliases caller memory.
func assignPtr[T any](dst **T, v *T) {
	if v != nil {
		c := *v
		*dst = &c
	}
}
