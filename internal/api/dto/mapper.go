package dto

import (
	"github.com/kingrain94/digital-menu-api/internal/domain"
)

// ToConfig builds a complete config from the request, backfilling the theme.
func (r *TenantConfigRequest) ToConfig() domain.TenantConfig {
	if r == nil {
		return domain.DefaultTenantConfig()
	}
	return domain.TenantConfig{
		Theme:        r.Theme,
		Logo:         r.Logo,
		ContactEmail: r.ContactEmail,
		Address:      r.Address,
		Phone:        r.Phone,
	}.Normalized()
}

// ToImageInput converts the wire payload into the domain variant.
func (p *ImagePayload) ToImageInput() *domain.ImageInput {
	if p == nil {
		return nil
	}
	return &domain.ImageInput{
		Kind: domain.ImageKind(p.Kind),
		Data: p.Data,
		URL:  p.URL,
	}
}

func FromTenant(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Subdomain: t.Subdomain,
		Active:    t.Active,
		Config: TenantConfigResponse{
			Theme:        t.Config.Theme,
			Logo:         t.Config.Logo,
			ContactEmail: t.Config.ContactEmail,
			Address:      t.Config.Address,
			Phone:        t.Config.Phone,
		},
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromTenants(tenants []domain.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = FromTenant(&tenants[i])
	}
	return responses
}

func FromUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		IsSuperAdmin: u.IsSuperAdmin,
		TenantID:     u.TenantID,
		Role:         string(u.Role),
	}
}

func FromCategory(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		TenantID:    c.TenantID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		Order:       c.Order,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromCategories(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = FromCategory(&categories[i])
	}
	return responses
}

func FromProduct(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		BasePrice:   p.BasePrice,
		Order:       p.Order,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProducts(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = FromProduct(&products[i])
	}
	return responses
}

func FromVariant(v *domain.PricedVariant) VariantResponse {
	return VariantResponse{
		ID:            v.ID,
		TenantID:      v.TenantID,
		ProductID:     v.ProductID,
		Name:          v.Name,
		PriceModifier: v.PriceModifier,
		FinalPrice:    v.FinalPrice,
		Order:         v.Order,
		Active:        v.Active,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromVariants(variants []domain.PricedVariant) []VariantResponse {
	responses := make([]VariantResponse, len(variants))
	for i := range variants {
		responses[i] = FromVariant(&variants[i])
	}
	return responses
}

func FromMenu(t *domain.Tenant, sections []domain.MenuSection) MenuResponse {
	out := MenuResponse{
		Tenant:   FromTenant(t),
		Sections: make([]MenuSectionResponse, len(sections)),
	}
	for i := range sections {
		out.Sections[i] = MenuSectionResponse{
			Category: FromCategory(&sections[i].Category),
			Products: FromProducts(sections[i].Products),
		}
	}
	return out
}
