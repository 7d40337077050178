package dto

import (
	"time"
)

type TenantConfigResponse struct {
	Theme        string  `json:"theme" example:"light"`
	Logo         *string `json:"logo"`
	ContactEmail *string `json:"contact_email"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
}

type TenantResponse struct {
	ID        string               `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string               `json:"name" example:"Acme Coffee"`
	Subdomain string               `json:"subdomain" example:"acme"`
	Active    bool                 `json:"active" example:"true"`
	Config    TenantConfigResponse `json:"config"`
	CreatedAt time.Time            `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt time.Time            `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type UserResponse struct {
	ID           string  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Username     string  `json:"username" example:"alice"`
	IsSuperAdmin bool    `json:"is_super_admin" example:"false"`
	TenantID     *string `json:"tenant_id"`
	Role         string  `json:"role" example:"user"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at" example:"2025-07-18T21:20:48Z"`
	User      UserResponse `json:"user"`
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name" example:"Drinks"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Order       int       `json:"order" example:"0"`
	Active      bool      `json:"active" example:"true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name" example:"Cola"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	BasePrice   string    `json:"base_price" example:"2.00"`
	Order       int       `json:"order" example:"0"`
	Active      bool      `json:"active" example:"true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VariantResponse struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenant_id"`
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name" example:"Large"`
	PriceModifier string    `json:"price_modifier" example:"0.50"`
	FinalPrice    string    `json:"final_price" example:"2.50"`
	Order         int       `json:"order" example:"0"`
	Active        bool      `json:"active" example:"true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MenuSectionResponse is one category of the public menu with its visible products.
type MenuSectionResponse struct {
	Category CategoryResponse  `json:"category"`
	Products []ProductResponse `json:"products"`
}

type MenuResponse struct {
	Tenant   TenantResponse        `json:"tenant"`
	Sections []MenuSectionResponse `json:"sections"`
}

type ExportResponse struct {
	Key    string `json:"key" example:"menus/550e8400-e29b-41d4-a716-446655440000/20250717T212048Z.json"`
	Status string `json:"status" example:"queued"`
}
