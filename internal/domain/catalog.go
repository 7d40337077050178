package domain

import (
	"time"
)

type Category struct {
	ID          string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID    string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Image       *string   `gorm:"type:text" json:"image"`
	Order       int       `gorm:"column:display_order;not null" json:"order"`
	Active      bool      `gorm:"not null" json:"active"`
	CreatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant      *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// Product carries TenantID redundantly with its category so every scoped read
// is a single equality filter; writers keep both in agreement.
type Product struct {
	ID          string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID    string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	CategoryID  string    `gorm:"type:uuid;not null;index" json:"category_id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Image       *string   `gorm:"type:text" json:"image"`
	BasePrice   string    `gorm:"type:text;not null" json:"base_price"`
	Order       int       `gorm:"column:display_order;not null" json:"order"`
	Active      bool      `gorm:"not null" json:"active"`
	CreatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant      *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

type ProductVariant struct {
	ID            string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID      string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	ProductID     string    `gorm:"type:uuid;not null;index" json:"product_id"`
	Name          string    `gorm:"type:text;not null" json:"name"`
	PriceModifier string    `gorm:"type:text;not null" json:"price_modifier"`
	Order         int       `gorm:"column:display_order;not null" json:"order"`
	Active        bool      `gorm:"not null" json:"active"`
	CreatedAt     time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant        *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
	Product       *Product  `gorm:"foreignKey:ProductID" json:"-"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}

// CategoryFields and friends are partial updates: nil means "leave unchanged".
type CategoryFields struct {
	Name        *string
	Description *string
	Image       *string
	Order       *int
	Active      *bool
}

type ProductFields struct {
	CategoryID  *string
	Name        *string
	Description *string
	Image       *string
	BasePrice   *string
	Order       *int
	Active      *bool
}

type VariantFields struct {
	Name          *string
	PriceModifier *string
	Order         *int
	Active        *bool
}

// PricedVariant is a variant together with its computed final price.
type PricedVariant struct {
	ProductVariant
	FinalPrice string `json:"final_price"`
}

// PriceVariant adds the product base price to the variant modifier.
func PriceVariant(v ProductVariant, basePrice string) (PricedVariant, error) {
	final, err := FinalPrice(basePrice, v.PriceModifier)
	if err != nil {
		return PricedVariant{}, err
	}
	return PricedVariant{ProductVariant: v, FinalPrice: final}, nil
}
