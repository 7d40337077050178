package dto

type CreateTenantRequest struct {
	Name      string               `json:"name" binding:"required,max=120" example:"Acme Coffee"`
	Subdomain string               `json:"subdomain" binding:"required,max=63" example:"acme"`
	Active    *bool                `json:"active" example:"true"`
	Config    *TenantConfigRequest `json:"config"`
}

// TenantConfigRequest replaces the whole tenant config. Omitted nullable fields
// become null and an omitted theme becomes "light".
type TenantConfigRequest struct {
	Theme        string  `json:"theme" binding:"max=32" example:"dark"`
	Logo         *string `json:"logo" binding:"omitempty,url" example:"https://cdn.example.com/logo.png"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email" example:"hello@acme.test"`
	Address      *string `json:"address" binding:"omitempty,max=255" example:"1 Main St"`
	Phone        *string `json:"phone" binding:"omitempty,max=32" example:"+1 555 0100"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64" example:"alice"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"correct-horse"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"correct-horse"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64" example:"barista"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"correct-horse"`
	Role     string `json:"role" binding:"max=32" example:"user"`
}

// ImagePayload is either raw image bytes to upload or an already hosted URL.
type ImagePayload struct {
	Kind string `json:"kind" binding:"required,oneof=inline hosted" example:"hosted"`
	// Data is standard base64 in JSON; required when kind is inline
	Data []byte `json:"data,omitempty" swaggertype:"string" format:"base64"`
	// URL is required when kind is hosted
	URL string `json:"url,omitempty" example:"https://cdn.example.com/cola.png"`
}

type CreateCategoryRequest struct {
	Name        string        `json:"name" binding:"required,max=120" example:"Drinks"`
	Description *string       `json:"description" binding:"omitempty,max=1000" example:"Cold and hot drinks"`
	Image       *ImagePayload `json:"image"`
	Order       *int          `json:"order" binding:"omitempty,min=0" example:"0"`
	Active      *bool         `json:"active" example:"true"`
}

type UpdateCategoryRequest struct {
	Name        *string       `json:"name" binding:"omitempty,min=1,max=120" example:"Drinks"`
	Description *string       `json:"description" binding:"omitempty,max=1000"`
	Image       *ImagePayload `json:"image"`
	Order       *int          `json:"order" binding:"omitempty,min=0" example:"1"`
	Active      *bool         `json:"active" example:"false"`
}

type CreateProductRequest struct {
	Name        string        `json:"name" binding:"required,max=120" example:"Cola"`
	Description *string       `json:"description" binding:"omitempty,max=2000" example:"Chilled, 330ml"`
	Image       *ImagePayload `json:"image"`
	BasePrice   string        `json:"base_price" binding:"required" example:"2.00"`
	Order       *int          `json:"order" binding:"omitempty,min=0" example:"0"`
	Active      *bool         `json:"active" example:"true"`
}

type UpdateProductRequest struct {
	CategoryID  *string       `json:"category_id" binding:"omitempty,uuid"`
	Name        *string       `json:"name" binding:"omitempty,min=1,max=120"`
	Description *string       `json:"description" binding:"omitempty,max=2000"`
	Image       *ImagePayload `json:"image"`
	BasePrice   *string       `json:"base_price" example:"2.50"`
	Order       *int          `json:"order" binding:"omitempty,min=0"`
	Active      *bool         `json:"active"`
}

type CreateVariantRequest struct {
	Name string `json:"name" binding:"required,max=120" example:"Large"`
	// PriceModifier is added to the product base price and may be negative
	PriceModifier string `json:"price_modifier" example:"0.50"`
	Order         *int   `json:"order" binding:"omitempty,min=0" example:"0"`
	Active        *bool  `json:"active" example:"true"`
}

type UpdateVariantRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=120"`
	PriceModifier *string `json:"price_modifier" example:"-0.25"`
	Order         *int    `json:"order" binding:"omitempty,min=0"`
	Active        *bool   `json:"active"`
}
