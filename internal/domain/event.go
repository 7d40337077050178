package domain

import "time"

type MenuEventType string

const (
	MenuEventCategoryCreated MenuEventType = "CATEGORY_CREATED"
	MenuEventCategoryUpdated MenuEventType = "CATEGORY_UPDATED"
	MenuEventProductCreated  MenuEventType = "PRODUCT_CREATED"
	MenuEventProductUpdated  MenuEventType = "PRODUCT_UPDATED"
	MenuEventVariantCreated  MenuEventType = "VARIANT_CREATED"
	MenuEventVariantUpdated  MenuEventType = "VARIANT_UPDATED"
	MenuEventSettingsUpdated MenuEventType = "SETTINGS_UPDATED"
)

// MenuEvent tells live menu viewers that something on a tenant menu changed.
type MenuEvent struct {
	Type      MenuEventType `json:"type"`
	TenantID  string        `json:"tenant_id"`
	EntityID  string        `json:"entity_id"`
	Timestamp time.Time     `json:"timestamp"`
}

// MenuSnapshot is the document written by a menu export.
type MenuSnapshot struct {
	Tenant     Tenant           `json:"tenant"`
	Categories []Category       `json:"categories"`
	Products   []Product        `json:"products"`
	Variants   []ProductVariant `json:"variants"`
	ExportedAt time.Time        `json:"exported_at"`
}
