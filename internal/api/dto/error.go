package dto

// Error represents a standard error response
type Error struct {
	Error string `json:"error" example:"error message"`
	// Fields maps a request field to the rule it failed
	Fields map[string]string `json:"fields,omitempty"`
	// Subdomain is set when tenant resolution failed
	Subdomain string `json:"subdomain,omitempty" example:"ghost"`
	// Detail carries the internal error outside production only
	Detail string `json:"detail,omitempty"`
}
