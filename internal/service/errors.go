package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// Tenant errors
	ErrTenantNotFound = errors.New("tenant not found")
	ErrSubdomainTaken = errors.New("subdomain already exists")

	// User errors
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrRegistrationDisabled = errors.New("registration is disabled")
	ErrInvalidToken         = errors.New("invalid or expired token")

	// Catalog errors
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrVariantNotFound  = errors.New("variant not found")

	// Upstream errors
	ErrImageUpload = errors.New("image upload failed")
)

// ValidationError is a rejected input, keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

// OrNil lets callers collect field errors and return the result directly.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
