package tenancy

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/service"
)

// HeaderName carries the subdomain override in non-production deployments.
const HeaderName = "X-Tenant-Subdomain"

type Source string

const (
	SourceHost   Source = "host"
	SourceHeader Source = "header"
)

// Options decide which of the two derivation modes applies to a request.
type Options struct {
	// Production disables the header override unconditionally.
	Production bool
	// Development enables the header override for every host.
	Development bool
	// DevHostSuffixes enable the header override for matching hosts outside
	// production, e.g. "replit.dev" or "localhost".
	DevHostSuffixes []string
	// ReservedLabels map to the main application instead of a tenant.
	ReservedLabels []string
	// BaseDomain, when set, maps the bare apex host to the main application.
	BaseDomain string
	// DefaultSubdomain is used when the override header is trusted but absent.
	DefaultSubdomain string
}

// Derivation is the subdomain a request claims, before any lookup.
type Derivation struct {
	Subdomain string
	Source    Source
	MainApp   bool
}

// NotFoundError means no active tenant owns the derived subdomain.
type NotFoundError struct {
	Subdomain string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no tenant found for subdomain %q", e.Subdomain)
}

// Directory is the subdomain lookup the resolver consults.
type Directory interface {
	FindBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error)
}

// Result is either the main application (Tenant nil) or a resolved tenant.
type Result struct {
	Derivation
	Tenant *Context
}

type Resolver struct {
	directory Directory
	opts      Options
}

func NewResolver(directory Directory, opts Options) *Resolver {
	if opts.DefaultSubdomain == "" {
		opts.DefaultSubdomain = "development"
	}
	return &Resolver{directory: directory, opts: opts}
}

// HeaderTrusted reports whether the override header may be honored for host.
func (o Options) HeaderTrusted(host string) bool {
	if o.Production {
		return false
	}
	if o.Development {
		return true
	}
	host = Hostname(host)
	for _, suffix := range o.DevHostSuffixes {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return true
		}
	}
	return false
}

func (o Options) reserved(label string) bool {
	for _, r := range o.ReservedLabels {
		if label == r {
			return true
		}
	}
	return false
}

// Derive computes the claimed subdomain without touching the directory.
func (o Options) Derive(host, header string) Derivation {
	var d Derivation
	if o.HeaderTrusted(host) {
		d.Source = SourceHeader
		d.Subdomain = domain.NormalizeSubdomain(header)
		if d.Subdomain == "" {
			d.Subdomain = o.DefaultSubdomain
		}
	} else {
		d.Source = SourceHost
		h := Hostname(host)
		if o.BaseDomain != "" && h == Hostname(o.BaseDomain) {
			d.MainApp = true
			return d
		}
		d.Subdomain, _, _ = strings.Cut(h, ".")
	}
	d.MainApp = o.reserved(d.Subdomain)
	return d
}

// Resolve derives the subdomain of a request and looks it up. Unknown and
// inactive tenants both yield *NotFoundError.
func (r *Resolver) Resolve(ctx context.Context, host, header string) (Result, error) {
	d := r.opts.Derive(host, header)
	if d.MainApp {
		return Result{Derivation: d}, nil
	}
	if !domain.IsValidSubdomain(d.Subdomain) {
		return Result{Derivation: d}, &NotFoundError{Subdomain: d.Subdomain}
	}

	tenant, err := r.directory.FindBySubdomain(ctx, d.Subdomain)
	if errors.Is(err, service.ErrTenantNotFound) || (err == nil && !tenant.Active) {
		return Result{Derivation: d}, &NotFoundError{Subdomain: d.Subdomain}
	}
	if err != nil {
		return Result{Derivation: d}, fmt.Errorf("failed to resolve tenant %q: %w", d.Subdomain, err)
	}

	tc := NewContext(tenant)
	return Result{Derivation: d, Tenant: &tc}, nil
}

// Options returns the mode settings the resolver was built with.
func (r *Resolver) Options() Options {
	return r.opts
}

// Hostname strips the port and trailing dot from a Host header and lower-cases it.
func Hostname(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
}
