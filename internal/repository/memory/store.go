package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/repository"
)

// Store is an isolated in-process repository. Each call to NewStore returns
// its own data, so tests never share rows. Rows are copied on the way in and
// on the way out.
type Store struct {
	mu         sync.RWMutex
	tenants    map[string]domain.Tenant
	users      map[string]domain.User
	categories map[string]domain.Category
	products   map[string]domain.Product
	variants   map[string]domain.ProductVariant
	seq        map[string]int64
	next       int64
	now        func() time.Time
}

func NewStore() *Store {
	return &Store{
		tenants:    make(map[string]domain.Tenant),
		users:      make(map[string]domain.User),
		categories: make(map[string]domain.Category),
		products:   make(map[string]domain.Product),
		variants:   make(map[string]domain.ProductVariant),
		seq:        make(map[string]int64),
		now:        time.Now,
	}
}

func (s *Store) Tenant() repository.TenantRepository     { return tenantRepo{s} }
func (s *Store) User() repository.UserRepository         { return userRepo{s} }
func (s *Store) Category() repository.CategoryRepository { return categoryRepo{s} }
func (s *Store) Product() repository.ProductRepository   { return productRepo{s} }
func (s *Store) Variant() repository.VariantRepository   { return variantRepo{s} }

// stamp assigns an id, creation order and timestamps. Caller holds the lock.
func (s *Store) stamp(id *string, createdAt, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.New().String()
	}
	s.next++
	s.seq[*id] = s.next
	now := s.now()
	*createdAt, *updatedAt = now, now
}

func (s *Store) byCreation(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return s.seq[ids[i]] < s.seq[ids[j]] })
}

func requireTenant(tenantID string) error {
	if tenantID == "" {
		return fmt.Errorf("tenant_id is required")
	}
	return nil
}

type tenantRepo struct{ s *Store }

func (r tenantRepo) Create(_ context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.tenants {
		if t.Subdomain == tenant.Subdomain {
			return nil, fmt.Errorf("%w: subdomain %q", repository.ErrDuplicate, tenant.Subdomain)
		}
	}
	row := *tenant
	r.s.stamp(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	r.s.tenants[row.ID] = row
	*tenant = row
	return &row, nil
}

func (r tenantRepo) GetByID(_ context.Context, id string) (*domain.Tenant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tenants[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (r tenantRepo) GetBySubdomain(_ context.Context, subdomain string) (*domain.Tenant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, t := range r.s.tenants {
		if t.Subdomain == subdomain {
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r tenantRepo) UpdateConfig(_ context.Context, id string, config domain.TenantConfig) (*domain.Tenant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tenants[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	t.Config = config
	t.UpdatedAt = r.s.now()
	r.s.tenants[id] = t
	return &t, nil
}

func (r tenantRepo) List(_ context.Context) ([]domain.Tenant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := make([]string, 0, len(r.s.tenants))
	for id := range r.s.tenants {
		ids = append(ids, id)
	}
	r.s.byCreation(ids)

	tenants := make([]domain.Tenant, 0, len(ids))
	for _, id := range ids {
		tenants = append(tenants, r.s.tenants[id])
	}
	return tenants, nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return nil, fmt.Errorf("%w: username %q", repository.ErrDuplicate, user.Username)
		}
	}
	if user.IsSuperAdmin && user.TenantID != nil {
		return nil, fmt.Errorf("super-admin cannot be bound to a tenant")
	}
	row := *user
	r.s.stamp(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	r.s.users[row.ID] = row
	*user = row
	return &row, nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r userRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}
